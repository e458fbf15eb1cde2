package service

import (
	"github.com/coffeehouse-next/internal/constants"
	"github.com/coffeehouse-next/internal/models"
)

// SizeOption 杯型选项
type SizeOption struct {
	Size      string       `json:"size"`      // S / M / L
	Volume    string       `json:"volume"`    // 容量/重量展示文案
	Surcharge models.Money `json:"surcharge"` // 加价
}

// AdditiveOption 配料选项
// Name 为标识值（小写），Label 为展示文案。
type AdditiveOption struct {
	Name  string       `json:"name"`
	Label string       `json:"label"`
	Price models.Money `json:"price"`
}

// CategoryOptions 分类定制选项（杯型表 + 配料表）
type CategoryOptions struct {
	Sizes     []SizeOption     `json:"sizes"`
	Additives []AdditiveOption `json:"additives"`
}

// OptionCatalog 定制选项表（按分类查询，数据驱动，可整表替换）
type OptionCatalog struct {
	byCategory map[string]CategoryOptions
}

// NewOptionCatalog 从分类选项表创建
func NewOptionCatalog(byCategory map[string]CategoryOptions) *OptionCatalog {
	return &OptionCatalog{byCategory: byCategory}
}

// ForCategory 获取分类选项（未知分类回退到 coffee 表）
func (c *OptionCatalog) ForCategory(category string) CategoryOptions {
	if opts, ok := c.byCategory[category]; ok {
		return opts
	}
	return c.byCategory[constants.CategoryCoffee]
}

// SizeOption 按杯型查找选项
func (o CategoryOptions) SizeOption(size string) (SizeOption, bool) {
	for _, opt := range o.Sizes {
		if opt.Size == size {
			return opt, true
		}
	}
	return SizeOption{}, false
}

// AdditiveOption 按名称查找配料
func (o CategoryOptions) AdditiveOption(name string) (AdditiveOption, bool) {
	for _, opt := range o.Additives {
		if opt.Name == name {
			return opt, true
		}
	}
	return AdditiveOption{}, false
}

// DefaultSize 默认杯型（首个选项）
func (o CategoryOptions) DefaultSize() string {
	if len(o.Sizes) == 0 {
		return constants.SizeSmall
	}
	return o.Sizes[0].Size
}

// DefaultOptionCatalog 内置定制选项表
// 杯型加价与配料单价对三个分类一致，容量文案与配料词表按分类区分。
func DefaultOptionCatalog() *OptionCatalog {
	surchargeS := models.NewMoneyFromFloat(0)
	surchargeM := models.NewMoneyFromFloat(0.5)
	surchargeL := models.NewMoneyFromFloat(1.0)
	additivePrice := models.NewMoneyFromFloat(0.5)

	drinkSizes := func() []SizeOption {
		return []SizeOption{
			{Size: constants.SizeSmall, Volume: "200ml", Surcharge: surchargeS},
			{Size: constants.SizeMedium, Volume: "300ml", Surcharge: surchargeM},
			{Size: constants.SizeLarge, Volume: "400ml", Surcharge: surchargeL},
		}
	}
	additive := func(name, label string) AdditiveOption {
		return AdditiveOption{Name: name, Label: label, Price: additivePrice}
	}

	return NewOptionCatalog(map[string]CategoryOptions{
		constants.CategoryCoffee: {
			Sizes: drinkSizes(),
			Additives: []AdditiveOption{
				additive("sugar", "Sugar"),
				additive("cinnamon", "Cinnamon"),
				additive("syrup", "Syrup"),
			},
		},
		constants.CategoryTea: {
			Sizes: drinkSizes(),
			Additives: []AdditiveOption{
				additive("sugar", "Sugar"),
				additive("lemon", "Lemon"),
				additive("syrup", "Syrup"),
			},
		},
		constants.CategoryDessert: {
			Sizes: []SizeOption{
				{Size: constants.SizeSmall, Volume: "50g", Surcharge: surchargeS},
				{Size: constants.SizeMedium, Volume: "100g", Surcharge: surchargeM},
				{Size: constants.SizeLarge, Volume: "200g", Surcharge: surchargeL},
			},
			Additives: []AdditiveOption{
				additive("berries", "Berries"),
				additive("nuts", "Nuts"),
				additive("jam", "Jam"),
			},
		},
	})
}
