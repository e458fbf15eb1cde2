package models

import "sort"

// CartItem 购物车行项（一种商品+杯型+配料组合）
type CartItem struct {
	ProductID     uint     `json:"product_id"`     // 商品ID
	ProductName   string   `json:"product_name"`   // 商品名称（加入时冗余保存）
	ProductImage  string   `json:"product_image"`  // 商品图片（加入时冗余保存）
	Category      string   `json:"category"`       // 分类（coffee/tea/dessert）
	Price         Money    `json:"price"`          // 基础单价
	DiscountPrice *Money   `json:"discount_price,omitempty"` // 促销单价（存在时必须低于基础单价）
	Size          string   `json:"size"`           // 杯型（S/M/L）
	Volume        string   `json:"volume"`         // 容量/重量展示文案
	Additives     []string `json:"additives"`      // 配料集合（分类专属词表）
	Quantity      int      `json:"quantity"`       // 数量（>= 1）
}

// UnitPrice 返回行项生效单价（有促销价时取促销价）
func (i CartItem) UnitPrice() Money {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}
	return i.Price
}

// MatchesLine 判断是否为同一行项：商品、杯型、配料集合（忽略顺序）全部相等
func (i CartItem) MatchesLine(productID uint, size string, additives []string) bool {
	if i.ProductID != productID || i.Size != size {
		return false
	}
	return additiveSetsEqual(i.Additives, additives)
}

func additiveSetsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sortedA := append([]string(nil), a...)
	sortedB := append([]string(nil), b...)
	sort.Strings(sortedA)
	sort.Strings(sortedB)
	for i := range sortedA {
		if sortedA[i] != sortedB[i] {
			return false
		}
	}
	return true
}

// Cart 购物车（每个客户端作用域一份，持久化为 JSON）
type Cart struct {
	Items  []CartItem `json:"items"`
	UserID string     `json:"user_id,omitempty"`
}

// TotalItems 所有行项数量之和
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice 所有行项（生效单价×数量）之和
func (c Cart) TotalPrice() Money {
	total := Money{}
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice().MulInt(item.Quantity))
	}
	return total
}

// HasDiscountedLine 是否存在促销行项
func (c Cart) HasDiscountedLine() bool {
	for _, item := range c.Items {
		if item.DiscountPrice != nil {
			return true
		}
	}
	return false
}
