package service

import (
	"encoding/json"

	"github.com/coffeehouse-next/internal/constants"
	"github.com/coffeehouse-next/internal/logger"
	"github.com/coffeehouse-next/internal/models"
	"github.com/coffeehouse-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartSummary 购物车摘要（角标数量 + 合计金额）
type CartSummary struct {
	TotalItems int          `json:"total_items"`
	TotalPrice models.Money `json:"total_price"`
}

// CartService 购物车服务
// 每个客户端作用域一份购物车，持久化为存储表中的 JSON。
type CartService struct {
	storageRepo repository.StorageRepository
}

// NewCartService 创建购物车服务
func NewCartService(storageRepo repository.StorageRepository) *CartService {
	return &CartService{storageRepo: storageRepo}
}

// GetCart 加载购物车（缺失或损坏时返回空购物车）
func (s *CartService) GetCart(scope string) models.Cart {
	entry, err := s.storageRepo.Get(scope, constants.StorageKeyCart)
	if err != nil {
		logger.Warnw("cart_load_failed", "scope", scope, "error", err)
		return models.Cart{Items: []models.CartItem{}}
	}
	if entry == nil || entry.Value == "" {
		return models.Cart{Items: []models.CartItem{}}
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(entry.Value), &cart); err != nil {
		logger.Warnw("cart_payload_corrupt", "scope", scope, "error", err)
		return models.Cart{Items: []models.CartItem{}}
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart
}

// persist 持久化购物车（失败只记录日志，不影响内存结果）
func (s *CartService) persist(scope string, cart models.Cart) {
	payload, err := json.Marshal(cart)
	if err != nil {
		logger.Errorw("cart_marshal_failed", "scope", scope, "error", err)
		return
	}
	if _, err := s.storageRepo.Put(scope, constants.StorageKeyCart, string(payload)); err != nil {
		logger.Errorw("cart_persist_failed", "scope", scope, "error", err)
	}
}

// AddItem 添加行项
// 同一行项（商品+杯型+配料集合）已存在时数量加一，忽略传入数量。
func (s *CartService) AddItem(scope string, item models.CartItem) models.Cart {
	cart := s.GetCart(scope)
	for i := range cart.Items {
		if cart.Items[i].MatchesLine(item.ProductID, item.Size, item.Additives) {
			cart.Items[i].Quantity++
			s.persist(scope, cart)
			return cart
		}
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.Additives == nil {
		item.Additives = []string{}
	}
	cart.Items = append(cart.Items, item)
	s.persist(scope, cart)
	return cart
}

// RemoveItem 删除行项（不存在时为空操作）
func (s *CartService) RemoveItem(scope string, productID uint, size string, additives []string) models.Cart {
	cart := s.GetCart(scope)
	for i := range cart.Items {
		if cart.Items[i].MatchesLine(productID, size, additives) {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			s.persist(scope, cart)
			return cart
		}
	}
	return cart
}

// UpdateQuantity 修改行项数量（数量 <= 0 等价于删除；行项不存在时为空操作）
func (s *CartService) UpdateQuantity(scope string, productID uint, size string, additives []string, quantity int) models.Cart {
	if quantity <= 0 {
		return s.RemoveItem(scope, productID, size, additives)
	}
	cart := s.GetCart(scope)
	for i := range cart.Items {
		if cart.Items[i].MatchesLine(productID, size, additives) {
			cart.Items[i].Quantity = quantity
			s.persist(scope, cart)
			return cart
		}
	}
	return cart
}

// ClearCart 清空购物车（保留 user_id 标记）
func (s *CartService) ClearCart(scope string) models.Cart {
	cart := s.GetCart(scope)
	cart.Items = []models.CartItem{}
	s.persist(scope, cart)
	return cart
}

// SetUserID 为购物车打上用户标记
func (s *CartService) SetUserID(scope, userID string) {
	cart := s.GetCart(scope)
	cart.UserID = userID
	s.persist(scope, cart)
}

// GetUserID 获取购物车用户标记
func (s *CartService) GetUserID(scope string) string {
	return s.GetCart(scope).UserID
}

// Summary 购物车摘要
func (s *CartService) Summary(scope string) CartSummary {
	cart := s.GetCart(scope)
	return CartSummary{
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// DiscountedTotal 计算折后总价（任一行项有促销价时整单 95 折）
func (s *CartService) DiscountedTotal(cart models.Cart) *models.Money {
	if !cart.HasDiscountedLine() {
		return nil
	}
	total := cart.TotalPrice()
	discounted := models.NewMoneyFromDecimal(total.Decimal.Mul(decimal.NewFromFloat(0.95)))
	return &discounted
}
