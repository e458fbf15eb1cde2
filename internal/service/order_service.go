package service

import (
	"context"
	"strings"

	"github.com/coffeehouse-next/internal/catalog"
	"github.com/coffeehouse-next/internal/constants"
	"github.com/coffeehouse-next/internal/logger"
	"github.com/coffeehouse-next/internal/repository"
)

// OrderService 下单服务
type OrderService struct {
	client      *catalog.Client
	storageRepo repository.StorageRepository
	cart        *CartService
	auth        *AuthService
}

// NewOrderService 创建下单服务
func NewOrderService(client *catalog.Client, storageRepo repository.StorageRepository, cart *CartService, auth *AuthService) *OrderService {
	return &OrderService{client: client, storageRepo: storageRepo, cart: cart, auth: auth}
}

// ConfirmOrder 提交订单
// 仅已认证且购物车非空时转发远端，成功后清空购物车。
func (s *OrderService) ConfirmOrder(ctx context.Context, scope, deliveryAddress string) (*catalog.OrderResponse, error) {
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, ErrEmptyAddress
	}
	if !s.auth.IsAuthenticated(scope) {
		return nil, ErrNotAuthenticated
	}
	cart := s.cart.GetCart(scope)
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	userID := cart.UserID
	if userID == "" {
		if entry, err := s.storageRepo.Get(scope, constants.StorageKeyUserID); err == nil && entry != nil {
			userID = entry.Value
		}
	}

	req := catalog.OrderRequest{
		UserID:          userID,
		Items:           cart.Items,
		TotalPrice:      cart.TotalPrice(),
		DiscountPrice:   s.cart.DiscountedTotal(cart),
		DeliveryAddress: deliveryAddress,
	}
	resp, err := s.client.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cart.ClearCart(scope)
	logger.Infow("order_created",
		"scope", scope,
		"order_id", resp.OrderID,
		"item_count", len(cart.Items),
	)
	return resp, nil
}
