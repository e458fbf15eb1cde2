package catalog

import (
	"context"

	"github.com/coffeehouse-next/internal/models"
)

// OrderRequest 下单请求体
type OrderRequest struct {
	UserID          string            `json:"userId"`
	Items           []models.CartItem `json:"items"`
	TotalPrice      models.Money      `json:"totalPrice"`
	DiscountPrice   *models.Money     `json:"discountPrice,omitempty"`
	DeliveryAddress string            `json:"deliveryAddress"`
}

// OrderResponse 下单响应
type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}

// CreateOrder 提交订单到远端
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := c.postJSON(ctx, "/orders", req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}
