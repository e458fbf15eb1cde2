package storefront

import (
	"github.com/coffeehouse-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
}

// CreateOrder 提交订单（认证 + 非空购物车 + 配送地址）
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid order payload")
		return
	}
	resp, err := h.OrderService.ConfirmOrder(c.Request.Context(), clientScope(c), req.DeliveryAddress)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithMsg(c, resp.Message, resp)
}
