package storefront

import (
	"github.com/coffeehouse-next/internal/http/response"
	"github.com/coffeehouse-next/internal/models"

	"github.com/gin-gonic/gin"
)

// CartLineRequest 购物车行项定位请求（商品+杯型+配料集合）
type CartLineRequest struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Size      string   `json:"size" binding:"required"`
	Additives []string `json:"additives"`
}

// CartQuantityRequest 修改数量请求
type CartQuantityRequest struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Size      string   `json:"size" binding:"required"`
	Additives []string `json:"additives"`
	Quantity  int      `json:"quantity"`
}

// cartPayload 购物车响应（内容 + 摘要）
func cartPayload(cart models.Cart) gin.H {
	return gin.H{
		"cart":        cart,
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice(),
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	cart := h.CartService.GetCart(clientScope(c))
	response.Success(c, cartPayload(cart))
}

// GetCartSummary 获取购物车摘要（角标数量 + 合计金额）
func (h *Handler) GetCartSummary(c *gin.Context) {
	response.Success(c, h.CartService.Summary(clientScope(c)))
}

// AddCartItem 添加行项
func (h *Handler) AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequest(c, "invalid cart item payload")
		return
	}
	if item.ProductID == 0 || item.Size == "" {
		response.BadRequest(c, "product_id and size are required")
		return
	}
	cart := h.CartService.AddItem(clientScope(c), item)
	response.Success(c, cartPayload(cart))
}

// UpdateCartQuantity 修改行项数量（数量 <= 0 等价于删除）
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid quantity payload")
		return
	}
	cart := h.CartService.UpdateQuantity(clientScope(c), req.ProductID, req.Size, req.Additives, req.Quantity)
	response.Success(c, cartPayload(cart))
}

// RemoveCartItem 删除行项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	var req CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid cart line payload")
		return
	}
	cart := h.CartService.RemoveItem(clientScope(c), req.ProductID, req.Size, req.Additives)
	response.Success(c, cartPayload(cart))
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	cart := h.CartService.ClearCart(clientScope(c))
	response.Success(c, cartPayload(cart))
}
