package storefront

import (
	"github.com/coffeehouse-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// OpenSessionRequest 打开定制会话请求
type OpenSessionRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// SelectSizeRequest 选择杯型请求
type SelectSizeRequest struct {
	Size string `json:"size" binding:"required"`
}

// ToggleAdditiveRequest 切换配料请求
type ToggleAdditiveRequest struct {
	Additive string `json:"additive" binding:"required"`
}

// OpenCustomizeSession 打开定制会话
func (h *Handler) OpenCustomizeSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id is required")
		return
	}
	session, err := h.CustomizeService.Open(c.Request.Context(), req.ProductID)
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Success(c, session)
}

// GetCustomizeSession 获取定制会话状态与报价
func (h *Handler) GetCustomizeSession(c *gin.Context) {
	session, err := h.CustomizeService.Get(c.Param("id"))
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Success(c, session)
}

// SelectCustomizeSize 选择杯型
func (h *Handler) SelectCustomizeSize(c *gin.Context) {
	var req SelectSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "size is required")
		return
	}
	session, err := h.CustomizeService.SelectSize(c.Param("id"), req.Size)
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Success(c, session)
}

// ToggleCustomizeAdditive 切换配料
func (h *Handler) ToggleCustomizeAdditive(c *gin.Context) {
	var req ToggleAdditiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "additive is required")
		return
	}
	session, err := h.CustomizeService.ToggleAdditive(c.Param("id"), req.Additive)
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Success(c, session)
}

// ConfirmCustomizeSession 确认定制并加入购物车
func (h *Handler) ConfirmCustomizeSession(c *gin.Context) {
	cart, err := h.CustomizeService.Confirm(c.Param("id"), clientScope(c))
	if err != nil {
		respondCustomizeError(c, err)
		return
	}
	response.Success(c, cartPayload(cart))
}

// CloseCustomizeSession 关闭定制会话
func (h *Handler) CloseCustomizeSession(c *gin.Context) {
	h.CustomizeService.Close(c.Param("id"))
	response.Success(c, nil)
}
