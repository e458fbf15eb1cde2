package storefront

import (
	"github.com/coffeehouse-next/internal/catalog"
	"github.com/coffeehouse-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Login 登录（本地校验 + 远端转发，完整保留远端信封）
func (h *Handler) Login(c *gin.Context) {
	var req catalog.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid login payload")
		return
	}
	resp, err := h.AuthService.Login(c.Request.Context(), clientScope(c), req)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.SuccessWithMsg(c, resp.Message, resp)
}

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var req catalog.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid register payload")
		return
	}
	resp, err := h.AuthService.Register(c.Request.Context(), clientScope(c), req)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	response.SuccessWithMsg(c, resp.Message, resp)
}

// Logout 登出
func (h *Handler) Logout(c *gin.Context) {
	h.AuthService.Logout(clientScope(c))
	response.Success(c, nil)
}

// GetSession 当前会话状态
func (h *Handler) GetSession(c *gin.Context) {
	response.Success(c, h.AuthService.Session(clientScope(c)))
}
