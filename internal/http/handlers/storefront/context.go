package storefront

import (
	"strings"

	"github.com/coffeehouse-next/internal/constants"
	handlershared "github.com/coffeehouse-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// clientScope 解析客户端作用域（购物车与认证标记按作用域隔离）
func clientScope(c *gin.Context) string {
	scope := strings.TrimSpace(c.GetHeader(constants.ClientScopeHeader))
	if scope == "" {
		return constants.ClientScopeDefault
	}
	return scope
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}
