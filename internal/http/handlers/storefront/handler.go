package storefront

import "github.com/coffeehouse-next/internal/provider"

// Handler 门店接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建门店处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
