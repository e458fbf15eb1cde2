package service

import "errors"

// 服务层统一错误定义
var (
	ErrValidationFailed    = errors.New("validation failed")
	ErrProductNotFound     = errors.New("product not found")
	ErrSessionNotFound     = errors.New("customize session not found")
	ErrSessionNotReady     = errors.New("customize session not ready")
	ErrInvalidSize         = errors.New("invalid size option")
	ErrInvalidAdditive     = errors.New("invalid additive option")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrEmptyAddress        = errors.New("delivery address is empty")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
