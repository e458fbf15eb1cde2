package constants

// 商品分类常量
const (
	CategoryCoffee  = "coffee"
	CategoryTea     = "tea"
	CategoryDessert = "dessert"
)

// 杯型常量
const (
	SizeSmall  = "S"
	SizeMedium = "M"
	SizeLarge  = "L"
)

// 客户端存储键常量
const (
	StorageKeyCart      = "cart"
	StorageKeyAuthToken = "auth_token"
	StorageKeyUserID    = "user_id"
)

// 客户端作用域常量
const (
	ClientScopeHeader  = "X-Client-ID"
	ClientScopeDefault = "default"
)

// 定制会话状态常量
const (
	SessionStateLoading = "open_loading"
	SessionStateReady   = "open_ready"
	SessionStateClosed  = "closed"
)

// 支付方式常量
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "ch"
	CacheKeyCatalogAll = "catalog:all"
)
