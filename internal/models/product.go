package models

// Product 远端目录商品（对本服务只读）
// 字段名与远端 API 的 JSON 保持一致（camelCase）。
type Product struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         Money  `json:"price"`
	DiscountPrice *Money `json:"discountPrice,omitempty"`
	Category      string `json:"category"`
	Image         string `json:"image,omitempty"`
	Popular       bool   `json:"popular,omitempty"`
}
