package models

import "time"

// StorageEntry 客户端键值存储（浏览器 localStorage 的服务端等价物）
// 按作用域隔离：一个作用域对应一个客户端的存储空间。
type StorageEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                    // 主键
	Scope     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_storage_scope_key" json:"scope"` // 客户端作用域
	Key       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_storage_scope_key" json:"key"`   // 存储键
	Value     string    `gorm:"type:text" json:"value"`                                                  // JSON 序列化值
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                 // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                              // 更新时间
}

// TableName 指定表名
func (StorageEntry) TableName() string {
	return "storage_entries"
}
