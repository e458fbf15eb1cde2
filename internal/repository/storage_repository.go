package repository

import (
	"errors"

	"github.com/coffeehouse-next/internal/models"

	"gorm.io/gorm"
)

// StorageRepository 客户端键值存储数据访问接口
type StorageRepository interface {
	Get(scope, key string) (*models.StorageEntry, error)
	Put(scope, key, value string) (*models.StorageEntry, error)
	Delete(scope, key string) error
}

// GormStorageRepository GORM 实现
type GormStorageRepository struct {
	db *gorm.DB
}

// NewStorageRepository 创建存储仓库
func NewStorageRepository(db *gorm.DB) *GormStorageRepository {
	return &GormStorageRepository{db: db}
}

// Get 读取指定作用域下的键值（不存在时返回 nil）
func (r *GormStorageRepository) Get(scope, key string) (*models.StorageEntry, error) {
	var entry models.StorageEntry
	if err := r.db.Where("scope = ? AND key = ?", scope, key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Put 写入或覆盖键值
func (r *GormStorageRepository) Put(scope, key, value string) (*models.StorageEntry, error) {
	entry, err := r.Get(scope, key)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &models.StorageEntry{
			Scope: scope,
			Key:   key,
			Value: value,
		}
		if err := r.db.Create(entry).Error; err != nil {
			return nil, err
		}
		return entry, nil
	}

	entry.Value = value
	if err := r.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete 删除键值（不存在时视为成功）
func (r *GormStorageRepository) Delete(scope, key string) error {
	return r.db.Where("scope = ? AND key = ?", scope, key).Delete(&models.StorageEntry{}).Error
}
