package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coffeehouse-next/internal/cache"
	"github.com/coffeehouse-next/internal/constants"
	"github.com/coffeehouse-next/internal/logger"
	"github.com/coffeehouse-next/internal/models"
)

// ProductsService 商品目录服务（全量缓存 + 远端回源）
type ProductsService struct {
	client   *Client
	cacheTTL time.Duration

	mu     sync.RWMutex
	all    []models.Product
	loaded bool
}

// NewProductsService 创建商品目录服务
func NewProductsService(client *Client, cacheTTLSeconds int) *ProductsService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	return &ProductsService{client: client, cacheTTL: ttl}
}

// GetAllProducts 获取全量商品列表
// 首次成功后常驻内存缓存，进程重启前不过期；Redis 启用时写入镜像。
func (s *ProductsService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	if s.loaded {
		cached := s.all
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	var products []models.Product
	if hit, err := cache.GetJSON(ctx, constants.CacheKeyCatalogAll, &products); err != nil {
		logger.Warnw("catalog_redis_read_failed", "error", err)
	} else if hit {
		s.storeAll(products)
		return products, nil
	}

	if err := s.client.getJSON(ctx, "/products", &products, true); err != nil {
		return nil, err
	}
	s.storeAll(products)

	if err := cache.SetJSON(ctx, constants.CacheKeyCatalogAll, products, s.cacheTTL); err != nil {
		logger.Warnw("catalog_redis_write_failed", "error", err)
	}
	return products, nil
}

func (s *ProductsService) storeAll(products []models.Product) {
	s.mu.Lock()
	s.all = products
	s.loaded = true
	s.mu.Unlock()
}

// GetProductsByCategory 按分类获取商品
// 已有全量缓存时在本地精确过滤，否则请求远端分类接口。
func (s *ProductsService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	s.mu.RLock()
	loaded := s.loaded
	cached := s.all
	s.mu.RUnlock()

	if loaded {
		filtered := make([]models.Product, 0)
		for _, p := range cached {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		return filtered, nil
	}

	var products []models.Product
	if err := s.client.getJSON(ctx, "/products/category/"+category, &products, true); err != nil {
		return nil, err
	}
	return products, nil
}

// GetFavoriteProducts 获取推荐商品列表
func (s *ProductsService) GetFavoriteProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.client.getJSON(ctx, "/products/favorites", &products, true); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID 获取商品详情
func (s *ProductsService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.client.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product, true); err != nil {
		return nil, err
	}
	return &product, nil
}
