package provider

import (
	"github.com/coffeehouse-next/internal/cache"
	"github.com/coffeehouse-next/internal/catalog"
	"github.com/coffeehouse-next/internal/config"
	"github.com/coffeehouse-next/internal/logger"
	"github.com/coffeehouse-next/internal/models"
	"github.com/coffeehouse-next/internal/repository"
	"github.com/coffeehouse-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Upstream
	CatalogClient *catalog.Client

	// Repositories
	StorageRepo repository.StorageRepository

	// Services
	ProductsService  *catalog.ProductsService
	CartService      *service.CartService
	CustomizeService *service.CustomizeService
	AuthService      *service.AuthService
	OrderService     *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config: cfg,
	}

	// 1. 初始化远端客户端与 Repositories
	c.CatalogClient = catalog.NewClient(&cfg.Upstream)
	c.StorageRepo = repository.NewStorageRepository(models.DB)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initServices() {
	c.ProductsService = catalog.NewProductsService(c.CatalogClient, c.Config.Upstream.CacheTTLSecond)
	c.CartService = service.NewCartService(c.StorageRepo)
	c.CustomizeService = service.NewCustomizeService(c.ProductsService, c.CartService, service.DefaultOptionCatalog())
	c.AuthService = service.NewAuthService(c.CatalogClient, c.StorageRepo, c.CartService)
	c.OrderService = service.NewOrderService(c.CatalogClient, c.StorageRepo, c.CartService, c.AuthService)
}
