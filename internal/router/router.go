package router

import (
	"fmt"
	"strings"

	"github.com/coffeehouse-next/internal/cache"
	"github.com/coffeehouse-next/internal/config"
	"github.com/coffeehouse-next/internal/constants"
	storefronthandlers "github.com/coffeehouse-next/internal/http/handlers/storefront"
	"github.com/coffeehouse-next/internal/http/response"
	"github.com/coffeehouse-next/internal/logger"
	"github.com/coffeehouse-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	storefrontHandler := storefronthandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品目录
		products := apiV1.Group("/products")
		{
			products.GET("", storefrontHandler.ListProducts)
			products.GET("/favorites", storefrontHandler.ListFavoriteProducts)
			products.GET("/category/:category", storefrontHandler.ListProductsByCategory)
			products.GET("/:id", storefrontHandler.GetProduct)
		}

		// 认证
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("login")), storefrontHandler.Login)
			auth.POST("/register", storefrontHandler.Register)
			auth.POST("/logout", storefrontHandler.Logout)
			auth.GET("/session", storefrontHandler.GetSession)
		}

		// 购物车
		cart := apiV1.Group("/cart")
		{
			cart.GET("", storefrontHandler.GetCart)
			cart.GET("/summary", storefrontHandler.GetCartSummary)
			cart.POST("/items", storefrontHandler.AddCartItem)
			cart.PUT("/items/quantity", storefrontHandler.UpdateCartQuantity)
			cart.DELETE("/items", storefrontHandler.RemoveCartItem)
			cart.POST("/clear", storefrontHandler.ClearCart)
		}

		// 商品定制会话
		customize := apiV1.Group("/customize/sessions")
		{
			customize.POST("", storefrontHandler.OpenCustomizeSession)
			customize.GET("/:id", storefrontHandler.GetCustomizeSession)
			customize.PUT("/:id/size", storefrontHandler.SelectCustomizeSize)
			customize.PUT("/:id/additives", storefrontHandler.ToggleCustomizeAdditive)
			customize.POST("/:id/confirm", storefrontHandler.ConfirmCustomizeSession)
			customize.DELETE("/:id", storefrontHandler.CloseCustomizeSession)
		}

		// 下单
		apiV1.POST("/orders", storefrontHandler.CreateOrder)
	}

	return r
}
