package storefront

import (
	"strconv"

	"github.com/coffeehouse-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListProducts 获取全量商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductsService.GetAllProducts(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, products)
}

// ListFavoriteProducts 获取推荐商品列表
func (h *Handler) ListFavoriteProducts(c *gin.Context) {
	products, err := h.ProductsService.GetFavoriteProducts(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, products)
}

// ListProductsByCategory 按分类获取商品
func (h *Handler) ListProductsByCategory(c *gin.Context) {
	products, err := h.ProductsService.GetProductsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, products)
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.ProductsService.GetProductByID(c.Request.Context(), uint(id))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, product)
}
