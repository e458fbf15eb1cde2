package storefront

import (
	"errors"

	"github.com/coffeehouse-next/internal/catalog"
	"github.com/coffeehouse-next/internal/http/response"
	"github.com/coffeehouse-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondFieldErrors(c, fieldErrs)
		return
	}
	var upstreamErr *catalog.UpstreamError
	if errors.As(err, &upstreamErr) {
		respondError(c, response.CodeBadGateway, upstreamErr.Message, err)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

// respondFieldErrors 校验错误响应（按字段返回提示文案）
func respondFieldErrors(c *gin.Context, errs service.FieldErrors) {
	response.ErrorWithData(c, response.CodeBadRequest, "validation failed", gin.H{"fields": errs})
}

var customizeErrorRules = []mappedHandlerError{
	{target: service.ErrSessionNotFound, code: response.CodeNotFound, msg: "customize session not found"},
	{target: service.ErrInvalidSize, code: response.CodeBadRequest, msg: "invalid size option"},
	{target: service.ErrInvalidAdditive, code: response.CodeBadRequest, msg: "invalid additive option"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyAddress, code: response.CodeBadRequest, msg: "delivery address is required"},
	{target: service.ErrNotAuthenticated, code: response.CodeUnauthorized, msg: "authentication required"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
}

func respondCustomizeError(c *gin.Context, err error) {
	respondWithMappedError(c, err, customizeErrorRules, response.CodeInternal, "customize operation failed")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order create failed")
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, nil, response.CodeInternal, "catalog request failed")
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, nil, response.CodeInternal, "auth request failed")
}
