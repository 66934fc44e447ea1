package public

import (
	"errors"

	"github.com/minimall-next/internal/http/response"
	"github.com/minimall-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrEmailInvalid, code: response.CodeBadRequest, msg: "email invalid"},
	{target: service.ErrEmailTaken, code: response.CodeBadRequest, msg: "email already registered"},
	{target: service.ErrPasswordRequired, code: response.CodeBadRequest, msg: "password required"},
	{target: service.ErrRoleInvalid, code: response.CodeBadRequest, msg: "role invalid"},
}

var addProductErrorRules = []mappedHandlerError{
	{target: service.ErrProductNameRequired, code: response.CodeBadRequest, msg: "product name required"},
	{target: service.ErrPriceNegative, code: response.CodeBadRequest, msg: "price must not be negative"},
	{target: service.ErrQuantityNegative, code: response.CodeBadRequest, msg: "quantity must not be negative"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest, msg: "insufficient stock"},
}
