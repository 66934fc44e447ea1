package service

import "errors"

// 业务哨兵错误，由 handler 层统一映射为接口错误响应
var (
	ErrEmailInvalid       = errors.New("email invalid")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordRequired   = errors.New("password required")
	ErrRoleInvalid        = errors.New("role invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProductNameRequired = errors.New("product name required")
	ErrPriceNegative       = errors.New("price must be non-negative")
	ErrQuantityNegative    = errors.New("quantity must be non-negative")
	ErrProductNotFound     = errors.New("product not found")

	ErrCartEmpty         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStatusInvalid = errors.New("order status invalid")
)
