package constants

// 用户角色常量
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleUser   = "user"
)

// Roles 闭合角色集合
var Roles = []string{RoleAdmin, RoleVendor, RoleUser}

// RoleValid 判断角色是否在闭合集合内
func RoleValid(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// 订单状态常量
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// OrderStatuses 闭合订单状态集合
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// OrderStatusValid 判断订单状态是否在闭合集合内
func OrderStatusValid(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// 会话常量
const (
	SessionCookieName = "mm_session"
	ContextKeyUserID  = "user_id"
	ContextKeyRole    = "role"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "mm"
)
