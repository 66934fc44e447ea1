package public

import (
	"github.com/minimall-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Home 首页，返回全部在售商品
func (h *Handler) Home(c *gin.Context) {
	products, err := h.CatalogService.ListProducts()
	if err != nil {
		respondError(c, response.CodeInternal, "load products failed", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// RegisterPage 注册页描述，供前端渲染表单
func (h *Handler) RegisterPage(c *gin.Context) {
	response.Success(c, gin.H{
		"fields": []string{"name", "email", "password", "role"},
	})
}

// LoginPage 登录页描述，未登录请求会被重定向到这里
func (h *Handler) LoginPage(c *gin.Context) {
	response.Success(c, gin.H{
		"fields": []string{"email", "password"},
	})
}

// Dashboard 登录后主页，返回当前身份
func (h *Handler) Dashboard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"user_id": userID,
		"role":    getUserRole(c),
	})
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
