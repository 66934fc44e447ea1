package router

import (
	"github.com/minimall-next/internal/config"
	adminhandlers "github.com/minimall-next/internal/http/handlers/admin"
	publichandlers "github.com/minimall-next/internal/http/handlers/public"
	"github.com/minimall-next/internal/logger"
	"github.com/minimall-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 公开接口
	r.GET("/", publicHandler.Home)
	r.GET("/products", publicHandler.ListProducts)
	r.GET("/register", publicHandler.RegisterPage)
	r.POST("/register", publicHandler.UserRegister)
	r.GET("/login", publicHandler.LoginPage)
	r.POST("/login", publicHandler.UserLogin)

	// 登录态接口，按角色授权
	authed := r.Group("")
	authed.Use(SessionAuthMiddleware(cfg.Session.SecretKey, c.UserRepo), RBACMiddleware(c.AuthzService))
	{
		authed.GET("/dashboard", publicHandler.Dashboard)
		authed.GET("/logout", publicHandler.UserLogout)
		authed.GET("/add_product", publicHandler.AddProductPage)
		authed.POST("/add_product", publicHandler.AddProduct)
		authed.GET("/cart", publicHandler.ViewCart)
		authed.GET("/add_to_cart/:product_id", publicHandler.AddToCart)
		authed.GET("/checkout", publicHandler.Checkout)

		// 管理员接口
		authed.GET("/admin/users", adminHandler.ListUsers)
		authed.GET("/admin/orders", adminHandler.ListOrders)
		authed.POST("/admin/update_order/:order_id", adminHandler.UpdateOrderStatus)
	}

	// 健康检查
	r.GET("/health", publicHandler.Health)

	return r
}
