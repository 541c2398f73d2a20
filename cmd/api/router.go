package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// newRouter 创建并配置Gin引擎
// 路由分组规则：
// - 公开接口：注册/登录/刷新Token、图书与分类的读接口
// - 登录接口：购物车、订单、登出
// - 管理员接口：图书与分类的写操作、订单状态变更
func newRouter(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	categoryHandler *handler.CategoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档（访问 /swagger/index.html）
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证模块
		auth := v1.Group("/auth")
		{
			auth.POST("/registration", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
			auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 图书模块（读公开，写管理员）
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/search", bookHandler.SearchBooks)
			books.GET("/:id", bookHandler.GetBook)

			books.POST("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.PublishBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), bookHandler.DeleteBook)
		}

		// 分类模块（读公开，写管理员）
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.GET("/:id/books", categoryHandler.ListCategoryBooks)

			categories.POST("", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), categoryHandler.CreateCategory)
			categories.PUT("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), categoryHandler.UpdateCategory)
			categories.DELETE("/:id", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(), categoryHandler.DeleteCategory)
		}

		// 购物车模块（需要登录）
		cart := v1.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddItem)
			cart.PUT("/cart-items/:id", cartHandler.UpdateItem)
			cart.DELETE("/cart-items/:id", cartHandler.RemoveItem)
		}

		// 订单模块（需要登录；状态变更仅管理员）
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id/items", orderHandler.GetOrderItems)
			orders.GET("/:id/items/:itemId", orderHandler.GetOrderItem)
			orders.PATCH("/:id", authMiddleware.RequireAdmin(), orderHandler.UpdateStatus)
		}
	}

	return r
}
