package main

import (
	"context"
	"fmt"
	"log"
	"time"

	appbook "github.com/xiebiao/bookshop/internal/application/book"
	appcart "github.com/xiebiao/bookshop/internal/application/cart"
	appcategory "github.com/xiebiao/bookshop/internal/application/category"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/category"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/circuitbreaker"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/mq"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// bookDetailCacheTTL 图书详情缓存时长
// 详情页读多写少，写路径会主动失效缓存，TTL只是兜底
const bookDetailCacheTTL = 10 * time.Minute

// main 主程序入口
// 说明：手动依赖注入（Repository ← Service ← UseCase ← Handler）
// wire.go提供等价的Wire注入器，`wire gen ./cmd/api`后可切换
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. Prometheus指标注册
	metrics.InitMetrics()

	// 3. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Printf("关闭链路追踪失败: %v", err)
			}
		}()
	}

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 6. 初始化消息发布者
	// MQ不可用时降级启动：订单事件不发布，下单主流程不受影响
	var eventPublisher apporder.EventPublisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL(), cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		log.Printf("连接RabbitMQ失败，订单事件发布降级: %v", err)
	} else {
		defer publisher.Close()
		eventPublisher = publisher
	}

	// 订单事件发布走熔断器，MQ抖动时快速失败
	orderEventBreaker := circuitbreaker.NewCircuitBreaker("order-events", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	// 7. 依赖注入（手动组装）

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	bookCache := redis.NewBookCache(redisClient, bookDetailCacheTTL)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	categoryService := category.NewService(categoryRepo)
	cartService := cart.NewService(cartRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, jwtManager)
	refreshUseCase := appuser.NewRefreshTokenUseCase(jwtManager)

	publishBookUseCase := appbook.NewPublishBookUseCase(bookService, categoryService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, categoryService, bookCache)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, bookCache)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, bookCache)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)

	createCategoryUseCase := appcategory.NewCreateCategoryUseCase(categoryService)
	updateCategoryUseCase := appcategory.NewUpdateCategoryUseCase(categoryService)
	deleteCategoryUseCase := appcategory.NewDeleteCategoryUseCase(categoryService)
	getCategoryUseCase := appcategory.NewGetCategoryUseCase(categoryService)
	listCategoriesUseCase := appcategory.NewListCategoriesUseCase(categoryService)
	listCategoryBooksUseCase := appcategory.NewListCategoryBooksUseCase(categoryService, bookRepo)

	getCartUseCase := appcart.NewGetCartUseCase(cartService, bookRepo)
	addCartItemUseCase := appcart.NewAddItemUseCase(cartService, bookRepo)
	updateCartItemUseCase := appcart.NewUpdateItemUseCase(cartService)
	removeCartItemUseCase := appcart.NewRemoveItemUseCase(cartService)

	createOrderUseCase := apporder.NewCreateOrderUseCase(
		orderRepo, cartRepo, bookRepo, txManager, eventPublisher, orderEventBreaker)
	updateOrderStatusUseCase := apporder.NewUpdateStatusUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	orderItemsUseCase := apporder.NewGetOrderItemsUseCase(orderRepo)
	orderItemUseCase := apporder.NewGetOrderItemUseCase(orderRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, refreshUseCase)
	bookHandler := handler.NewBookHandler(publishBookUseCase, updateBookUseCase, deleteBookUseCase,
		getBookUseCase, listBooksUseCase, searchBooksUseCase)
	categoryHandler := handler.NewCategoryHandler(createCategoryUseCase, updateCategoryUseCase,
		deleteCategoryUseCase, getCategoryUseCase, listCategoriesUseCase, listCategoryBooksUseCase)
	cartHandler := handler.NewCartHandler(getCartUseCase, addCartItemUseCase,
		updateCartItemUseCase, removeCartItemUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, updateOrderStatusUseCase,
		listOrdersUseCase, orderItemsUseCase, orderItemUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 路由与启动
	r := newRouter(cfg, userHandler, bookHandler, categoryHandler, cartHandler, orderHandler, authMiddleware)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}
