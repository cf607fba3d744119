// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dapur-ledger/backend/config"
	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/application/usecase/admin"
	"github.com/dapur-ledger/backend/internal/application/usecase/auth"
	"github.com/dapur-ledger/backend/internal/application/usecase/backup"
	"github.com/dapur-ledger/backend/internal/application/usecase/category"
	"github.com/dapur-ledger/backend/internal/application/usecase/dashboard"
	"github.com/dapur-ledger/backend/internal/application/usecase/export"
	"github.com/dapur-ledger/backend/internal/application/usecase/order"
	"github.com/dapur-ledger/backend/internal/application/usecase/permission"
	"github.com/dapur-ledger/backend/internal/application/usecase/transaction"
	"github.com/dapur-ledger/backend/internal/infra/server/router"
	"github.com/dapur-ledger/backend/internal/integration/adapters"
	"github.com/dapur-ledger/backend/internal/integration/cache"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/dapur-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	Router            *router.Router
	NotificationQueue adapter.NotificationQueueRepository
	PermissionRepo    adapter.PermissionRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the permission matrix then skips the cache layer.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	orderRepo := persistence.NewOrderRepository(db)
	permissionRepo := persistence.NewPermissionRepository(db)
	notificationQueueRepo := persistence.NewNotificationQueueRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	var permissionCache adapter.PermissionCache
	if redisClient != nil {
		permissionCache = cache.NewPermissionCache(redisClient)
	}

	// Auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Order use cases
	listOrdersUseCase := order.NewListOrdersUseCase(orderRepo)
	createOrderUseCase := order.NewCreateOrderUseCase(orderRepo, notificationQueueRepo)
	updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo, notificationQueueRepo)
	deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, transactionRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	reorderCategoryUseCase := category.NewReorderCategoryUseCase(categoryRepo)

	// Dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo)
	getOrdersBreakdownUseCase := dashboard.NewGetOrdersBreakdownUseCase(transactionRepo)

	// Permission use cases
	getMatrixUseCase := permission.NewGetMatrixUseCase(permissionRepo, permissionCache)
	updatePermissionUseCase := permission.NewUpdatePermissionUseCase(permissionRepo, permissionCache)
	resolveAccessUseCase := permission.NewResolveAccessUseCase(getMatrixUseCase)

	// Admin use cases
	listUsersUseCase := admin.NewListUsersUseCase(userRepo)
	createUserUseCase := admin.NewCreateUserUseCase(userRepo, passwordService)
	updateUserUseCase := admin.NewUpdateUserUseCase(userRepo, passwordService)
	resetDataUseCase := admin.NewResetDataUseCase(transactionRepo, categoryRepo, orderRepo, userRepo)

	// Export and backup use cases
	exportTransactionsUseCase := export.NewExportTransactionsUseCase(transactionRepo)
	exportOrdersUseCase := export.NewExportOrdersUseCase(orderRepo)
	exportBackupUseCase := backup.NewExportBackupUseCase(transactionRepo, categoryRepo, userRepo)
	importBackupUseCase := backup.NewImportBackupUseCase(transactionRepo, categoryRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	orderController := controller.NewOrderController(
		createOrderUseCase,
		listOrdersUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		reorderCategoryUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getOrdersBreakdownUseCase,
	)

	permissionController := controller.NewPermissionController(
		getMatrixUseCase,
		updatePermissionUseCase,
		resolveAccessUseCase,
	)

	userController := controller.NewUserController(
		listUsersUseCase,
		createUserUseCase,
		updateUserUseCase,
		resetDataUseCase,
	)

	exportController := controller.NewExportController(
		exportTransactionsUseCase,
		exportOrdersUseCase,
	)

	backupController := controller.NewBackupController(
		exportBackupUseCase,
		importBackupUseCase,
	)

	// Middleware. Tests get a high login rate limit to stay deterministic.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	permissionMiddleware := middleware.NewPermissionMiddleware(resolveAccessUseCase)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		orderController,
		categoryController,
		dashboardController,
		permissionController,
		userController,
		exportController,
		backupController,
		loginRateLimiter,
		authMiddleware,
		permissionMiddleware,
	)

	return &Injector{
		Config:            cfg,
		DB:                db,
		Router:            r,
		NotificationQueue: notificationQueueRepo,
		PermissionRepo:    permissionRepo,
	}
}
