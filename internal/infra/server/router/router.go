// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dapur-ledger/backend/internal/domain/rbac"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	orderController       *controller.OrderController
	categoryController    *controller.CategoryController
	dashboardController   *controller.DashboardController
	permissionController  *controller.PermissionController
	userController        *controller.UserController
	exportController      *controller.ExportController
	backupController      *controller.BackupController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	permissionMiddleware  *middleware.PermissionMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	orderController *controller.OrderController,
	categoryController *controller.CategoryController,
	dashboardController *controller.DashboardController,
	permissionController *controller.PermissionController,
	userController *controller.UserController,
	exportController *controller.ExportController,
	backupController *controller.BackupController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	permissionMiddleware *middleware.PermissionMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		orderController:       orderController,
		categoryController:    categoryController,
		dashboardController:   dashboardController,
		permissionController:  permissionController,
		userController:        userController,
		exportController:      exportController,
		backupController:      backupController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		permissionMiddleware:  permissionMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every business route sits
// behind authentication plus a matrix permission gate, so an admin's toggle
// takes effect on the next request.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}

	authed := v1.Group("")
	authed.Use(r.authMiddleware.Authenticate())

	gate := r.permissionMiddleware.Require

	transactions := authed.Group("/transactions")
	{
		transactions.GET("", gate(rbac.CategoryTransactions, rbac.ActionView), r.transactionController.List)
		transactions.POST("", gate(rbac.CategoryTransactions, rbac.ActionCreate), r.transactionController.Create)
		transactions.PUT("/:id", gate(rbac.CategoryTransactions, rbac.ActionEdit), r.transactionController.Update)
		transactions.DELETE("/:id", gate(rbac.CategoryTransactions, rbac.ActionDelete), r.transactionController.Delete)
		transactions.GET("/export", gate(rbac.CategoryTransactions, rbac.ActionExport), r.exportController.Transactions)
	}

	orders := authed.Group("/orders")
	{
		orders.GET("", gate(rbac.CategoryOrders, rbac.ActionView), r.orderController.List)
		orders.POST("", gate(rbac.CategoryOrders, rbac.ActionCreate), r.orderController.Create)
		orders.PUT("/:id", gate(rbac.CategoryOrders, rbac.ActionEdit), r.orderController.Update)
		orders.DELETE("/:id", gate(rbac.CategoryOrders, rbac.ActionDelete), r.orderController.Delete)
		orders.GET("/export", gate(rbac.CategoryOrders, rbac.ActionExport), r.exportController.Orders)
	}

	categories := authed.Group("/categories")
	{
		categories.GET("", gate(rbac.CategoryCategories, rbac.ActionView), r.categoryController.List)
		categories.POST("", gate(rbac.CategoryCategories, rbac.ActionCreate), r.categoryController.Create)
		categories.PUT("/:id", gate(rbac.CategoryCategories, rbac.ActionEdit), r.categoryController.Update)
		categories.DELETE("/:id", gate(rbac.CategoryCategories, rbac.ActionDelete), r.categoryController.Delete)
		categories.PUT("/:id/reorder", gate(rbac.CategoryCategories, rbac.ActionReorder), r.categoryController.Reorder)
	}

	dashboard := authed.Group("/dashboard")
	{
		dashboard.GET("/summary", gate(rbac.CategoryDashboard, rbac.ActionView), r.dashboardController.Summary)
		dashboard.GET("/orders-breakdown", gate(rbac.CategoryDashboard, rbac.ActionView), r.dashboardController.OrdersBreakdown)
	}

	permissions := authed.Group("/permissions")
	{
		// Reading the matrix needs no extra grant; the client uses it to
		// decide which tabs to draw.
		permissions.GET("", r.permissionController.GetMatrix)
		permissions.GET("/default-tab", r.permissionController.DefaultTab)
		permissions.PUT("", gate(rbac.CategoryAdmin, rbac.ActionManagePermissions), r.permissionController.UpdatePermission)
	}

	admin := authed.Group("/admin")
	{
		admin.GET("/users", gate(rbac.CategoryAdmin, rbac.ActionManageUsers), r.userController.List)
		admin.POST("/users", gate(rbac.CategoryAdmin, rbac.ActionManageUsers), r.userController.Create)
		admin.PUT("/users/:id", gate(rbac.CategoryAdmin, rbac.ActionManageUsers), r.userController.Update)
		admin.POST("/reset", gate(rbac.CategoryAdmin, rbac.ActionResetData), r.userController.ResetData)
		admin.GET("/backup", gate(rbac.CategoryAdmin, rbac.ActionBackup), r.backupController.Export)
		admin.POST("/backup", gate(rbac.CategoryAdmin, rbac.ActionBackup), r.backupController.Import)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
