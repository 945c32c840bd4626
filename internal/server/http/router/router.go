package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/allmart/backoffice/internal/pkg/permission"
	"github.com/allmart/backoffice/internal/server/http/handlers"
	"github.com/allmart/backoffice/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Storefront
// routes are public; back-office routes require a session and the matching
// permission.
func Setup(facade handlers.BackofficeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)
	api.GET("/categories", catalogHandler.ListCategories)
	api.POST("/orders", orderHandler.Checkout)

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)

	authed := admin.Group("")
	authed.Use(middleware.AuthRequired(facade))

	orders := authed.Group("/orders")
	orders.GET("", middleware.Require(permission.OrdersView), orderHandler.List)
	orders.GET("/export", middleware.Require(permission.OrdersView), orderHandler.Export)
	orders.GET("/:id", middleware.Require(permission.OrdersView), orderHandler.Get)
	orders.PUT("/:id/status", middleware.Require(permission.OrdersEdit), orderHandler.ChangeStatus)
	orders.PATCH("/:id", middleware.Require(permission.OrdersEdit), orderHandler.Patch)
	orders.PUT("/:id/paid", middleware.Require(permission.OrdersMarkPaid), orderHandler.MarkPaid)
	orders.DELETE("/:id", middleware.Require(permission.OrdersDelete), orderHandler.Delete)

	categories := authed.Group("/categories")
	categories.POST("", middleware.Require(permission.CategoriesCreate), catalogHandler.CreateCategory)
	categories.PATCH("/:id", middleware.Require(permission.CategoriesEdit), catalogHandler.UpdateCategory)
	categories.DELETE("/:id", middleware.Require(permission.CategoriesDelete), catalogHandler.DeleteCategory)

	products := authed.Group("/products")
	products.POST("", middleware.Require(permission.ProductsCreate), catalogHandler.CreateProduct)
	products.PUT("/:id", middleware.Require(permission.ProductsEdit), catalogHandler.UpdateProduct)
	products.DELETE("/:id", middleware.Require(permission.ProductsDelete), catalogHandler.DeleteProduct)
	products.PUT("/:id/variants", middleware.Require(permission.VariantsEdit), catalogHandler.ReplaceVariants)

	authed.GET("/reports", middleware.Require(permission.ReportsView), reportHandler.Build)

	return engine
}
