package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tu-usuario/inventrack-api/internal/application/activity"
	"github.com/tu-usuario/inventrack-api/internal/application/auth"
	"github.com/tu-usuario/inventrack-api/internal/application/order"
	"github.com/tu-usuario/inventrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlaceOrder   *order.PlaceOrderUseCase
	UpdateStatus *order.UpdateStatusUseCase
	OrderQuery   *order.QueryUseCase
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	SupplierUC   *usecase.SupplierUseCase
	CategoryUC   *usecase.CategoryUseCase
	ActivityFeed *activity.FeedUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Los paths replican el backend original
// (prefijos sin /api): /auth, /products, /suppliers, /customer, /category,
// /orders, /analytics.
func Router(app *fiber.App, deps RouterDeps) {
	// Métricas Prometheus (público)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	protected := AuthMiddleware(deps.JWTSecret)

	// Orders (protegido) — el núcleo transaccional
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.UpdateStatus, deps.OrderQuery)
	orders := app.Group("/orders", protected)
	orders.Post("/", orderHandler.PlaceOrder)
	orders.Get("/", orderHandler.List)
	orders.Get("/:order_id", orderHandler.Items)
	orders.Put("/:id", orderHandler.UpdateStatus)

	// Products (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	products := app.Group("/products", protected)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:product_id", productHandler.GetByID)
	products.Put("/:product_id", productHandler.Update)
	products.Delete("/:product_id", productHandler.Delete)

	// Customers (protegido)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := app.Group("/customer", protected)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:customer_id", customerHandler.GetByID)
	customers.Delete("/:customer_id", customerHandler.Delete)

	// Suppliers (protegido)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := app.Group("/suppliers", protected)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:supplier_id", supplierHandler.GetByID)
	suppliers.Delete("/:supplier_id", supplierHandler.Delete)

	// Categories (protegido)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := app.Group("/category", protected)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:category_id", categoryHandler.Delete)

	// Analytics (protegido)
	analyticsHandler := NewAnalyticsHandler(deps.ActivityFeed)
	analytics := app.Group("/analytics", protected)
	analytics.Get("/recent-activity", analyticsHandler.RecentActivity)
}
