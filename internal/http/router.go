package api

import (
	stdhttp "net/http"

	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/dto"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Deps is everything the router hands to handlers. DB may be nil in tests.
type Deps struct {
	DB          *sqlx.DB
	Log         *zap.Logger
	Tokens      *auth.TokenIssuer
	CORSOrigins []string

	Users        *services.UserService
	Categories   *services.CategoryService
	Suppliers    *services.SupplierService
	Products     *services.ProductService
	Customers    *services.CustomerService
	Orders       *services.OrderService
	OrderDetails *services.OrderDetailService
	Inventories  *services.InventoryService
	Reports      *services.ReportService
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(d.Log), gin.Recovery(), middleware.CORS(d.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil && d.Log != nil {
		d.Log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, domain.ErrorResponse[any]("route not found", c.Request.Method+" "+c.Request.URL.Path))
	})

	system := &h.SystemHandler{DB: d.DB, Engine: r}
	authH := &h.AuthHandler{Users: d.Users}
	inventory := &h.InventoryHandler{Service: d.Inventories}
	reports := &h.ReportHandler{Reports: d.Reports}

	requireAuth := middleware.RequireAuth(d.Tokens)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)
		api.GET("/routes", system.Routes)

		// Auth
		authG := api.Group("/auth")
		authG.POST("/register", authH.Register)
		authG.POST("/login", authH.Login)
		authG.GET("/me", requireAuth, authH.Me)
		authG.GET("/users", requireAuth, adminOnly, authH.ListUsers)
		authG.PUT("/users/:id/promote", requireAuth, adminOnly, authH.Promote)

		secured := api.Group("", requireAuth)

		// Catalog
		h.NewResourceHandler[dto.CategoryDTO, dto.CreateCategoryRequest, dto.UpdateCategoryRequest]("Category", d.Categories).
			Mount(secured.Group("/categories"), adminOnly)
		h.NewResourceHandler[dto.SupplierDTO, dto.CreateSupplierRequest, dto.UpdateSupplierRequest]("Supplier", d.Suppliers).
			Mount(secured.Group("/suppliers"), adminOnly)
		h.NewResourceHandler[dto.ProductDTO, dto.CreateProductRequest, dto.UpdateProductRequest]("Product", d.Products).
			Mount(secured.Group("/products"), adminOnly)

		// Sales
		h.NewResourceHandler[dto.CustomerDTO, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]("Customer", d.Customers).
			Mount(secured.Group("/customers"), adminOnly)
		h.NewResourceHandler[dto.OrderDTO, dto.CreateOrderRequest, dto.UpdateOrderRequest]("Order", d.Orders).
			Mount(secured.Group("/orders"), adminOnly)
		h.NewResourceHandler[dto.OrderDetailDTO, dto.CreateOrderDetailRequest, dto.UpdateOrderDetailRequest]("OrderDetail", d.OrderDetails).
			Mount(secured.Group("/order-details"), adminOnly)

		// Inventory
		inventories := secured.Group("/inventories")
		h.NewResourceHandler[dto.InventoryDTO, dto.CreateInventoryRequest, dto.UpdateInventoryRequest]("Inventory", d.Inventories).
			Mount(inventories, adminOnly)
		inventories.POST("/:id/adjust", inventory.Adjust)
		secured.GET("/inventory-histories", inventory.History)

		// Reports
		rep := secured.Group("/reports")
		rep.GET("/product-by-category", reports.ProductsByCategory)
		rep.GET("/product-by-category.pdf", reports.ProductsByCategoryPDF)
		rep.GET("/product-by-category/:categoryId", reports.ProductsByCategoryID)
		rep.GET("/stock-history", reports.StockHistory)
		rep.GET("/stock-history.pdf", reports.StockHistoryPDF)
		rep.GET("/stock-history/product/:productId", reports.StockHistoryByProduct)
		rep.GET("/purchase-details", reports.PurchaseDetails)
		rep.GET("/purchase-details/:orderId", reports.PurchaseDetailsByOrder)
		rep.GET("/inventory-value", reports.InventoryValue)
	}

	return r
}
