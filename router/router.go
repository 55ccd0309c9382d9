package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kafekita/pos-app/controllers"
	"github.com/kafekita/pos-app/middlewares"
	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	store := storage.NewGateway(db)
	cart := services.NewCart()
	orderSvc := services.NewOrderService(store, cart)

	authCtrl := controllers.NewAuthController(store)
	productCtrl := controllers.NewProductController(store)
	categoryCtrl := controllers.NewCategoryController(store)
	settingsCtrl := controllers.NewSettingsController(store)
	cartCtrl := controllers.NewCartController(store, cart)
	orderCtrl := controllers.NewOrderController(store, orderSvc)
	stockCtrl := controllers.NewStockController(store)
	reportCtrl := controllers.NewReportController(store)
	backupCtrl := controllers.NewBackupController(store)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewLoginRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/change-password", authCtrl.ChangePassword)

	// CATALOG
	auth.GET("/products", productCtrl.GetAllProducts)
	auth.POST("/products", productCtrl.CreateProduct)
	auth.PUT("/products/:product_id", productCtrl.UpdateProduct)
	auth.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	auth.GET("/categories", categoryCtrl.GetAllCategories)
	auth.POST("/categories", categoryCtrl.CreateCategory)
	auth.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

	// TILL
	auth.GET("/cart", cartCtrl.GetCart)
	auth.POST("/cart/items", cartCtrl.AddItem)
	auth.PATCH("/cart/items", cartCtrl.UpdateQuantity)
	auth.DELETE("/cart", cartCtrl.ClearCart)
	auth.POST("/checkout", orderCtrl.Checkout)

	// HISTORY
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	auth.DELETE("/orders/:order_id", orderCtrl.VoidOrder)
	auth.GET("/orders/:order_id/receipt", orderCtrl.GetReceipt)

	// INVENTORY / SETTINGS
	auth.POST("/stock/reset", stockCtrl.ResetStock)
	auth.GET("/settings", settingsCtrl.GetSettings)
	auth.PUT("/settings", settingsCtrl.UpdateSettings)

	// REPORTS & BACKUP
	auth.GET("/reports/summary", reportCtrl.GetSummary)
	auth.GET("/backup/export", backupCtrl.Export)
	auth.POST("/backup/import", backupCtrl.Import)

	return r
}
