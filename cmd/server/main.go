package main

import (
	"log"
	"time"

	"oil-pos/internal/billing"
	"oil-pos/internal/cart"
	"oil-pos/internal/catalog"
	"oil-pos/internal/config"
	"oil-pos/internal/database"
	"oil-pos/internal/handlers"
	"oil-pos/internal/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}
	cfg := config.Load()

	store, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open local store:", err)
	}
	if err := store.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	catalogSvc := catalog.NewService(store)
	cartSvc := cart.NewService(store, catalogSvc)
	billingSvc := billing.NewService(store, cfg.TaxRate, cfg.BillPrefix)

	productHandler := &handlers.ProductHandler{Catalog: catalogSvc}
	cartHandler := &handlers.CartHandler{Cart: cartSvc, Billing: billingSvc}
	billingHandler := &handlers.BillingHandler{
		Billing:  billingSvc,
		QR:       payment.NewQRRenderer(),
		Currency: cfg.Currency,
	}
	reportHandler := &handlers.ReportHandler{Billing: billingSvc, Currency: cfg.Currency}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/products", productHandler.GetProducts)
		api.POST("/products", productHandler.AddProduct)
		api.PUT("/products/:id", productHandler.UpdateProduct)
		api.DELETE("/products/:id", productHandler.DeleteProduct)

		api.GET("/cart", cartHandler.GetCart)
		api.GET("/cart/preview", cartHandler.PreviewBill)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PATCH("/cart/items/:productId", cartHandler.ChangeQuantity)
		api.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.ClearCart)

		api.POST("/checkout", billingHandler.Checkout)
		api.GET("/bills", billingHandler.GetBills)
		api.GET("/bills/:id", billingHandler.GetBill)
		api.DELETE("/bills/:id", billingHandler.DeleteBill)

		api.GET("/reports/monthly", reportHandler.GetMonthlyReport)
		api.GET("/reports/monthly/chart", reportHandler.GetMonthlyChart)
	}

	// Serve the built frontend, if one is deployed next to the binary.
	r.Static("/assets", "./web/assets")
	r.NoRoute(func(c *gin.Context) {
		c.File("./web/index.html")
	})

	log.Println("🚀 POS server starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
