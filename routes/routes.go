package routes

import (
	"net/http"

	"github.com/BrianEstime1/hvac-backend/config"
	"github.com/BrianEstime1/hvac-backend/controllers"
	"github.com/BrianEstime1/hvac-backend/store"
	"github.com/BrianEstime1/hvac-backend/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(s *store.Store, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(log))
	r.Use(config.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", config.MetricsHandler())

	authController := controllers.NewAuthController(s, log)
	customerController := controllers.NewCustomerController(s, log)
	invoiceController := controllers.NewInvoiceController(s, log)
	appointmentController := controllers.NewAppointmentController(s, log)
	inventoryController := controllers.NewInventoryController(s, log)
	usageController := controllers.NewUsageController(s, log)
	quoteController := controllers.NewQuoteController(s, log)
	photoController := controllers.NewPhotoController(s, log)
	dashboardController := controllers.NewDashboardController(s, log)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
			customers.GET("/:id/invoices", customerController.GetCustomerInvoices)
			customers.GET("/:id/appointments", customerController.GetCustomerAppointments)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/:id", invoiceController.GetInvoice)
			invoices.PUT("/:id", invoiceController.UpdateInvoice)
			invoices.PUT("/:id/status", invoiceController.UpdateInvoiceStatus)
			invoices.PUT("/:id/signature", invoiceController.SetInvoiceSignature)
			invoices.DELETE("/:id", invoiceController.DeleteInvoice)
			invoices.GET("/:id/usage", invoiceController.GetInvoiceUsage)
			invoices.POST("/:id/photos", photoController.AddPhoto)
			invoices.GET("/:id/photos", photoController.GetInvoicePhotos)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.PUT("/:id/status", appointmentController.UpdateAppointmentStatus)
			appointments.PUT("/:id/link", appointmentController.LinkToInvoice)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
			appointments.GET("/:id/usage", appointmentController.GetAppointmentUsage)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", inventoryController.CreateItem)
			inventory.GET("", inventoryController.GetItems)
			inventory.GET("/low-stock", inventoryController.GetLowStock)
			inventory.GET("/search", inventoryController.SearchItems)
			inventory.GET("/value", inventoryController.GetTotalValue)
			inventory.GET("/:id", inventoryController.GetItem)
			inventory.PUT("/:id", inventoryController.UpdateItem)
			inventory.POST("/:id/adjust", inventoryController.AdjustQuantity)
			inventory.DELETE("/:id", inventoryController.DeleteItem)
			inventory.GET("/:id/usage", inventoryController.GetItemUsage)
		}

		// Usage recording
		api.POST("/usage", usageController.RecordUsage)

		// Quote routes
		quotes := api.Group("/quotes")
		{
			quotes.POST("", quoteController.CreateQuote)
			quotes.GET("", quoteController.GetQuotes)
			quotes.GET("/:id", quoteController.GetQuote)
			quotes.PUT("/:id", quoteController.UpdateQuote)
			quotes.DELETE("/:id", quoteController.DeleteQuote)
		}

		// Photo deletion is by id, not nested under an invoice
		api.DELETE("/photos/:id", photoController.DeletePhoto)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
