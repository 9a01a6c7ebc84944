package routes

import (
	"storefront-admin-api/handlers"
	"storefront-admin-api/middleware"
	"storefront-admin-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Business owner/staff routes ────────────────────────────────
	business := r.Group("/api/business")
	business.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner, models.RoleStaff))
	{
		// Business setup & profile
		business.POST("/", handlers.CreateBusiness)
		business.GET("/", handlers.GetMyBusiness)
		business.PUT("/", handlers.UpdateBusiness)
		business.PUT("/notifications", handlers.UpdateNotificationSettings)

		// Catalog management
		business.POST("/products", handlers.AddProduct)
		business.GET("/products", handlers.ListProducts)
		business.PUT("/products/:productId", handlers.UpdateProduct)
		business.DELETE("/products/:productId", handlers.DeleteProduct)

		// Customer directory
		business.POST("/customers", handlers.AddCustomer)
		business.GET("/customers", handlers.ListCustomers)
		business.PUT("/customers/:customerId", handlers.UpdateCustomer)

		// Order management
		business.POST("/orders", handlers.CreateOrder)
		business.GET("/orders", handlers.ListOrders)
		business.GET("/orders/:id", handlers.GetOrderDetail)
		business.GET("/orders/:id/transitions", handlers.GetOrderTransitions)
		business.GET("/orders/:id/notification", handlers.GetOrderNotification)
		business.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		business.PUT("/orders/:id/complete", handlers.CompleteOrder)
		business.PUT("/orders/:id/cancel", handlers.CancelOrder)
		business.PUT("/orders/:id/payment", handlers.UpdatePaymentStatus)
		business.PUT("/orders/:id/delivery-time", handlers.UpdateDeliveryTime)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/businesses", handlers.AdminGetAllBusinesses)
	}
}
