package routes

import (
	"net/http"
	"time"

	"bookwise/config"
	"bookwise/handlers"
	"bookwise/middleware"
	"bookwise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRoutes registers tenant management endpoints. Creating and
// listing businesses needs only authentication; everything under the tenant
// group also needs membership of the addressed business.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateBusinessHandler)
		api.GET("/mine", hb.ListMyBusinessesHandler)

		tenant := api.Group("")
		tenant.Use(middleware.TenantMiddleware(hb.BusinessRepo))
		tenant.GET("/current", hb.GetBusinessHandler)
		tenant.PUT("/current", hb.UpdateBusinessHandler)
	}
}

// RegisterCatalogRoutes registers service, staff, hours and time-off endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.POST("/services", hb.CreateServiceHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.GET("/services", hb.ListServicesHandler)

		api.POST("/staff", hb.CreateStaffHandler)
		api.PUT("/staff/:id", hb.UpdateStaffHandler)
		api.GET("/staff", hb.ListStaffHandler)

		api.PUT("/staff/:id/hours", hb.SetWeeklyHoursHandler)
		api.GET("/staff/:id/hours", hb.GetWeeklyHoursHandler)
		api.POST("/staff/:id/time-off", hb.AddTimeOffHandler)
		api.DELETE("/staff/:id/time-off/:timeOffId", hb.RemoveTimeOffHandler)
	}
}

// RegisterAvailabilityRoutes registers the slot search endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.GET("", hb.GetAvailabilityHandler)
		api.GET("/best", hb.GetBestSlotHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id/status", hb.UpdateAppointmentStatusHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
		api.PUT("/:id/reschedule", hb.RescheduleAppointmentHandler)
	}
}

// RegisterCustomerRoutes registers customer record endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.POST("", hb.CreateCustomerHandler)
		api.GET("", hb.ListCustomersHandler)
		api.GET("/:id", hb.GetCustomerHandler)
	}
}

// RegisterLeadRoutes registers the public inquiry form and the tenant's lead
// inbox.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/public/:slug/leads", hb.CaptureLeadHandler)

	api := r.Group("/api/leads")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.GET("", hb.ListLeadsHandler)
	}
}

// RegisterInsightRoutes registers review and churn analytics endpoints.
func RegisterInsightRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/insights")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.POST("/reviews", hb.IngestReviewsHandler)
		api.GET("/reviews", hb.ListReviewsHandler)
		api.POST("/reviews/summarize", hb.RequestReviewSummaryHandler)
		api.GET("/reviews/summary", hb.GetLatestReviewSummaryHandler)

		api.POST("/churn", hb.RequestChurnSnapshotHandler)
		api.GET("/churn", hb.GetLatestChurnSnapshotHandler)
	}
}

// RegisterBillingRoutes registers Stripe endpoints. The webhook is public; the
// signature check is its authentication.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/billing/webhook", hb.StripeWebhookHandler)

	api := r.Group("/api/billing")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.POST("/checkout", hb.StartCheckoutHandler)
		api.POST("/portal", hb.BillingPortalHandler)
		api.GET("/subscription", hb.GetSubscriptionHandler)
	}
}

// RegisterAssistantRoutes registers the conversational booking endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.TenantMiddleware(hb.BusinessRepo))
		api.POST("/chat", hb.ChatHandler)
		api.DELETE("/chat/:sessionId", hb.EndChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterBusinessRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterInsightRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
