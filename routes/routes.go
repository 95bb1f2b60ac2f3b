package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	_ "github.com/knotapp/circle-management-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/knotapp/circle-management-backend/config"
	"github.com/knotapp/circle-management-backend/internal/event"
	"github.com/knotapp/circle-management-backend/internal/history"
	"github.com/knotapp/circle-management-backend/internal/member"
	"github.com/knotapp/circle-management-backend/internal/notification"
	"github.com/knotapp/circle-management-backend/internal/payment"
	"github.com/knotapp/circle-management-backend/internal/reports"
	"github.com/knotapp/circle-management-backend/internal/rsvp"
	"github.com/knotapp/circle-management-backend/middleware"
)

// Setup wires the module graph and registers every route. The notification
// service is built in main so the Kafka consumer can share it.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifSvc notification.Service) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())

	// ========== Members ==========
	memberRepo := member.NewRepository(db)
	memberSvc := member.NewService(memberRepo)
	memberHandler := member.NewHandler(memberSvc)

	// ========== History ==========
	historyRepo := history.NewRepository(db)
	historySvc := history.NewService(historyRepo)
	historyHandler := history.NewHandler(historySvc)

	// ========== Events ==========
	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo, notifSvc)
	eventHandler := event.NewHandler(eventSvc)

	// ========== Payments ==========
	paymentRepo := payment.NewRepository(db)
	paymentSvc := payment.NewService(paymentRepo, memberSvc, cfg)
	paymentHandler := payment.NewHandler(paymentSvc)

	// ========== RSVPs ==========
	rsvpRepo := rsvp.NewRepository(db)
	rsvpSvc := rsvp.NewService(rsvpRepo, rsvpRepo, paymentRepo, historySvc, memberSvc)
	rsvpHandler := rsvp.NewHandler(rsvpSvc)

	// ========== Reports ==========
	reportsRepo := reports.NewRepository(db)
	reportsSvc := reports.NewService(reportsRepo, reports.NewReportExporter())
	reportsHandler := reports.NewHandler(reportsSvc)

	notificationHandler := notification.NewHandler(notifSvc)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg, memberSvc))

	// ========== Member Routes ==========
	protected.GET("/members", memberHandler.ListMembers)
	protected.GET("/members/me", memberHandler.GetMe)

	// ========== Event Routes ==========
	eventRoutes := protected.Group("/events")
	{
		eventRoutes.GET("", eventHandler.ListEvents)
		eventRoutes.GET("/upcoming", eventHandler.GetUpcomingEvents)
		eventRoutes.GET("/stats", eventHandler.GetEventStats)
		eventRoutes.GET("/:id", eventHandler.GetEvent)
		eventRoutes.POST("", middleware.RequireManager(), eventHandler.CreateEvent)
		eventRoutes.DELETE("/:id", middleware.RequireManager(), eventHandler.DeleteEvent)

		// RSVPs (manager bypass handled inside the service)
		eventRoutes.POST("/:id/rsvp", rsvpHandler.SubmitRSVP)
		eventRoutes.GET("/:id/rsvps", rsvpHandler.ListRSVPs)
		eventRoutes.GET("/:id/rsvps/me", rsvpHandler.GetMyRSVP)

		// Fee collection
		eventRoutes.GET("/:id/payments", paymentHandler.ListEventPayments)
		eventRoutes.GET("/:id/payments/summary", paymentHandler.GetCollectionSummary)
		eventRoutes.POST("/:id/payments/order", paymentHandler.StartFeePayment)
		eventRoutes.PATCH("/:id/payments/:user_id", middleware.RequireManager(), paymentHandler.SetPaymentStatus)
		eventRoutes.POST("/:id/payments/reconcile", middleware.RequireManager(), paymentHandler.ReconcileEvent)
	}

	protected.POST("/payments/verify", paymentHandler.VerifyFeePayment)

	// ========== History Routes (owner/admin) ==========
	historyRoutes := protected.Group("/history")
	historyRoutes.Use(middleware.RequireManager())
	{
		historyRoutes.GET("/rsvps", historyHandler.ListRsvpHistory)
	}

	// ========== Report Routes (owner/admin) ==========
	reportRoutes := protected.Group("/reports")
	reportRoutes.Use(middleware.RequireManager())
	{
		reportRoutes.GET("/attendance", reportsHandler.ExportAttendance)
		reportRoutes.GET("/collection", reportsHandler.ExportCollection)
		reportRoutes.GET("/events/:id", reportsHandler.ExportEventDetail)
	}

	// ========== Notification Routes ==========
	notificationRoutes := protected.Group("/notifications")
	{
		notificationRoutes.GET("", notificationHandler.ListNotifications)
		notificationRoutes.POST("/device-token", notificationHandler.RegisterDeviceToken)
		notificationRoutes.DELETE("/device-token", notificationHandler.RemoveDeviceToken)
		notificationRoutes.PATCH("/read-all", notificationHandler.MarkAllAsRead)
		notificationRoutes.PATCH("/:id/read", notificationHandler.MarkAsRead)
	}
}
