package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/knotapp/circle-management-backend/config"
	"github.com/knotapp/circle-management-backend/database"
	"github.com/knotapp/circle-management-backend/internal/event"
	"github.com/knotapp/circle-management-backend/internal/history"
	"github.com/knotapp/circle-management-backend/internal/member"
	"github.com/knotapp/circle-management-backend/internal/notification"
	"github.com/knotapp/circle-management-backend/internal/payment"
	"github.com/knotapp/circle-management-backend/internal/rsvp"
	"github.com/knotapp/circle-management-backend/routes"
	"github.com/knotapp/circle-management-backend/utils"
)

// @title Circle Management API
// @version 1.0
// @description Backend for circle event scheduling, RSVPs and fee collection.
// @BasePath /
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}

	// Init Kafka
	utils.InitializeKafka(cfg)
	defer utils.CloseKafka()

	// 🔥 Init Firebase - SINGLE INITIALIZATION POINT
	log.Println("🔄 Initializing Firebase...")
	if err := utils.InitFirebase(); err != nil {
		log.Printf("⚠️ Firebase initialization failed: %v", err)
		log.Println("ℹ️ Continuing without Firebase (push notifications will be disabled)")
	} else if utils.IsFCMEnabled() {
		log.Println("✅ Firebase and FCM initialized successfully")
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&member.Circle{},
		&member.Member{},
		&event.Event{},
		&rsvp.RSVP{},
		&payment.Payment{},
		&history.RsvpHistory{},
		&notification.InAppNotification{},
		&notification.FCMDeviceToken{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Notification fan-out shares one service between the Kafka consumer
	// and the in-process fallback used when no broker is configured.
	memberRepo := member.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo, memberRepo, notification.NewFCMChannel())
	notification.StartKafkaConsumer(context.Background(), cfg, notificationService)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, db, cfg, notificationService)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	if utils.IsFCMEnabled() {
		fmt.Println("✅ Firebase Cloud Messaging enabled")
	} else {
		fmt.Println("ℹ️ Firebase Cloud Messaging disabled")
		if err := utils.GetInitError(); err != nil {
			fmt.Printf("   Reason: %v\n", err)
		}
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
