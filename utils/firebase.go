package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FirebaseApp    *firebase.App
	FirebaseClient *messaging.Client
	once           sync.Once
	initErr        error
	isInitialized  bool
)

// InitFirebase initializes Firebase Admin SDK and FCM client (singleton pattern)
func InitFirebase() error {
	if isInitialized {
		log.Println("ℹ️ Firebase already initialized, skipping...")
		return initErr
	}

	once.Do(func() {
		ctx := context.Background()

		// Get credentials path - prioritize GOOGLE_APPLICATION_CREDENTIALS
		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			credentialsPath = os.Getenv("FCM_CREDENTIALS_PATH")
		}
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}

		projectID := os.Getenv("FIREBASE_PROJECT_ID")
		if projectID == "" {
			projectID = os.Getenv("FCM_PROJECT_ID")
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Printf("⚠️ Firebase credentials file not found at: %s", credentialsPath)
			log.Println("ℹ️ Continuing without Firebase (push notifications will be disabled)")
			isInitialized = true
			initErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			return
		}

		if projectID == "" {
			log.Println("⚠️ FIREBASE_PROJECT_ID not set - FCM will not work properly")
			isInitialized = true
			initErr = fmt.Errorf("FIREBASE_PROJECT_ID is required for FCM")
			return
		}

		conf := &firebase.Config{
			ProjectID: projectID,
		}

		opt := option.WithCredentialsFile(credentialsPath)
		app, err := firebase.NewApp(ctx, conf, opt)
		if err != nil {
			isInitialized = true
			initErr = fmt.Errorf("error initializing firebase app: %w", err)
			return
		}
		FirebaseApp = app

		client, err := app.Messaging(ctx)
		if err != nil {
			isInitialized = true
			initErr = fmt.Errorf("error getting FCM client: %w", err)
			return
		}

		FirebaseClient = client
		isInitialized = true
		log.Printf("✅ Firebase initialized for project: %s", projectID)
	})

	return initErr
}

// IsFCMEnabled reports whether the messaging client is ready for use.
func IsFCMEnabled() bool {
	return FirebaseClient != nil
}

// GetInitError returns the initialization error, if any.
func GetInitError() error {
	return initErr
}
