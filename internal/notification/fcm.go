package notification

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/v4/messaging"

	"github.com/knotapp/circle-management-backend/utils"
)

// Channel delivers a push notification to a set of device tokens.
type Channel interface {
	Send(ctx context.Context, tokens []string, title, body string) error
}

// FCMChannel implements Channel on Firebase Cloud Messaging. It relies on
// the messaging client initialized at startup; when Firebase is not
// configured every send degrades to a logged no-op error.
type FCMChannel struct{}

func NewFCMChannel() Channel {
	return &FCMChannel{}
}

func (f *FCMChannel) Send(ctx context.Context, tokens []string, title, body string) error {
	if !utils.IsFCMEnabled() {
		return fmt.Errorf("FCM client not initialized")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no FCM tokens provided")
	}

	// FCM allows max 500 tokens per multicast
	batchSize := 500
	failed := 0

	for i := 0; i < len(tokens); i += batchSize {
		end := i + batchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		batch := tokens[i:end]
		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					Sound:        "default",
					ChannelID:    "circle_notifications",
					Priority:     messaging.PriorityHigh,
					DefaultSound: true,
				},
			},
			Webpush: &messaging.WebpushConfig{
				Notification: &messaging.WebpushNotification{
					Title: title,
					Body:  body,
					Icon:  "/icon-192x192.png",
				},
			},
		}

		response, err := utils.FirebaseClient.SendEachForMulticast(ctx, message)
		if err != nil {
			log.Printf("❌ Error sending FCM multicast batch: %v", err)
			failed += len(batch)
			continue
		}

		failed += response.FailureCount
		log.Printf("✅ FCM multicast: %d/%d messages sent successfully", response.SuccessCount, len(batch))
	}

	if failed > 0 {
		return fmt.Errorf("failed to send to %d/%d tokens", failed, len(tokens))
	}
	return nil
}
