package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/knotapp/circle-management-backend/config"
	"github.com/knotapp/circle-management-backend/utils"
)

// StartKafkaConsumer drains the event topic and fans each event.created
// message out to circle members. Returns immediately; consumption runs in
// a goroutine until ctx is cancelled. No-op when Kafka is not configured.
func StartKafkaConsumer(ctx context.Context, cfg *config.Config, svc Service) {
	if !utils.IsKafkaEnabled() {
		log.Println("ℹ️ Kafka not configured, event fan-out runs in-process")
		return
	}

	reader := utils.NewKafkaReader(cfg, "notification-service")

	go func() {
		defer reader.Close()
		log.Printf("✅ Kafka consumer started on topic %s", cfg.KafkaTopic)

		for {
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Println("ℹ️ Kafka consumer stopped")
					return
				}
				log.Printf("⚠️ Kafka read failed: %v", err)
				time.Sleep(time.Second)
				continue
			}

			var msg EventCreatedMessage
			if err := json.Unmarshal(m.Value, &msg); err != nil {
				log.Printf("⚠️ Dropping malformed event message at offset %d: %v", m.Offset, err)
				continue
			}

			if err := svc.NotifyEventCreated(ctx, msg); err != nil {
				log.Printf("⚠️ Event fan-out failed for event %d: %v", msg.EventID, err)
			}
		}
	}()
}
