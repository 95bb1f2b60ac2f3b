package utils

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/knotapp/circle-management-backend/config"
)

var kafkaWriter *kafka.Writer

// InitializeKafka sets up the shared writer for the circle events topic.
// Optional: when KAFKA_BROKERS is unset, publishes become no-ops and the
// notification fan-out is handled synchronously by the caller.
func InitializeKafka(cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		log.Println("ℹ️ KAFKA_BROKERS not set, skipping Kafka init")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}

	log.Printf("✅ Kafka writer ready (topic %s)", cfg.KafkaTopic)
}

// IsKafkaEnabled reports whether a writer was configured.
func IsKafkaEnabled() bool {
	return kafkaWriter != nil
}

// PublishMessage writes one keyed message to the events topic.
func PublishMessage(ctx context.Context, key string, value []byte) error {
	if kafkaWriter == nil {
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return kafkaWriter.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

// NewKafkaReader builds a consumer for the events topic.
func NewKafkaReader(cfg *config.Config, groupID string) *kafka.Reader {
	if cfg.KafkaBrokers == "" {
		return nil
	}

	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		GroupID:  groupID,
		Topic:    cfg.KafkaTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// CloseKafka flushes and closes the writer on shutdown.
func CloseKafka() {
	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			log.Printf("⚠️ Kafka writer close: %v", err)
		}
	}
}
