package audit

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer receives drained audit batches.
type Producer interface {
	Send(ctx context.Context, entries []Entry) error
	Close() error
}

// KafkaProducer publishes audit entries to the platform audit topic.
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaProducer) Send(ctx context.Context, entries []Entry) error {
	messages := make([]kafka.Message, 0, len(entries))
	for _, entry := range entries {
		value, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(entry.ID),
			Value: value,
		})
	}
	return p.writer.WriteMessages(ctx, messages...)
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer writes audit entries to the log. Used when no Kafka
// brokers are configured, which is the local development default.
type ConsoleProducer struct {
	logger *zap.Logger
}

func NewConsoleProducer(logger *zap.Logger) *ConsoleProducer {
	return &ConsoleProducer{logger: logger}
}

func (p *ConsoleProducer) Send(_ context.Context, entries []Entry) error {
	for _, entry := range entries {
		p.logger.Info("audit",
			zap.String("id", entry.ID),
			zap.Time("timestamp", entry.Timestamp),
			zap.String("admin", entry.Admin),
			zap.String("action", entry.Action),
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status", entry.StatusCode),
			zap.String("owner_id", entry.OwnerID),
		)
	}
	return nil
}

func (p *ConsoleProducer) Close() error { return nil }
