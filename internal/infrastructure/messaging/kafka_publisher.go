package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/scamdunk/risk-engine/internal/domain/event"
)

// KafkaAlertPublisher implements port.AlertPublisher using Kafka.
type KafkaAlertPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewKafkaAlertPublisher creates an alert publisher writing to topic on the
// given brokers.
func NewKafkaAlertPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaAlertPublisher {
	return &KafkaAlertPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkago.LeastBytes{},
		},
		logger: logger,
	}
}

// Publish sends high-risk alert events to Kafka. The scan ID is used as the
// message key so alerts for the same scan land in the same partition.
func (p *KafkaAlertPublisher) Publish(ctx context.Context, events ...event.HighRiskDetected) error {
	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}
		messages = append(messages, kafkago.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(evt.EventType())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.writer.Topic, err)
	}

	p.logger.Info("published high-risk alerts",
		slog.Int("count", len(messages)),
		slog.String("topic", p.writer.Topic),
	)
	return nil
}

// Close closes the underlying Kafka writer.
func (p *KafkaAlertPublisher) Close() error {
	return p.writer.Close()
}

// NoopAlertPublisher implements port.AlertPublisher without a broker. Used in
// development when no Kafka broker is configured; events are logged only.
type NoopAlertPublisher struct {
	logger *slog.Logger
}

// NewNoopAlertPublisher creates a publisher that only logs events.
func NewNoopAlertPublisher(logger *slog.Logger) *NoopAlertPublisher {
	return &NoopAlertPublisher{logger: logger}
}

// Publish logs each event at debug level.
func (p *NoopAlertPublisher) Publish(_ context.Context, events ...event.HighRiskDetected) error {
	for _, evt := range events {
		p.logger.Debug("high-risk alert (no broker configured)",
			slog.String("event_type", evt.EventType()),
			slog.String("scan_id", evt.ScanID.String()),
			slog.String("domain", evt.Domain),
			slog.Int("score", evt.Score),
		)
	}
	return nil
}
