// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"

	"orderflow/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// StatusNotifier implements ports.StatusNotifier on a kafka-go Writer.
// Events are keyed by order ID so all transitions of one order land in the
// same partition and keep their relative order.
type StatusNotifier struct {
	writer *kafka.Writer
}

// NewStatusNotifier creates a notifier writing to the given topic writer.
func NewStatusNotifier(writer *kafka.Writer) *StatusNotifier {
	return &StatusNotifier{writer: writer}
}

// NotifyStatusChanged publishes one status change event as JSON.
func (n *StatusNotifier) NotifyStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (n *StatusNotifier) Close() error {
	return n.writer.Close()
}

// NewWriter builds a kafka Writer for the given broker address and topic.
func NewWriter(addr string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(addr),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
