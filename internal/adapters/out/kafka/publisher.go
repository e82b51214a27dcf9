// Package kafka publishes outbox events to the order-events topic.
// Messages are keyed by order id, so all events of one order land on the same
// partition and keep their relative order.
package kafka

import (
	"context"
	"strings"

	"github.com/segmentio/kafka-go"

	"ordertaking/internal/core/ports"
)

// Publisher implements ports.EventPublisher on top of a kafka-go writer.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher for the given topic. brokersCSV is a
// comma-separated broker list, as found in the configuration.
func NewPublisher(brokersCSV string, topic string) *Publisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish writes one outbox event to the topic. The payload goes out as
// stored; the event name and id travel in headers.
func (p *Publisher) Publish(ctx context.Context, event ports.OutboxEvent) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: event.Payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-name", Value: []byte(event.Name)},
			{Key: "event-id", Value: []byte(event.ID.String())},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
