// Package events announces storefront orders to downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fjod/storefront/internal/metrics"
	"github.com/segmentio/kafka-go"
)

const (
	Topic = "storefront-events"

	TypeOrderPlaced     = "order.placed"
	TypeB2BOrderCreated = "b2b.order.created"
)

type Event struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	SessionID  string    `json:"session_id,omitempty"`
	Total      float64   `json:"total,omitempty"`
	ItemCount  int       `json:"item_count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer  messageWriter
	metrics *metrics.Registry
	log     *slog.Logger
}

func NewKafkaPublisher(log *slog.Logger, m *metrics.Registry, brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
	return newKafkaPublisher(w, log, m)
}

func newKafkaPublisher(w messageWriter, log *slog.Logger, m *metrics.Registry) *KafkaPublisher {
	return &KafkaPublisher{writer: w, metrics: m, log: log}
}

// Publish writes e keyed by order id so events for one order stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	})
	outcome := "ok"
	if err != nil {
		outcome = "error"
		err = fmt.Errorf("kafka write failed: %w", err)
	}
	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(e.Type, outcome).Inc()
	}
	return err
}

func (p *KafkaPublisher) Close() error {
	err := p.writer.Close()
	if err != nil {
		p.log.Error("error closing kafka writer", "error", err)
	}
	return err
}

// Noop drops every event. Used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
