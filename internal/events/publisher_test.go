package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fjod/storefront/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writerMock struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *writerMock) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *writerMock) Close() error {
	w.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &writerMock{}
	m := metrics.NewRegistry()
	p := newKafkaPublisher(w, discardLogger(), m)

	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), Event{Type: TypeOrderPlaced, OrderID: "17", Total: 99.5, OccurredAt: at})
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "17", string(msg.Key))
	assert.Equal(t, TypeOrderPlaced, string(msg.Headers[0].Value))

	var got Event
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "17", got.OrderID)
	assert.Equal(t, 99.5, got.Total)
	assert.True(t, at.Equal(got.OccurredAt))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(TypeOrderPlaced, "ok")))
}

func TestKafkaPublisher_StampsTime(t *testing.T) {
	w := &writerMock{}
	p := newKafkaPublisher(w, discardLogger(), nil)

	require.NoError(t, p.Publish(context.Background(), Event{Type: TypeB2BOrderCreated, OrderID: "b1"}))

	var got Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.False(t, got.OccurredAt.IsZero())
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &writerMock{err: errors.New("broker down")}
	m := metrics.NewRegistry()
	p := newKafkaPublisher(w, discardLogger(), m)

	err := p.Publish(context.Background(), Event{Type: TypeOrderPlaced, OrderID: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(TypeOrderPlaced, "error")))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}
