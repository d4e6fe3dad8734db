// Package commerce is the client for the external commerce API. Every
// response is a read-only snapshot of the moment it was fetched.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fjod/storefront/internal/metrics"
	"github.com/fjod/storefront/pkg/circuitbreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const maxResponseBytes = 10 << 20 // 10MB

type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker circuitbreaker.Config
	Logger  *slog.Logger
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	breaker *circuitbreaker.Transport
	metrics *metrics.Registry
	log     *slog.Logger
	tracer  trace.Tracer
	sfg     singleflight.Group // coalesces identical in-flight GETs
}

// NewClient builds a client whose transport is traced and guarded by a
// circuit breaker. m may be nil.
func NewClient(cfg Config, m *metrics.Registry) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker = circuitbreaker.DefaultConfig("commerce")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if m != nil && cfg.Breaker.OnStateChange == nil {
		cfg.Breaker.OnStateChange = m.ObserveBreaker
	}

	breaker := circuitbreaker.NewTransport(http.DefaultTransport, cfg.Breaker)
	return &Client{
		baseURL: u,
		http: &http.Client{
			Transport: otelhttp.NewTransport(breaker),
			Timeout:   cfg.Timeout,
		},
		breaker: breaker,
		metrics: m,
		log:     cfg.Logger,
		tracer:  otel.Tracer("github.com/fjod/storefront/internal/commerce"),
	}, nil
}

func (c *Client) BreakerState() string {
	return c.breaker.State()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// getJSON fetches path and decodes it into out. Concurrent calls for the same
// URL share one upstream request; each caller decodes its own copy. The shared
// request is detached from any single caller's cancellation and bounded by the
// client timeout, while each caller still returns as soon as its own ctx ends.
func (c *Client) getJSON(ctx context.Context, name, path string, query url.Values, out any) error {
	target := c.endpoint(path, query)
	ch := c.sfg.DoChan(target, func() (interface{}, error) {
		return c.roundTrip(context.WithoutCancel(ctx), name, http.MethodGet, target, nil)
	})
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", name, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decode(res.Val.([]byte), out)
	}
}

func (c *Client) sendJSON(ctx context.Context, name, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", name, err)
		}
	}
	data, err := c.roundTrip(ctx, name, method, c.endpoint(path, nil), payload)
	if err != nil {
		return err
	}
	return decode(data, out)
}

func (c *Client) roundTrip(ctx context.Context, name, method, target string, payload []byte) (data []byte, err error) {
	ctx, span := c.tracer.Start(ctx, "commerce."+name, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("commerce.endpoint", name),
	))
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if c.metrics != nil {
			c.metrics.UpstreamRequests.WithLabelValues(name, outcome).Inc()
			c.metrics.UpstreamLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
		}
	}()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = "API error"
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return data, nil
}

func decode(data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

var jsonNull = []byte("null")

// decodeRecords decodes each list element on its own. Elements that do not
// fit T are logged, counted and dropped so one bad record cannot fail the
// whole list.
func decodeRecords[T any](ctx context.Context, c *Client, name string, raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		err := json.Unmarshal(r, &v)
		if err == nil && bytes.Equal(bytes.TrimSpace(r), jsonNull) {
			err = errors.New("null record")
		}
		if err != nil {
			c.log.WarnContext(ctx, "skipping malformed record", "endpoint", name, "index", i, "error", err)
			if c.metrics != nil {
				c.metrics.SkippedRecords.WithLabelValues(name).Inc()
			}
			continue
		}
		out = append(out, v)
	}
	return out
}
