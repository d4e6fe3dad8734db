// Package circuitbreaker guards outbound HTTP calls with a gobreaker circuit.
package circuitbreaker

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

type Config struct {
	Name string
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval clears the failure counts while closed. Zero never clears.
	Interval time.Duration
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	// ConsecutiveFailures trips the circuit.
	ConsecutiveFailures uint32
	OnStateChange       func(name, from, to string)
}

func DefaultConfig(name string) Config {
	return Config{
		Name:                name,
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             15 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// IsOpen reports whether err was produced by a tripped circuit.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Transport is an http.RoundTripper that counts transport errors and 5xx
// responses as failures. A 5xx response is still handed back to the caller.
type Transport struct {
	next http.RoundTripper
	cb   *gobreaker.CircuitBreaker[*http.Response]
}

func NewTransport(next http.RoundTripper, cfg Config) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	st := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
	}
	if cfg.OnStateChange != nil {
		st.OnStateChange = func(name string, from, to gobreaker.State) {
			cfg.OnStateChange(name, from.String(), to.String())
		}
	}
	return &Transport{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[*http.Response](st),
	}
}

type upstreamFailure struct {
	status int
}

func (e *upstreamFailure) Error() string {
	return fmt.Sprintf("upstream returned %d", e.status)
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	_, err := t.cb.Execute(func() (*http.Response, error) {
		r, err := t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		resp = r
		if r.StatusCode >= http.StatusInternalServerError {
			return r, &upstreamFailure{status: r.StatusCode}
		}
		return r, nil
	})

	var uf *upstreamFailure
	if errors.As(err, &uf) {
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// State returns the current circuit state name.
func (t *Transport) State() string {
	return t.cb.State().String()
}
