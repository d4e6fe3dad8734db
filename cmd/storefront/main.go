package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fjod/storefront/internal/commerce"
	"github.com/fjod/storefront/internal/events"
	h "github.com/fjod/storefront/internal/http"
	"github.com/fjod/storefront/internal/metrics"
	"github.com/fjod/storefront/internal/service"
	"github.com/fjod/storefront/internal/session"
	"github.com/fjod/storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type Config struct {
	HTTPPort           string
	CommerceAPIURL     string
	RedisAddr          string
	RedisPassword      string
	KafkaBrokers       []string
	LogLevel           string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
	SessionTTL         time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		CommerceAPIURL:     getEnv("COMMERCE_API_URL", "http://localhost:8000"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:       splitList(getEnv("KAFKA_BROKERS", "")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RequestTimeout:     getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:    getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxRequestBodySize: getInt64("MAX_REQUEST_BODY_SIZE", 1<<20), // 1MB
		SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

func getInt64(key string, defaultValue int64) int64 {
	n, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	cfg := loadConfig()
	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	ctx := context.Background()
	m := metrics.NewRegistry()

	client, err := commerce.NewClient(commerce.Config{
		BaseURL: cfg.CommerceAPIURL,
		Timeout: cfg.RequestTimeout,
		Logger:  log,
	}, m)
	if err != nil {
		log.Error("invalid commerce api config", "error", err)
		os.Exit(1)
	}

	var store session.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("redis connection failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		log.Info("redis ping succeeded", "addr", cfg.RedisAddr)
		store = session.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		log.Warn("REDIS_ADDR not set, sessions are kept in memory")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store)

	var pub events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		pub = events.NewKafkaPublisher(log, m, cfg.KafkaBrokers...)
		log.Info("publishing events to kafka", "brokers", cfg.KafkaBrokers, "topic", events.Topic)
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Error("close event publisher", "error", err)
		}
	}()

	storefront := service.NewStorefrontService(client, sessions, pub, m, log)
	seller := service.NewSellerService(client, sessions, pub, m, log)

	router := h.NewRouter(h.RouterConfig{
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		SessionTTL:         cfg.SessionTTL,
		Metrics:            m.Handler(),
		UpstreamState:      client.BreakerState,
	}, h.Services{
		Catalog:  storefront,
		Cart:     storefront,
		Orders:   storefront,
		Sessions: storefront,
		Seller:   seller,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("storefront starting", "port", cfg.HTTPPort, "commerce_api", cfg.CommerceAPIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
