// Package server provides the metrictimed daemon lifecycle.
// cmd/metrictimed delegates to server.Run for signal handling, config
// loading, observability init, the emitting clock, health checks, and
// graceful shutdown.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/reuschj/metric-time/internal/config"
	"github.com/reuschj/metric-time/internal/observability"
	"github.com/reuschj/metric-time/pkg/clock"
	"github.com/reuschj/metric-time/pkg/metrictime"
	"github.com/reuschj/metric-time/pkg/metrictime/ntpsource"
)

// GracefulShutdownTimeout is the full drain budget, matching the
// termination grace period requested from the platform.
const GracefulShutdownTimeout = 30 * time.Second

const (
	serviceVersion = "0.1.0"

	shutdownDrainDelay  = 1 * time.Second  // Let load balancers drop the endpoint first
	shutdownHTTPTimeout = 10 * time.Second // Max time to drain in-flight HTTP requests
	shutdownOTELTimeout = 5 * time.Second  // Max time to flush telemetry
	clockStopTimeout    = 5 * time.Second  // Max time to wait for the tick producer to exit
)

var tracer = observability.Tracer("server")

var ticksTotal metric.Int64Counter

func init() {
	m := observability.Meter("server")
	ticksTotal, _ = m.Int64Counter("clock_ticks_total",
		metric.WithDescription("Total clock ticks emitted"))
}

// Params configures the lifecycle runner.
type Params struct {
	// Name identifies the service in logs, telemetry, and health output.
	Name string
}

// healthStatus is the /healthz response body.
type healthStatus struct {
	Status   string     `json:"status"`
	Service  string     `json:"service"`
	Kind     string     `json:"kind"`
	Ticks    uint64     `json:"ticks"`
	LastTime string     `json:"last_time,omitempty"`
	NTP      *ntpStatus `json:"ntp,omitempty"`
}

// ntpStatus reports network time sync health when an NTP server is
// configured.
type ntpStatus struct {
	Healthy  bool   `json:"healthy"`
	OffsetMS int64  `json:"offset_ms"`
	LastSync string `json:"last_sync,omitempty"`
}

// Run executes the full daemon lifecycle: signal handling, config loading,
// observability initialization, the emitting clock, an HTTP server with
// health checks, and graceful shutdown. If ln is non-nil, it is used
// instead of creating a new listener from config (enables port-0 testing).
func Run(ctx context.Context, p Params, ln net.Listener) error {
	// Signal-based cancellation: ctx.Done() closes on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logging
	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: p.Name,
		Environment: cfg.Environment,
	})

	// --- Startup order: tracer -> metrics -> clock -> HTTP server ---

	// Initialize OpenTelemetry tracer
	tracerProvider, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    p.Name,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("initialize tracer: %w", err)
	}

	// Initialize OpenTelemetry metrics
	metricsProvider, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		ServiceName:    p.Name,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTEL.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}

	// Time source: network time when configured, system clock otherwise.
	var ntpSrc *ntpsource.Source
	var src metrictime.Source
	if cfg.NTP.Server != "" {
		ntpSrc = ntpsource.New(ntpsource.Config{
			Server:       cfg.NTP.Server,
			SyncInterval: cfg.NTP.Resync,
			Logger:       logger,
		})
		src = ntpSrc
	}

	kind, err := cfg.Clock.TimeKind()
	if err != nil {
		return fmt.Errorf("clock kind: %w", err)
	}

	// Start the emitting clock. Every tick opens a root span, bumps the
	// tick counter, and logs at debug level.
	ticker := clock.New().Setup(clock.Settings{
		MaxEvents: cfg.Clock.Limit,
		Interval:  cfg.Clock.Interval,
		Kind:      kind,
		Source:    src,
		Logger:    logger,
	})
	sub, err := ticker.Start(func(t metrictime.Time, tc clock.Context) {
		tickCtx, span := tracer.Start(context.Background(), "clock.tick")
		defer span.End()
		ticksTotal.Add(tickCtx, 1, metric.WithAttributes(
			attribute.String("kind", t.Kind().String()),
		))
		observability.WithTraceID(tickCtx, logger).Debug("tick",
			slog.Uint64("index", tc.Index),
			slog.String("time", t.String()),
		)
	})
	if err != nil {
		return fmt.Errorf("start clock: %w", err)
	}

	// Health check shutdown coordination via atomic flag.
	var shuttingDown atomic.Bool

	// Setup HTTP server with health check
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		status := healthStatus{
			Status:  "healthy",
			Service: p.Name,
			Kind:    kind.String(),
			Ticks:   ticker.Count(),
		}
		if last, ok := ticker.Time(); ok {
			status.LastTime = last.String()
		}
		if ntpSrc != nil {
			healthy, offset, lastSync, _ := ntpSrc.Health()
			status.NTP = &ntpStatus{
				Healthy:  healthy,
				OffsetMS: offset.Milliseconds(),
			}
			if !lastSync.IsZero() {
				status.NTP.LastSync = lastSync.Format(time.RFC3339)
			}
		}

		if shuttingDown.Load() {
			status.Status = "shutting_down"
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		if encodeErr := json.NewEncoder(w).Encode(status); encodeErr != nil {
			logger.Error("write health response", slog.String("error", encodeErr.Error()))
		}
	})

	// Bind listener (use injected listener or create from config).
	if ln == nil {
		ln, err = (&net.ListenConfig{}).Listen(ctx, "tcp", fmt.Sprintf(":%d", cfg.Server.Port))
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	}

	server := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Structured concurrency via errgroup ---
	g, ctx := errgroup.WithContext(ctx)

	// Goroutine 1: Serve HTTP
	g.Go(func() error {
		logger.Info("starting HTTP server",
			slog.String("addr", ln.Addr().String()),
			slog.String("kind", kind.String()),
			slog.String("environment", cfg.Environment),
		)
		if serveErr := server.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})

	// Goroutine 2: Shutdown trigger — waits for context cancellation, then drains.
	// Shutdown order is explicit reverse of startup: HTTP server -> clock -> metrics -> tracer.
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("received shutdown signal, starting graceful shutdown")

		// 1. Mark shutting down — health checks return 503
		shuttingDown.Store(true)

		// 2. Drain delay — let load balancer propagate endpoint removal
		time.Sleep(shutdownDrainDelay)

		// 3. Drain HTTP server (reverse of startup: HTTP started last, stops first)
		httpCtx, httpCancel := context.WithTimeout(context.Background(), shutdownHTTPTimeout)
		defer httpCancel()
		if shutdownErr := server.Shutdown(httpCtx); shutdownErr != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", shutdownErr.Error()))
		}

		// 4. Stop the clock and wait out the producer's final sleep
		last, stopErr := ticker.Stop()
		switch {
		case stopErr == nil:
			logger.Info("clock stopped",
				slog.String("time", last.String()),
				slog.Uint64("ticks", ticker.Count()),
			)
		case errors.Is(stopErr, clock.ErrStopped):
			// Producer already exited at the tick cap.
			logger.Info("clock already stopped", slog.Uint64("ticks", ticker.Count()))
		default:
			logger.Error("clock stop error", slog.String("error", stopErr.Error()))
		}
		select {
		case <-sub.Done():
		case <-time.After(clockStopTimeout):
			logger.Warn("tick producer did not exit within budget")
		}

		// 5. Flush OTEL (reverse: metrics first, then tracer)
		otelCtx, otelCancel := context.WithTimeout(context.Background(), shutdownOTELTimeout)
		defer otelCancel()
		if shutdownErr := metricsProvider.Shutdown(otelCtx); shutdownErr != nil {
			logger.Error("failed to shutdown metrics", slog.String("error", shutdownErr.Error()))
		}
		if shutdownErr := tracerProvider.Shutdown(otelCtx); shutdownErr != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", shutdownErr.Error()))
		}

		logger.Info("shutdown complete")
		return nil
	})

	return g.Wait()
}
