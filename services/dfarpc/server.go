package dfarpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"
)

// Server wires the automaton engine behind the JSON-RPC HTTP endpoint,
// together with health, metrics and tracing plumbing. The engine
// itself is stateless across calls, so the server needs no locking and
// serves concurrent requests on independent inputs without ordering
// constraints.
type Server struct {
	cfg     Config
	engine  *gin.Engine
	metrics *Metrics
	tp      *sdktrace.TracerProvider
}

// New assembles the router and its middleware chain. It does not bind
// the listen address; Run does.
func New(cfg Config) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{cfg: cfg, metrics: NewMetrics()}

	if cfg.Tracing {
		tp, err := newTracerProvider()
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		otel.SetTracerProvider(tp)
		s.tp = tp
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(), otelgin.Middleware("dfad"))
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	engine.POST("/rpc", handleRPC(s.metrics))
	s.engine = engine

	return s, nil
}

func newTracerProvider() (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter)), nil
}

// Run serves until ctx is cancelled, then drains in-flight requests
// within the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.ListenAddr, Handler: s.engine}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting dfad server", "addr", s.cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		grace := time.Duration(s.cfg.ShutdownGraceSeconds) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		slog.Info("Shutting down dfad server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if s.tp != nil {
			if err := s.tp.Shutdown(shutdownCtx); err != nil {
				slog.Error("failed to shutdown trace exporter", "error", err)
			}
		}
		return nil
	})
	return g.Wait()
}
