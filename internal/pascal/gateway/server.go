package gateway

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	coreGrpc "github.com/msto63/pascal/pkg/core/grpc"
	"github.com/msto63/pascal/pkg/core/health"
	"github.com/msto63/pascal/pkg/core/logging"
)

const (
	// requestIDHeader carries the request ID in and out of the gateway
	requestIDHeader = "X-Request-ID"
	// healthCheckName is the gateway's entry in the health registry
	healthCheckName = "gateway"
)

// Server is the Pascal HTTP gateway
type Server struct {
	httpServer *http.Server
	registry   *health.Registry
	logger     *logging.Logger
	config     Config
}

// Config holds gateway configuration
type Config struct {
	Host         string
	HTTPPort     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns default gateway configuration
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		HTTPPort:     8160,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// New creates a gateway serving evaluator. registry may be nil; otherwise
// the gateway adds its own check to it until Stop.
func New(cfg Config, evaluator Evaluator, registry *health.Registry) *Server {
	logger := logging.New("pascal-gateway-server")

	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.HTTPPort),
			Handler:      loggingMiddleware(logger, NewHandler(evaluator, registry)),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		registry: registry,
		logger:   logger,
		config:   cfg,
	}

	if registry != nil {
		registry.RegisterFunc(healthCheckName, func(ctx context.Context) health.CheckResult {
			return health.CheckResult{
				Name:    healthCheckName,
				Status:  health.StatusHealthy,
				Message: "Pascal gateway is operational",
				Details: map[string]interface{}{"address": s.httpServer.Addr},
			}
		})
	}
	return s
}

// loggingMiddleware assigns a request ID and logs each request
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)
		r = r.WithContext(coreGrpc.WithRequestID(r.Context(), requestID))

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// responseWrapper captures the status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack lets the WebSocket upgrader take over the connection
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	w.statusCode = http.StatusSwitchingProtocols
	return hijacker.Hijack()
}

// StartAsync starts the gateway in a goroutine
func (s *Server) StartAsync() error {
	s.logger.Info("Starting Pascal gateway (async)", "host", s.config.Host, "port", s.config.HTTPPort)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts the gateway down
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping Pascal gateway")
	if s.registry != nil {
		s.registry.Unregister(healthCheckName)
	}
	return s.httpServer.Shutdown(ctx)
}
