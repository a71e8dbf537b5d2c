package server

import (
	"context"
	"time"

	pb "github.com/msto63/pascal/api/pascal/v1"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/internal/pascal/service"
	coreGrpc "github.com/msto63/pascal/pkg/core/grpc"
	"github.com/msto63/pascal/pkg/core/health"
	"github.com/msto63/pascal/pkg/core/logging"
	"github.com/msto63/pascal/pkg/core/version"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server is the Pascal gRPC server
type Server struct {
	service    *service.Service
	grpc       *coreGrpc.Server
	health     *health.Registry
	grpcHealth *grpchealth.Server
	logger     *logging.Logger
	config     Config
	startTime  time.Time
}

// Config holds server configuration
type Config struct {
	Host             string
	Port             int
	EnableReflection bool
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:             "0.0.0.0",
		Port:             9160,
		EnableReflection: true,
	}
}

// New creates a new Pascal server
func New(cfg Config) (*Server, error) {
	logger := logging.New("pascal-server")

	svc, err := service.NewService(service.Config{})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create service").
			WithCode(mdwerror.CodeServiceInitialization).
			WithOperation("server.New")
	}

	grpcCfg := coreGrpc.DefaultServerConfig()
	grpcCfg.Host = cfg.Host
	grpcCfg.Port = cfg.Port
	grpcCfg.EnableReflection = cfg.EnableReflection

	grpcServer := coreGrpc.NewServer(grpcCfg)

	healthRegistry := health.NewRegistry("pascal", version.ServiceVersion("pascal"))
	healthRegistry.Register(health.ProbeCheck("calculator",
		"Pascal calculation service is operational",
		func(ctx context.Context) error {
			resp, err := svc.Evaluate(ctx, &service.EvaluateRequest{First: "1", Second: "1", Operator: "+"})
			if err != nil {
				return err
			}
			if !resp.OK || resp.Display != "2" {
				return mdwerror.Newf("probe 1+1 returned %q", resp.Display).
					WithCode(mdwerror.CodeInternal)
			}
			return nil
		}))

	grpcHealth := grpchealth.NewServer()
	grpcHealth.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	grpcHealth.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	server := &Server{
		service:    svc,
		grpc:       grpcServer,
		health:     healthRegistry,
		grpcHealth: grpcHealth,
		logger:     logger,
		config:     cfg,
		startTime:  time.Now(),
	}

	pb.RegisterCalculatorServer(grpcServer.GRPCServer(), server)
	healthpb.RegisterHealthServer(grpcServer.GRPCServer(), grpcHealth)

	return server, nil
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("Starting Pascal server (async)", "host", s.config.Host, "port", s.config.Port)
	return s.grpc.StartAsync()
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping Pascal server", "uptime", time.Since(s.startTime).Round(time.Second))
	s.grpcHealth.Shutdown()
	s.grpc.StopWithTimeout(ctx)
}

// Address returns the address the gRPC listener is bound to
func (s *Server) Address() string {
	return s.grpc.Address()
}

// Service returns the calculation service
func (s *Server) Service() *service.Service {
	return s.service
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}
