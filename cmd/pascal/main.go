package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/pascal/internal/pascal/gateway"
	"github.com/msto63/pascal/internal/pascal/server"
	"github.com/msto63/pascal/pkg/core/config"
	"github.com/msto63/pascal/pkg/core/logging"
	"github.com/msto63/pascal/pkg/core/version"
)

func main() {
	appCfg, err := config.LoadFromEnv()
	if err != nil {
		logging.New("pascal").Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Configure(appCfg.General.LogLevel, appCfg.General.LogFormat)

	logger := logging.New("pascal")
	logger.Info("Starting Pascal calculation service",
		"version", version.Pascal,
		"commit", version.GitCommit,
		"environment", appCfg.General.Environment,
	)

	srvCfg := server.DefaultConfig()
	srvCfg.Host = appCfg.Pascal.Host
	srvCfg.Port = appCfg.Pascal.Port
	srvCfg.EnableReflection = appCfg.Pascal.EnableReflection

	srv, err := server.New(srvCfg)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	if err := srv.StartAsync(); err != nil {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
	logger.Info("Pascal server started", "address", srv.Address())

	var gw *gateway.Server
	if appCfg.GatewayEnabled() {
		gw = gateway.New(gateway.Config{
			Host:         appCfg.Gateway.Host,
			HTTPPort:     appCfg.Gateway.Port,
			ReadTimeout:  appCfg.Gateway.ReadTimeout.Duration,
			WriteTimeout: appCfg.Gateway.WriteTimeout.Duration,
		}, srv.Service(), srv.HealthRegistry())

		if err := gw.StartAsync(); err != nil {
			logger.Error("Failed to start gateway", "error", err)
			os.Exit(1)
		}
		logger.Info("Pascal gateway started", "address", appCfg.GetServiceAddress("gateway"))
	}

	report := srv.HealthRegistry().CheckWithTimeout(5 * time.Second)
	if report.Healthy() {
		logger.Info("Startup health check passed", "report", report.String())
	} else {
		logger.Warn("Startup health check failed", "report", report.String(), "checks", report.Checks)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("Shutdown signal received, stopping server...", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if gw != nil {
		if err := gw.Stop(ctx); err != nil {
			logger.Error("Error during gateway shutdown", "error", err)
		}
	}
	srv.Stop(ctx)

	stats := srv.Service().Stats()
	logger.Info("Pascal server stopped",
		"evaluations", stats.Total,
		"failed", stats.Failed(),
	)
}
