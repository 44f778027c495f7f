// Package main provides the HTTP server for the loan approval simulator.
// It serves the web form, the JSON API and Prometheus metrics.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"loan-approval-simulator/internal/config"
	"loan-approval-simulator/internal/handlers"
	"loan-approval-simulator/internal/metrics"
	"loan-approval-simulator/internal/services/simulator"
	"loan-approval-simulator/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.Logger

	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)
	svc := simulator.NewService(logger, recorder)
	server := handlers.NewServer(svc, cfg, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", handlers.RequestIDHeader},
		ExposedHeaders: []string{handlers.RequestIDHeader},
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           c.Handler(server.Routes(promhttp.Handler())),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", httpServer.Addr),
			zap.String("stage", cfg.Stage),
			zap.String("form", "http://localhost:"+cfg.Port+"/"),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server")
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
