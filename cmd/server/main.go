package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"thatsawrap/internal/api"
	"thatsawrap/internal/config"
	"thatsawrap/internal/custom"
	"thatsawrap/internal/models"
	"thatsawrap/internal/monitoring"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "", "Path to configuration file")
)

func main() {
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	if err := models.SetTaxRate(cfg.Pricing.TaxRate); err != nil {
		log.Fatalf("Invalid tax rate: %v", err)
	}
	if err := models.SetDiscount(cfg.Pricing.ComboDiscount); err != nil {
		log.Fatalf("Invalid combo discount: %v", err)
	}

	customList, err := custom.NewList(cfg.CustomItemsFile)
	if err != nil {
		log.Fatalf("Failed to load custom items: %v", err)
	}

	metrics := monitoring.NewCollector()
	metrics.SetCustomItemCount(customList.Len())

	server := api.NewServer(log, metrics, customList)

	// Start metrics server
	go startMetricsServer(log, metrics, cfg.Server.MetricsPort)

	// Start API server
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("API server shutdown error: %v", err)
		}
	}()

	log.Infof("Starting API server on port %d", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func startMetricsServer(log *logrus.Logger, metrics *monitoring.Collector, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	log.Infof("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Errorf("Metrics server error: %v", err)
	}
}
