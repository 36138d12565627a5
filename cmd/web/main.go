package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gf3w/barber-booking/internal/barberapi"
	"github.com/gf3w/barber-booking/internal/config"
	"github.com/gf3w/barber-booking/internal/observability/metrics"
	"github.com/gf3w/barber-booking/internal/web"
	"github.com/gf3w/barber-booking/pkg/logging"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting barber booking web",
		"env", cfg.Env,
		"port", cfg.Port,
		"api_base_url", cfg.APIBaseURL,
	)

	apiMetrics := metrics.NewAPIMetrics(nil)
	api := barberapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger, apiMetrics)

	handler := web.NewHandler(api, cfg.ShopName, logger)
	router := web.New(&web.Config{
		Handler:        handler,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
