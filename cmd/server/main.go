package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartprint/go-invoice/internal/catalog"
	"github.com/smartprint/go-invoice/internal/config"
	"github.com/smartprint/go-invoice/internal/currency"
	"github.com/smartprint/go-invoice/internal/logger"
	"github.com/smartprint/go-invoice/internal/models"
	"github.com/smartprint/go-invoice/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logging is not configured yet
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if err := logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		fmt.Fprintln(os.Stderr, "logger error:", err)
		os.Exit(1)
	}
	log := logger.WithComponent("server")

	services, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("failed to load catalog")
	}

	// One canonical invoice for the process lifetime; there is no
	// persistence layer, a restart starts a fresh document.
	store := state.New(models.NewInvoice())
	format := currency.New(currency.DigitStyle(cfg.DigitStyle))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      withLogging(log, NewApp(store, services, format)),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("digit_style", cfg.DigitStyle).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped gracefully")
}

// withLogging adds request logging middleware.
func withLogging(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
