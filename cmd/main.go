package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vendora/vendora-backend/internal/app"
	"github.com/vendora/vendora-backend/internal/observability"
	"github.com/vendora/vendora-backend/internal/platform/envutil"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

func main() {
	log, err := logger.New(envutil.Str("LOG_MODE", "dev"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	shutdownTracing := observability.InitTracing(ctx, log, observability.Config{
		ServiceName: "vendora-backend",
		Environment: envutil.Str("ENVIRONMENT", "development"),
	})

	application, err := app.New(log)
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- application.Run() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server exited", "error", err)
		}
	case sig := <-sigCh:
		log.Info("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown incomplete", "error", err)
	}
	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error("tracing shutdown failed", "error", err)
		}
	}
	log.Info("server stopped")
}
