// Package main provides the entry point for the recipe generation API server
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/alchemorsel/recipegen/internal/infrastructure/config"
	"github.com/alchemorsel/recipegen/internal/infrastructure/container"
)

func main() {
	configPath := flag.String("config", os.Getenv("ALCHEMORSEL_CONFIG"), "path to a YAML config file")
	shutdownTimeout := flag.Duration("shutdown-timeout", 0, "graceful shutdown deadline (overrides server.shutdown_timeout)")
	flag.Parse()

	var cfg *config.Config
	app := fx.New(
		fx.Supply(container.ConfigPath(*configPath)),
		container.Module,
		fx.Populate(&cfg),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	<-ctx.Done()

	fmt.Println("\nShutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownDeadline(*shutdownTimeout))
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		log.Fatalf("Failed to stop application gracefully: %v", err)
	}
}
