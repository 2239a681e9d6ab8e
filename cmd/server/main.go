package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/GriffinCanCode/numerics/internal/config"
	"github.com/GriffinCanCode/numerics/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Printf("numerics server: %v", err)
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is cancelled or the listener fails
func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "Server port")
	fs.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "Bind address")
	fs.IntVar(&cfg.Numerics.SeriesMax, "series-max", cfg.Numerics.SeriesMax, "Maximum series terms before reporting non-convergence")
	fs.BoolVar(&cfg.RateLimit.Global, "rate-global", cfg.RateLimit.Global, "Share one rate limit bucket across all clients")
	dev := fs.Bool("dev", cfg.Logging.Development, "Development logging at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	served := make(chan error, 1)
	go func() { served <- srv.Run() }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
		return srv.Close()
	}
}
