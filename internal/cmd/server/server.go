// Package server wires configuration and startup for the bestiary service.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/bestiary/internal/platform/config"
	"github.com/louisbranch/bestiary/internal/platform/otel"
	"github.com/louisbranch/bestiary/internal/web"
)

// serviceName identifies the service in telemetry.
const serviceName = "bestiary"

// Config holds the runtime configuration for the bestiary server.
type Config struct {
	HTTPAddr string `env:"BESTIARY_HTTP_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig loads configuration from the environment and applies flag
// overrides on top.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	httpAddr := fs.String("http-addr", cfg.HTTPAddr, "address for the HTTP server")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.HTTPAddr = *httpAddr
	return cfg, nil
}

// Run starts the web server and blocks until the context ends or the server
// fails.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	srv, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr})
	if err != nil {
		return fmt.Errorf("create web server: %w", err)
	}

	return srv.ListenAndServe(ctx)
}
