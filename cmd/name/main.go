package main

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/bowerhall/name/internal/config"
	"github.com/bowerhall/name/internal/identity"
	"github.com/bowerhall/name/internal/logger"
	"github.com/bowerhall/name/internal/server"
	"github.com/bowerhall/name/internal/shutdown"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

// shutdownHook stops srv from accepting connections. It responds to
// "docker stop" without waiting out the kill grace period.
func shutdownHook(srv *server.Server, timeout time.Duration) shutdown.Hook {
	return func(sig os.Signal) {
		logger.Info("received signal, shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("shutdown incomplete", "error", err)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	id := identity.Resolve(cfg.Name, identity.Hostname(), identity.NewGenerator())

	srv := server.New(server.Config{Port: cfg.Port}, id)
	if err := srv.Listen(); err != nil {
		logger.Fatal("failed to start listener", "port", cfg.Port, "error", err)
	}

	stop := shutdown.Register(shutdownHook(srv, cfg.ShutdownTimeout), syscall.SIGINT, syscall.SIGTERM)

	if details := identity.HostDetails(context.Background()); details != nil {
		logger.Info("host", details...)
	}
	logger.Info("listening", "addr", srv.Addr().String(), "name", id.Name, "host", id.Host)

	if err := srv.Serve(); err != nil {
		stop()
		logger.Fatal("server failed", "error", err)
	}
	stop()

	logger.Info("stopped")
}
