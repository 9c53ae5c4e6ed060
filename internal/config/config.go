package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

func Load() (*Config, error) {
	port, err := loadPort()
	if err != nil {
		return nil, err
	}

	timeout, err := loadShutdownTimeout()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		Name:            os.Getenv("name"),
		ShutdownTimeout: timeout,
	}, nil
}

func loadPort() (int, error) {
	raw := os.Getenv("PORT")
	if raw == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %d: out of range", port)
	}

	return port, nil
}

func loadShutdownTimeout() (time.Duration, error) {
	raw := os.Getenv("SHUTDOWN_TIMEOUT")
	if raw == "" {
		return DefaultShutdownTimeout, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", raw, err)
	}
	if timeout <= 0 {
		return 0, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", raw)
	}

	return timeout, nil
}
