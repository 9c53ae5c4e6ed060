package config

import "time"

const (
	DefaultPort            = 3000
	DefaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	// Port is the TCP port the responder listens on.
	Port int
	// Name overrides the generated display name when non-empty.
	Name string
	// ShutdownTimeout bounds how long Shutdown waits for open connections.
	ShutdownTimeout time.Duration
}
