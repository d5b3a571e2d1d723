package configs

import "time"

// HTTP defines configuration for the simulation API server. Simulations
// block for the whole run, so WriteTimeout must exceed the longest run a
// client is expected to wait for.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout bounds reading request headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// WriteTimeout bounds a whole request, simulation included.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10m"`
	// ShutdownTimeout is how long in-flight requests get on shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}
