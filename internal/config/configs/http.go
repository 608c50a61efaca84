package configs

// HTTP holds settings for the HTTP server.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeoutSec bounds how long the server waits for request
	// headers before dropping the connection.
	ReadHeaderTimeoutSec int `env:"READ_HEADER_TIMEOUT_SEC" envDefault:"10"`
}
