package configs

// Redis holds configuration for the shared click-rate-limiter store.
// When Addr is empty the service falls back to a per-process in-memory
// limiter, which is only suitable for single-instance deployments.
type Redis struct {
	// Addr is the host:port of the Redis instance. Empty disables Redis.
	Addr string `env:"ADDR" envDefault:""`
	// Password authenticates the connection when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical Redis database.
	DB int `env:"DB" envDefault:"0"`
}

// Enabled reports whether a Redis instance is configured.
func (c Redis) Enabled() bool { return c.Addr != "" }
