package configs

// Auth configures verification of bearer tokens on the
// campaign-management endpoints. Tokens are issued by the external
// auth provider; only the HMAC secret is needed here.
type Auth struct {
	// Secret is the HS256 signing secret. The default exists for local
	// development only.
	Secret string `env:"SECRET" envDefault:"insecure-dev-secret"`
}
