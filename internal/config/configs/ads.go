package configs

import "time"

// Ads tunes the sponsored-listings engine.
type Ads struct {
	// MaxPlacements is the number of sponsored slots per search query.
	MaxPlacements int `env:"MAX_PLACEMENTS" envDefault:"3"`
	// CandidateLimit bounds the campaign candidate set per allocation.
	CandidateLimit int `env:"CANDIDATE_LIMIT" envDefault:"50"`
	// ClickLimit is the number of accepted clicks per (campaign, ip)
	// pair within ClickWindow.
	ClickLimit int `env:"CLICK_LIMIT" envDefault:"3"`
	// ClickWindow is the rate-limiter window length.
	ClickWindow time.Duration `env:"CLICK_WINDOW" envDefault:"30s"`
	// Currency is the ledger currency code for click charges.
	Currency string `env:"CURRENCY" envDefault:"TRY"`
}
