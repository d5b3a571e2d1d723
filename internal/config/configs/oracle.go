package configs

import "time"

// Oracle providers.
const (
	OracleRandom = "random"
	OracleOpenAI = "openai"
)

// Oracle configures the response oracle that decides simulated reactions.
type Oracle struct {
	// Provider is "random" (seeded local draw) or "openai".
	Provider string `env:"PROVIDER" envDefault:"random"`
	APIKey   string `env:"API_KEY"`
	Model    string `env:"MODEL" envDefault:"gpt-4o-mini"`
	// BaseURL overrides the API endpoint, e.g. for a compatible proxy.
	BaseURL string `env:"BASE_URL"`
	// Timeout bounds a single sub-batch call. A timed out sub-batch is
	// recorded as ignore.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
	// Seed makes the random provider reproducible. Zero seeds from time.
	Seed uint64 `env:"SEED" envDefault:"0"`
}
