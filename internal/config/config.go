package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"

	"campaign-sim/internal/config/configs"
)

// Config aggregates every configuration section of the simulation service.
// Each section is parsed from environment variables under its envPrefix;
// see the configs package for names and defaults.
type Config struct {
	// Env names the deployment environment (prod, dev) and is attached to
	// every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP       `envPrefix:"HTTP_"`
	Log    configs.Logger     `envPrefix:"LOG_"`
	Psql   configs.Postgres   `envPrefix:"PSQL_"`
	Oracle configs.Oracle     `envPrefix:"ORACLE_"`
	Sim    configs.Simulation `envPrefix:"SIM_"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects combinations env tags cannot express.
func (c Config) Validate() error {
	switch c.Oracle.Provider {
	case configs.OracleRandom, configs.OracleOpenAI:
	default:
		return eris.Errorf("ORACLE_PROVIDER must be %q or %q, got %q",
			configs.OracleRandom, configs.OracleOpenAI, c.Oracle.Provider)
	}
	if c.Sim.ChunkSize <= 0 {
		return eris.New("SIM_CHUNK_SIZE must be positive")
	}
	if c.Sim.Concurrency <= 0 {
		return eris.New("SIM_CONCURRENCY must be positive")
	}
	if c.Sim.MaxTrials > 0 && c.Sim.DefaultTrials > c.Sim.MaxTrials {
		return eris.Errorf("SIM_DEFAULT_TRIALS (%d) exceeds SIM_MAX_TRIALS (%d)",
			c.Sim.DefaultTrials, c.Sim.MaxTrials)
	}
	return nil
}
