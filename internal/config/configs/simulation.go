package configs

import "time"

// Simulation controls how trials are dispatched to the response oracle.
type Simulation struct {
	// ChunkSize is the number of trials per oracle sub-batch.
	ChunkSize int `env:"CHUNK_SIZE" envDefault:"10"`
	// Concurrency bounds in-flight sub-batches.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
	// BatchPause is the minimum gap between sub-batch dispatches. Zero
	// disables pacing.
	BatchPause time.Duration `env:"BATCH_PAUSE" envDefault:"500ms"`
	// DefaultTrials is used when a request does not specify a trial count.
	DefaultTrials int `env:"DEFAULT_TRIALS" envDefault:"50"`
	// MaxTrials rejects requests asking for more trials per segment.
	MaxTrials int `env:"MAX_TRIALS" envDefault:"1000"`
}
