package core

// DefaultChunkSize is the number of samples processed per unit of work by
// chunked drivers.
const DefaultChunkSize = 100

// ProcessorConfig defines common processing settings shared by drivers.
type ProcessorConfig struct {
	// BlockSize is the number of samples per chunk.
	BlockSize int
	// Workers bounds the number of independent signals rendered concurrently.
	Workers int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used for chunked processing.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		BlockSize: DefaultChunkSize,
		Workers:   4,
	}
}

// WithBlockSize sets the chunk size in samples.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithWorkers sets the maximum number of concurrent render workers.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
