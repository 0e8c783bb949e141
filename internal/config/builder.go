package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMoveFormat sets the notation for move lists.
func (b *ConfigBuilder) WithMoveFormat(format MoveFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithParquetOutput sets the Parquet destination file.
func (b *ConfigBuilder) WithParquetOutput(path string) *ConfigBuilder {
	b.cfg.Output.ParquetPath = path
	return b
}

// WithBoard enables drawing the final position.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithMoveBounds sets move bounds for filtering.
func (b *ConfigBuilder) WithMoveBounds(lower, upper uint) *ConfigBuilder {
	b.cfg.Filter.CheckMoveBounds = true
	b.cfg.Filter.LowerMoveBound = lower
	b.cfg.Filter.UpperMoveBound = upper
	return b
}

// WithCheckmateFilter keeps only games ending in checkmate.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithStalemateFilter keeps only games ending in stalemate.
func (b *ConfigBuilder) WithStalemateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchStalemate = enabled
	return b
}

// WithWorkers sets the replay worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithEngineDepth sets the analysis depth.
func (b *ConfigBuilder) WithEngineDepth(depth int) *ConfigBuilder {
	b.cfg.Engine.Depth = depth
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
