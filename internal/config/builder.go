package config

import (
	"io"
	"time"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
)

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

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithSeed sets the random seed for computer moves.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// PlaySelf makes the human play both sides.
func (b *ConfigBuilder) PlaySelf(enabled bool) *ConfigBuilder {
	b.cfg.Game.PlayAgainstComputer = !enabled
	return b
}

// WithComputerSide sets the colour the computer plays.
func (b *ConfigBuilder) WithComputerSide(colour chess.Colour) *ConfigBuilder {
	b.cfg.Game.ComputerSide = colour
	return b
}

// WithStress sets the size and limits of a self-play run.
func (b *ConfigBuilder) WithStress(games, workers, iterLimit int, timeout time.Duration) *ConfigBuilder {
	b.cfg.Stress.Games = games
	b.cfg.Stress.Workers = workers
	b.cfg.Stress.IterLimit = iterLimit
	b.cfg.Stress.Timeout = timeout
	return b
}

// WithServerAddr sets the server listen address.
func (b *ConfigBuilder) WithServerAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}
