package decoder

import (
	"github.com/zsoformat/zso/internal/options"
	"github.com/zsoformat/zso/progress"
)

// Option configures a Config via the functional-options pattern.
type Option = options.Option[*Config]

// Config holds the decoder's tunable parameters. Unlike the encoder, the
// decoder has no format-affecting knobs (§4.3); Progress is the only one.
type Config struct {
	Progress progress.DecodeFunc
}

func defaultConfig() *Config {
	return &Config{}
}

// WithProgress installs the callback invoked after each verified block.
func WithProgress(fn progress.DecodeFunc) Option {
	return options.NoError(func(c *Config) { c.Progress = fn })
}
