package encoder

import (
	"github.com/zsoformat/zso/errs"
	"github.com/zsoformat/zso/internal/options"
	"github.com/zsoformat/zso/progress"
)

// Option configures a Config via the functional-options pattern.
type Option = options.Option[*Config]

// Config holds the encoder's tunable parameters (§4.2). Zero value is never
// valid for direct use; build one with defaultConfig and Options.
type Config struct {
	Level       int
	BlockSize   int
	Parallel    bool
	Threshold   int
	Align       uint8
	alignSet    bool
	PaddingByte byte
	Progress    progress.EncodeFunc
}

// defaultConfig returns the §6 documented defaults: level 9, block_size
// 2048, serial, threshold 95%, auto align, padding 0x58.
func defaultConfig() *Config {
	return &Config{
		Level:       9,
		BlockSize:   2048,
		Parallel:    false,
		Threshold:   95,
		PaddingByte: 0x58,
	}
}

// WithLevel sets the LZ4 compression level. level <= 1 selects the fast
// encoder; level > 1 selects the high-compression encoder (§4.2).
func WithLevel(level int) Option {
	return options.New(func(c *Config) error {
		if level < 1 {
			return errs.ErrInvalidLevel
		}
		c.Level = level
		return nil
	})
}

// WithBlockSize sets the logical block length. It must be a positive
// multiple of 2048.
func WithBlockSize(blockSize int) Option {
	return options.New(func(c *Config) error {
		if blockSize <= 0 || blockSize%2048 != 0 {
			return errs.ErrInvalidBlockSize
		}
		c.BlockSize = blockSize
		return nil
	})
}

// WithParallel enables the batch-of-16384 concurrent compression path.
func WithParallel(parallel bool) Option {
	return options.NoError(func(c *Config) { c.Parallel = parallel })
}

// WithThreshold sets the plain-fallback percentage threshold (clamped to
// 100, per §6's parameter validation).
func WithThreshold(percent int) Option {
	return options.NoError(func(c *Config) {
		if percent > 100 {
			percent = 100
		}
		c.Threshold = percent
	})
}

// WithAlign overrides the auto-computed alignment shift. shift must be in
// 0..31.
func WithAlign(shift uint8) Option {
	return options.New(func(c *Config) error {
		if shift > 31 {
			return errs.ErrAlignmentOverflow
		}
		c.Align = shift
		c.alignSet = true
		return nil
	})
}

// WithPaddingByte sets the byte value used to fill alignment gaps.
func WithPaddingByte(b byte) Option {
	return options.NoError(func(c *Config) { c.PaddingByte = b })
}

// WithProgress installs the callback invoked after each committed block
// (or batch, in the parallel path).
func WithProgress(fn progress.EncodeFunc) Option {
	return options.NoError(func(c *Config) { c.Progress = fn })
}

// EstimateAlign computes the §4.2 auto-alignment default,
// floor(total_bytes / 2^31), clamped to the 31 the format's index entries
// can express.
func EstimateAlign(totalBytes int64) uint8 {
	shift := totalBytes / (1 << 31)
	if shift > 31 {
		return 31
	}
	return uint8(shift)
}
