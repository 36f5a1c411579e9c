package measure

import (
	"errors"
	"fmt"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/compress"
	"github.com/arloliu/leb128/format"
	"github.com/arloliu/leb128/internal/options"
)

// ErrNoWriterStrategies is returned when WithWriterStrategies is given an empty list.
var ErrNoWriterStrategies = errors.New("at least one writer strategy is required")

// Config holds the settings of a Runner.
type Config struct {
	writers     []format.WriterStrategy
	compression format.CompressionType
	verify      bool
}

// Option represents a functional option for configuring a Runner.
type Option = options.Option[*Config]

// WithWriterStrategies selects the positioned writers every encoder runs with.
// The default is all of format.WriterStrategies.
func WithWriterStrategies(strategies ...format.WriterStrategy) Option {
	return options.New(func(c *Config) error {
		if len(strategies) == 0 {
			return ErrNoWriterStrategies
		}
		for _, s := range strategies {
			if _, err := buffer.NewWriter(s); err != nil {
				return err
			}
		}
		c.writers = append([]format.WriterStrategy(nil), strategies...)

		return nil
	})
}

// WithCompression selects the codec applied to encoded streams for the
// compressed size columns. The default is format.CompressionZstd.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.CreateCodec(compressionType, "report"); err != nil {
			return err
		}
		c.compression = compressionType

		return nil
	})
}

// WithVerify enables cross-strategy verification: every encoder and writer
// combination must produce the same stream, and every decoder must read back
// the input. Verification is on by default.
func WithVerify(verify bool) Option {
	return options.NoError(func(c *Config) {
		c.verify = verify
	})
}

var defaultOptions = []Option{
	WithWriterStrategies(format.WriterStrategies...),
	WithCompression(format.CompressionZstd),
	WithVerify(true),
}

func (c *Config) String() string {
	return fmt.Sprintf("writers=%v compression=%s verify=%t", c.writers, c.compression, c.verify)
}
