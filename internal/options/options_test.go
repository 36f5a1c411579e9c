package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	strategy int
	writer   string
	verify   bool
}

var errBadStrategy = errors.New("bad strategy")

func withStrategy(s int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if s <= 0 {
			return errBadStrategy
		}
		c.strategy = s

		return nil
	})
}

func withWriter(w string) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.writer = w
	})
}

func withVerify(v bool) Option[*codecConfig] {
	return NoError(func(c *codecConfig) {
		c.verify = v
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &codecConfig{}

		err := Apply(cfg, withStrategy(1), withWriter("a"), withWriter("b"), withVerify(true))

		require.NoError(t, err)
		require.Equal(t, 1, cfg.strategy)
		require.Equal(t, "b", cfg.writer, "later options override earlier ones")
		require.True(t, cfg.verify)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &codecConfig{}

		err := Apply(cfg, withWriter("a"), withStrategy(-1), withVerify(true))

		require.ErrorIs(t, err, errBadStrategy)
		require.Equal(t, "a", cfg.writer)
		require.False(t, cfg.verify, "options after the failing one are not applied")
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &codecConfig{}

		err := Apply(cfg, nil, withWriter("a"))

		require.NoError(t, err)
		require.Equal(t, "a", cfg.writer)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &codecConfig{}

		require.NoError(t, Apply(cfg))
		require.Equal(t, codecConfig{}, *cfg)
	})
}

func TestBuild(t *testing.T) {
	defaults := []Option[*codecConfig]{withStrategy(2), withWriter("default")}

	t.Run("defaults only", func(t *testing.T) {
		cfg, err := Build(&codecConfig{}, defaults)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.strategy)
		require.Equal(t, "default", cfg.writer)
	})

	t.Run("user options win", func(t *testing.T) {
		cfg, err := Build(&codecConfig{}, defaults, withWriter("custom"))

		require.NoError(t, err)
		require.Equal(t, 2, cfg.strategy)
		require.Equal(t, "custom", cfg.writer)
	})

	t.Run("user option error", func(t *testing.T) {
		_, err := Build(&codecConfig{}, defaults, withStrategy(0))

		require.ErrorIs(t, err, errBadStrategy)
	})

	t.Run("default error", func(t *testing.T) {
		_, err := Build(&codecConfig{}, []Option[*codecConfig]{withStrategy(-5)})

		require.ErrorIs(t, err, errBadStrategy)
	})
}

func TestOption_PrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
