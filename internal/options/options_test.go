package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	depth    int
	strict   bool
	validErr error
}

func (c *testConfig) Validate() error {
	return c.validErr
}

type plainConfig struct {
	name string
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply[*testConfig](cfg,
			NoError(func(c *testConfig) { c.depth = 1 }),
			NoError(func(c *testConfig) { c.depth = 2 }),
			NoError(func(c *testConfig) { c.strict = true }),
		)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.depth)
		require.True(t, cfg.strict)
	})

	t.Run("stops at first error", func(t *testing.T) {
		boom := errors.New("boom")
		cfg := &testConfig{}
		err := Apply[*testConfig](cfg,
			New(func(*testConfig) error { return boom }),
			NoError(func(c *testConfig) { c.depth = 9 }),
		)

		require.ErrorIs(t, err, boom)
		require.Equal(t, 0, cfg.depth)
	})

	t.Run("runs validator", func(t *testing.T) {
		invalid := errors.New("invalid")
		cfg := &testConfig{validErr: invalid}

		require.ErrorIs(t, Apply[*testConfig](cfg), invalid)
	})

	t.Run("targets without validator", func(t *testing.T) {
		cfg := &plainConfig{}
		err := Apply[*plainConfig](cfg, NoError(func(c *plainConfig) { c.name = "x" }))

		require.NoError(t, err)
		require.Equal(t, "x", cfg.name)
	})
}
