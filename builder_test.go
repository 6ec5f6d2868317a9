package pry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests fluent node assembly
func TestBuilder(t *testing.T) {
	type serverDefaults struct {
		Host string `config:"host"`
		Port int    `config:"port"`
	}

	t.Run("Empty", func(t *testing.T) {
		cfg, err := NewBuilder().Build()
		require.NoError(t, err)
		assert.Empty(t, cfg.Keys())
		assert.Nil(t, cfg.Default())
	})

	t.Run("WithDefaultsStruct", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithDefaults(serverDefaults{Host: "localhost", Port: 8080}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Get("host"))
		assert.Equal(t, 8080, cfg.Get("port"))
	})

	t.Run("MapOverridesDefaults", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithDefaults(serverDefaults{Host: "localhost", Port: 8080}).
			WithMap(map[string]any{"port": 9090}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Get("host"))
		assert.Equal(t, 9090, cfg.Get("port"))
	})

	t.Run("WithDefaultParent", func(t *testing.T) {
		base := New(nil)
		base.Set("editor", "nano")

		cfg, err := NewBuilder().WithDefault(base).Build()
		require.NoError(t, err)

		assert.Same(t, base, cfg.Default())
		assert.Equal(t, "nano", cfg.Get("editor"))
	})

	t.Run("NestedMapBecomesNode", func(t *testing.T) {
		base := New(nil)
		cfg, err := NewBuilder().
			WithDefault(base).
			WithMap(map[string]any{
				"db": map[string]any{"host": "localhost"},
			}).
			Build()
		require.NoError(t, err)

		db, ok := cfg.Get("db").(*Config)
		require.True(t, ok)
		assert.Equal(t, "localhost", db.Get("host"))
		assert.Same(t, base, db.Default())
	})

	t.Run("CustomKeySets", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithReservedKeys("internal").
			WithCopyOnRead("listeners").
			Build()
		require.NoError(t, err)

		var rke *ReservedKeyError
		require.ErrorAs(t, cfg.Set("internal", 1), &rke)
		assert.NoError(t, cfg.Set("default", 1))
	})

	t.Run("ReservedKeyInSeed", func(t *testing.T) {
		_, err := NewBuilder().
			WithMap(map[string]any{"default": 1}).
			Build()

		var rke *ReservedKeyError
		require.ErrorAs(t, err, &rke)
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithMap(map[string]any{"default": 1}).MustBuild()
		})
	})
}
