package pry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolved tests the merged chain view
func TestResolved(t *testing.T) {
	t.Run("OverlaysChain", func(t *testing.T) {
		root := New(nil)
		root.Set("a", 1)
		root.Set("b", 2)

		cfg := New(root)
		cfg.Set("b", 20)
		cfg.Set("c", 3)

		assert.Equal(t, map[string]any{"a": 1, "b": 20, "c": 3}, cfg.Resolved())
	})

	t.Run("ForcesLazyValues", func(t *testing.T) {
		cfg := New(nil)
		cfg.Set("lazy", LazyValue(func() any { return "forced" }))

		assert.Equal(t, map[string]any{"lazy": "forced"}, cfg.Resolved())
	})

	t.Run("FlattensNestedNodes", func(t *testing.T) {
		cfg, err := FromMap(map[string]any{
			"db": map[string]any{"host": "localhost"},
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"db": map[string]any{"host": "localhost"},
		}, cfg.Resolved())
	})

	t.Run("IsASnapshot", func(t *testing.T) {
		cfg := New(nil)
		cfg.Set("a", 1)

		m := cfg.Resolved()
		m["a"] = 99
		assert.Equal(t, 1, cfg.Get("a"))
	})
}

// TestScan tests struct decoding of the resolved view
func TestScan(t *testing.T) {
	type dbConfig struct {
		Host string `config:"host"`
		Port int    `config:"port"`
	}

	type appConfig struct {
		Name    string        `config:"name"`
		Debug   bool          `config:"debug"`
		Timeout time.Duration `config:"timeout"`
		Tags    []string      `config:"tags"`
		DB      dbConfig      `config:"db"`
	}

	t.Run("FullDecode", func(t *testing.T) {
		cfg, err := FromMap(map[string]any{
			"name":    "pry",
			"debug":   "true",   // weak typing: string to bool
			"timeout": "1m30s",  // duration hook
			"tags":    "a,b,c",  // slice hook
			"db": map[string]any{
				"host": "localhost",
				"port": "5432", // weak typing: string to int
			},
		}, nil)
		require.NoError(t, err)

		var result appConfig
		require.NoError(t, cfg.Scan(&result))

		assert.Equal(t, "pry", result.Name)
		assert.True(t, result.Debug)
		assert.Equal(t, 90*time.Second, result.Timeout)
		assert.Equal(t, []string{"a", "b", "c"}, result.Tags)
		assert.Equal(t, "localhost", result.DB.Host)
		assert.Equal(t, 5432, result.DB.Port)
	})

	t.Run("ChainValuesIncluded", func(t *testing.T) {
		base := New(nil)
		base.Set("name", "inherited")

		cfg := New(base)
		cfg.Set("debug", true)

		var result appConfig
		require.NoError(t, cfg.Scan(&result))
		assert.Equal(t, "inherited", result.Name)
		assert.True(t, result.Debug)
	})

	t.Run("RejectsNonPointerTarget", func(t *testing.T) {
		cfg := New(nil)

		var result appConfig
		assert.Error(t, cfg.Scan(result))
		assert.Error(t, cfg.Scan(nil))

		var nilPtr *appConfig
		assert.Error(t, cfg.Scan(nilPtr))
	})
}
