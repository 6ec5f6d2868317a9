package pry

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Builder provides a fluent interface for assembling Config nodes from
// struct defaults, seed maps, and an explicit parent.
type Builder struct {
	def      *Config
	opts     Options
	defaults any
	seed     map[string]any
	err      error
}

// NewBuilder creates a builder with the default key sets and no parent.
func NewBuilder() *Builder {
	return &Builder{
		opts: DefaultOptions(),
	}
}

// WithDefault sets the parent node the built Config falls back to.
func (b *Builder) WithDefault(def *Config) *Builder {
	b.def = def
	return b
}

// WithReservedKeys replaces the reserved key set.
func (b *Builder) WithReservedKeys(keys ...string) *Builder {
	b.opts.ReservedKeys = keys
	return b
}

// WithCopyOnRead replaces the copy-on-read key set.
func (b *Builder) WithCopyOnRead(keys ...string) *Builder {
	b.opts.CopyOnRead = keys
	return b
}

// WithDefaults seeds the node from a struct's exported fields, mapped
// through the "config" struct tag. Applied before WithMap entries, so map
// entries win on key collisions.
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithMap seeds the node from a map, converted with FromMap semantics.
func (b *Builder) WithMap(m map[string]any) *Builder {
	if b.seed == nil {
		b.seed = make(map[string]any, len(m))
	}
	for k, v := range m {
		b.seed[k] = v
	}
	return b
}

// Build creates the Config node with all specified options.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	src := make(map[string]any)

	if b.defaults != nil {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  &src,
			TagName: tagName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
		}
		if err := decoder.Decode(b.defaults); err != nil {
			return nil, fmt.Errorf("failed to convert defaults struct: %w", err)
		}
	}

	for k, v := range b.seed {
		src[k] = v
	}

	cfg, err := FromMapWithOptions(src, b.def, b.opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}
