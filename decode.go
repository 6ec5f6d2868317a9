package pry

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// tagName is the struct tag consulted by Scan and Builder.WithDefaults.
const tagName = "config"

// Resolved returns the fully merged view of the node: the root's table
// overlaid by each descendant down to the receiver, with lazy values
// forced and nested Config nodes flattened to maps. The result is a fresh
// structure; mutating it never affects the chain.
func (c *Config) Resolved() map[string]any {
	var out map[string]any
	if c.def != nil {
		out = c.def.Resolved()
	} else {
		out = make(map[string]any)
	}
	for _, key := range c.order {
		out[key] = flattenValue(resolveLazy(c.table[key]))
	}
	return out
}

// flattenValue prepares a resolved value for decoding: nested nodes
// become maps, slices are walked element-wise.
func flattenValue(v any) any {
	switch val := v.(type) {
	case *Config:
		return val.Resolved()
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = flattenValue(elem)
		}
		return out
	default:
		return v
	}
}

// Scan decodes the resolved view of the node into target, which must be a
// non-nil pointer to a struct or map. Fields map via the "config" struct
// tag; input is weakly typed, so string values convert to numeric, bool,
// duration, and slice targets where possible.
func (c *Config) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(c.Resolved()); err != nil {
		return fmt.Errorf("failed to scan resolved config into %T: %w", target, err)
	}

	return nil
}
