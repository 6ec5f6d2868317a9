package pry

import (
	"fmt"
	"reflect"
)

// Options configures the structural key sets of a Config node.
// Both sets are environment-specific: the embedding application decides
// which names collide with its internal state and which inherited
// collections must be duplicated before a caller can mutate them.
type Options struct {
	// ReservedKeys may never appear in a node's local table. Every write
	// path rejects them with *ReservedKeyError before mutating state.
	ReservedKeys []string

	// CopyOnRead lists keys whose first resolution through the parent
	// chain deep-copies the value into the local table, so the caller can
	// mutate the returned collection without corrupting the parent's copy.
	CopyOnRead []string
}

// DefaultOptions returns the standard key sets: the parent reference name
// is reserved, and the hook/callback registry is copied on first read.
func DefaultOptions() Options {
	return Options{
		ReservedKeys: []string{"default"},
		CopyOnRead:   []string{"hooks"},
	}
}

// Config is one node of a fallback hierarchy. It owns a local key-value
// table and resolves keys absent locally through its parent, recursively
// to the root. The zero value is not usable; construct nodes with New,
// NewWithOptions, FromMap, or a Builder.
//
// A Config performs no internal locking. See the package documentation
// for the sharing rules.
type Config struct {
	table    map[string]any
	order    []string // insertion order of local keys, for inspection
	def      *Config
	reserved map[string]struct{}
	copyKeys map[string]struct{}
}

// New creates an empty node that falls back to def. A nil def marks the
// root of a chain: unknown keys resolve to nil.
func New(def *Config) *Config {
	return NewWithOptions(def, DefaultOptions())
}

// NewWithOptions creates an empty node with explicit key sets.
func NewWithOptions(def *Config, opts Options) *Config {
	c := &Config{
		table:    make(map[string]any),
		def:      def,
		reserved: make(map[string]struct{}, len(opts.ReservedKeys)),
		copyKeys: make(map[string]struct{}, len(opts.CopyOnRead)),
	}
	for _, k := range opts.ReservedKeys {
		c.reserved[k] = struct{}{}
	}
	for _, k := range opts.CopyOnRead {
		c.copyKeys[k] = struct{}{}
	}
	return c
}

// FromMap builds a node from an existing map. Nested map-like values
// become child nodes that fall back to the same def as the node being
// built (siblings, not a deepening chain); slices are walked element-wise
// with order and length preserved. A reserved key anywhere in src rejects
// the whole construction.
func FromMap(src map[string]any, def *Config) (*Config, error) {
	return FromMapWithOptions(src, def, DefaultOptions())
}

// FromMapWithOptions is FromMap with explicit key sets.
func FromMapWithOptions(src map[string]any, def *Config, opts Options) (*Config, error) {
	c := NewWithOptions(def, opts)
	for key, value := range src {
		converted, err := convertValue(value, def, opts)
		if err != nil {
			return nil, err
		}
		if err := c.Set(key, converted); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// convertValue recursively converts map-like values into Config nodes
// threaded with the same def, and walks slices for map-like elements.
func convertValue(v any, def *Config, opts Options) (any, error) {
	if _, ok := v.(*Config); ok {
		return v, nil
	}
	if m, ok := asStringKeyMap(v); ok {
		return FromMapWithOptions(m, def, opts)
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		needsCopy := false
		for i := 0; i < rv.Len(); i++ {
			if _, ok := asStringKeyMap(rv.Index(i).Interface()); ok {
				needsCopy = true
				break
			}
		}
		if !needsCopy {
			return v, nil
		}

		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			converted, err := convertValue(rv.Index(i).Interface(), def, opts)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	}

	return v, nil
}

// Get resolves key, checking the local table first and falling back
// through the parent chain. A lazy value is invoked on every access.
// Unknown keys resolve to nil; Get never fails.
func (c *Config) Get(key string) any {
	v, _ := c.Lookup(key)
	return v
}

// Lookup is Get with an explicit presence indicator, distinguishing a
// stored nil from an unknown key.
func (c *Config) Lookup(key string) (any, bool) {
	if v, ok := c.table[key]; ok {
		return resolveLazy(v), true
	}
	if c.def == nil {
		return nil, false
	}

	v, ok := c.def.Lookup(key)
	if !ok {
		return nil, false
	}

	// First read of a copy-on-read key through the chain localizes a
	// duplicate, so mutations of the returned collection stay local.
	if _, cow := c.copyKeys[key]; cow && isMutableCollection(v) {
		dup := deepCopyValue(v)
		c.setLocal(key, dup)
		return dup, true
	}
	return v, true
}

// Set stores value under key in the local table, shadowing whatever the
// parent chain would resolve - including explicitly zero-valued entries.
// Reserved keys fail with *ReservedKeyError before any mutation.
func (c *Config) Set(key string, value any) error {
	if _, bad := c.reserved[key]; bad {
		return &ReservedKeyError{Key: key}
	}
	c.setLocal(key, value)
	return nil
}

// setLocal writes the table and maintains insertion order.
func (c *Config) setLocal(key string, value any) {
	if _, exists := c.table[key]; !exists {
		c.order = append(c.order, key)
	}
	c.table[key] = value
}

// Has reports whether key is resolvable, locally or anywhere in the
// parent chain. It neither invokes lazy values nor triggers copy-on-read.
func (c *Config) Has(key string) bool {
	if _, ok := c.table[key]; ok {
		return true
	}
	if c.def != nil {
		return c.def.Has(key)
	}
	return false
}

// HasLocal reports whether key is physically present in this node's own
// table, ignoring the parent chain.
func (c *Config) HasLocal(key string) bool {
	_, ok := c.table[key]
	return ok
}

// Keys returns the local key names in insertion order. Inherited keys are
// not included.
func (c *Config) Keys() []string {
	return append([]string(nil), c.order...)
}

// ToMap returns a shallow copy of the local table only, not the resolved
// view through the parent. Mutating the result never affects the node.
func (c *Config) ToMap() map[string]any {
	out := make(map[string]any, len(c.table))
	for k, v := range c.table {
		out[k] = v
	}
	return out
}

// ToMapper is the primary conversion capability Merge accepts.
// Config itself satisfies it.
type ToMapper interface {
	ToMap() map[string]any
}

// MapConvertible is the fallback conversion capability Merge accepts,
// tried only when the source is neither map-like nor a ToMapper.
type MapConvertible interface {
	AsMap() map[string]any
}

// Merge applies every key/value pair of other to the receiver via Set.
// other may be a map (any key type coercible to string), a ToMapper, or a
// MapConvertible, tried in that order; anything else fails with
// ErrUnsupportedMerge. Reserved keys are validated up front, so a failed
// merge leaves the receiver untouched.
func (c *Config) Merge(other any) error {
	src, err := mergeSource(other)
	if err != nil {
		return err
	}
	for key := range src {
		if _, bad := c.reserved[key]; bad {
			return &ReservedKeyError{Key: key}
		}
	}
	for key, value := range src {
		c.setLocal(key, value)
	}
	return nil
}

// mergeSource reduces a merge argument to a string-keyed map.
func mergeSource(other any) (map[string]any, error) {
	if m, ok := asStringKeyMap(other); ok {
		return m, nil
	}
	switch v := other.(type) {
	case ToMapper:
		return v.ToMap(), nil
	case MapConvertible:
		return v.AsMap(), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedMerge, other)
}

// Clear empties the local table entirely, leaving the parent untouched.
// It always reports success.
func (c *Config) Clear() bool {
	c.table = make(map[string]any)
	c.order = nil
	return true
}

// Forget removes key from the local table, so later reads fall through to
// the parent chain again. Forgetting an absent key is a no-op.
func (c *Config) Forget(key string) {
	if _, ok := c.table[key]; !ok {
		return
	}
	delete(c.table, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// EagerLoad copies every local key of the terminal ancestor (the root of
// the chain) into the receiver's table, skipping keys already present
// locally. Values are copied as stored, so lazy wrappers stay lazy. After
// the call, later mutations of the root no longer reach the receiver for
// those keys.
func (c *Config) EagerLoad() {
	root := c.def
	if root == nil {
		return
	}
	for root.def != nil {
		root = root.def
	}
	for _, key := range root.order {
		if _, ok := c.table[key]; !ok {
			c.setLocal(key, root.table[key])
		}
	}
}

// Equal reports whether other is a Config whose local table is
// structurally equal to the receiver's. Parent chains are not compared;
// nil and non-Config values are never equal.
func (c *Config) Equal(other any) bool {
	o, ok := other.(*Config)
	if !ok || o == nil {
		return false
	}
	return reflect.DeepEqual(c.table, o.table)
}

// Default returns the parent node consulted when a key is absent locally,
// or nil at the root of a chain.
func (c *Config) Default() *Config {
	return c.def
}

// Clone returns a node with a deep copy of the local table, sharing the
// same parent and key sets as the receiver.
func (c *Config) Clone() *Config {
	clone := &Config{
		table:    make(map[string]any, len(c.table)),
		order:    append([]string(nil), c.order...),
		def:      c.def,
		reserved: c.reserved,
		copyKeys: c.copyKeys,
	}
	for k, v := range c.table {
		clone.table[k] = deepCopyValue(v)
	}
	return clone
}
