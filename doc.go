// Package pry provides a hierarchical, dynamically-keyed configuration store.
//
// A Config node maps string keys to arbitrary values and falls back to an
// optional parent node (its "default") for keys it does not hold locally.
// A key stored locally always shadows the parent's value, even when the
// stored value is zero-valued (0, false, "", nil) - precedence is decided
// by presence, never by truthiness.
//
// Features:
//   - Arbitrarily deep fallback chains with recursive resolution
//   - Lazy values re-evaluated on every read (see Lazy and LazyValue)
//   - Reserved keys rejected on every write path
//   - Copy-on-read keys duplicated from the parent before first mutation
//   - Hash interop: Merge from maps or anything convertible to a map,
//     ToMap snapshots, ordered Keys, Forget, Clear
//   - EagerLoad to materialize root defaults into a descendant
//   - Struct decoding of the resolved view via mapstructure
//   - Builder pattern for assembling nodes from structs and maps
//
// Quick Start:
//
//	base := pry.New(nil)
//	base.Set("editor", "nano")
//	base.Set("pager", true)
//
//	local := pry.New(base)
//	local.Set("pager", false) // shadows base; a falsy value still wins
//
//	local.Get("editor") // "nano", resolved through the chain
//	local.Get("pager")  // false
//
// Lazy values:
//
//	local.Set("prompt", pry.LazyValue(func() any { return buildPrompt() }))
//	local.Get("prompt") // invokes the function on every read, never cached
//
// Thread Safety:
// A node's table has a single logical owner. The package performs no
// internal locking; callers sharing a node across goroutines must provide
// their own synchronization. Descendants may share one ancestor for reads,
// but every write goes through the descendant's own table.
package pry
