package pry

import (
	"fmt"
	"reflect"
)

// coerceKey normalizes an arbitrary map key to a string. Keys are always
// stored as strings regardless of the source map's key type.
func coerceKey(k any) string {
	switch v := k.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// asStringKeyMap reports whether v is map-like and, if so, returns it as a
// map with string keys. A map[string]any passes through unchanged; any
// other map kind is rebuilt with its keys coerced to strings.
func asStringKeyMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[coerceKey(iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, true
}

// isMutableCollection reports whether v is a value that callers could
// mutate in place, corrupting a shared parent copy.
func isMutableCollection(v any) bool {
	if _, ok := v.(*Config); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

// deepCopyValue duplicates maps, slices, and Config nodes recursively so
// the copy can be mutated without touching the original. Scalars and any
// other types are returned as-is.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case *Config:
		return val.Clone()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = deepCopyValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = deepCopyValue(elem)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v
	}
	switch rv.Kind() {
	case reflect.Map:
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copiedValue(iter.Value().Interface(), rv.Type().Elem()))
		}
		return out.Interface()
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(copiedValue(rv.Index(i).Interface(), rv.Type().Elem()))
		}
		return out.Interface()
	default:
		return v
	}
}

// copiedValue deep-copies elem, substituting the container's zero element
// for untyped nils so reflect can store the result.
func copiedValue(elem any, typ reflect.Type) reflect.Value {
	dup := reflect.ValueOf(deepCopyValue(elem))
	if !dup.IsValid() {
		return reflect.Zero(typ)
	}
	return dup
}
