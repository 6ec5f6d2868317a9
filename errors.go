package pry

import (
	"errors"
	"fmt"
)

// ErrUnsupportedMerge is returned by Merge when the argument is neither
// map-like nor convertible to a map via ToMapper or MapConvertible.
var ErrUnsupportedMerge = errors.New("merge source is neither map-like nor convertible to a map")

// ReservedKeyError is returned when a write targets a key in the node's
// reserved set. The reserved set is a closed, documented configuration of
// the node; hitting this error is a programming error in the caller.
type ReservedKeyError struct {
	Key string
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("key %q is reserved and cannot be assigned", e.Key)
}
