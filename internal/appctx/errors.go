package appctx

import "fmt"

// MutationError reports an attempt to add, remove, or reassign a top-level
// key of a sealed store.
type MutationError struct {
	Op  string
	Key string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("context store is sealed: cannot %s key %q", e.Op, e.Key)
}

// UnknownKeyError reports a lookup of a key that was never bound.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown context key %q", e.Key)
}
