package appctx

import "sort"

// Initializer builds the initial context entries. Create invokes it exactly
// once; the returned map is copied, so the caller's reference does not alias
// the store.
type Initializer func() map[string]any

// Store holds the sealed application context entries. Once Create returns,
// the key set and value bindings are fixed, which makes Get safe for
// unsynchronized concurrent use after bootstrap.
type Store struct {
	entries map[string]any
}

// Create invokes the initializer once and seals the resulting entries into
// a Store. A nil initializer yields an empty store.
func Create(init Initializer) *Store {
	entries := make(map[string]any)
	if init != nil {
		for key, val := range init() {
			entries[key] = val
		}
	}
	return &Store{entries: entries}
}

// Get returns the value bound to key, by identity. A missing key is an
// *UnknownKeyError; lookups are never silently defaulted, because a silent
// default would mask a wiring mistake.
func (s *Store) Get(key string) (any, error) {
	val, ok := s.entries[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}
	return val, nil
}

// Has reports whether key is bound in the store.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Set always fails with a *MutationError: the store is sealed at creation.
// The method exists so that a mutation attempt surfaces as a diagnosable
// error instead of having no expression at all.
func (s *Store) Set(key string, _ any) error {
	return &MutationError{Op: "set", Key: key}
}

// Delete always fails with a *MutationError, for the same reason as Set.
func (s *Store) Delete(key string) error {
	return &MutationError{Op: "delete", Key: key}
}

// Keys returns the bound keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of bound entries.
func (s *Store) Len() int {
	return len(s.entries)
}
