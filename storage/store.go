package storage

// Store is a key -> JSON blob persistence boundary. Each collection lives
// whole under one key, so every mutation is a read-modify-write of the full
// list. Individual Set calls are serialized by the backend, but two
// overlapping read-modify-write flows can still lose an update; accepted at
// single-user scale and deliberately not papered over here.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
