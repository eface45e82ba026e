package port

// Cache is a bounded key-value store shared between use cases.
// Implementations must be safe for concurrent use.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	// Set may evict another entry to make room.
	Set(key K, value V)
	Remove(key K)
	Len() int
}
