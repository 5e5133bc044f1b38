// Package cache provides chunk translation cache implementations.
package cache

// ChunkCache is the interface for caching chunk translations. Keys are
// built by the main package from the chunk hash, language pair and document
// type.
type ChunkCache interface {
	// Get retrieves a cached translation. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache.
	Set(key string, value string) error
}
