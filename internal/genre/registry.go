package genre

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownGenre is returned when a genre key cannot be resolved.
var ErrUnknownGenre = errors.New("unknown genre")

// Registry maps case-insensitive keys to genres. Keys are uppercased on
// registration and lookup, so "regular", "Regular" and "REGULAR" resolve to
// the same genre. Reads vastly outnumber writes; a RWMutex serializes
// registration against concurrent lookups.
type Registry struct {
	mu     sync.RWMutex
	genres map[string]Genre
}

// NewRegistry constructs a registry pre-seeded with the built-in genres.
func NewRegistry() *Registry {
	r := &Registry{genres: make(map[string]Genre)}
	r.Register("REGULAR", Regular)
	r.Register("NEW_RELEASE", NewRelease)
	r.Register("CHILDRENS", Childrens)
	return r
}

// Register stores the genre under the normalized key, overwriting any
// existing entry. Last write wins.
func (r *Registry) Register(key string, g Genre) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.genres[normalize(key)] = g
}

// Lookup returns the genre registered under the key, if any.
func (r *Registry) Lookup(key string) (Genre, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.genres[normalize(key)]
	return g, ok
}

// Resolve returns the genre for the key or an error carrying the original,
// non-normalized key text.
func (r *Registry) Resolve(key string) (Genre, error) {
	g, ok := r.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenre, key)
	}
	return g, nil
}

// Has reports whether a genre is registered under the key.
func (r *Registry) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Keys returns the registered normalized keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.genres))
	for key := range r.genres {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func normalize(key string) string {
	return strings.ToUpper(key)
}
