package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/specialistvlad/dyegen/internal/resloc"
)

// Kind names the population a Registry holds. It doubles as the output path
// prefix under the namespace directory.
type Kind string

const (
	// BlockStates holds placement documents keyed by block id.
	BlockStates Kind = "blockstates"
	// Models holds model documents keyed by model location.
	Models Kind = "models"
)

// Producer builds a serializable document. It is called at most once per
// ForEach visit and never during insertion.
type Producer func() any

// Entry is a single keyed document produced by a recipe.
type Entry struct {
	Key     resloc.Location
	Produce Producer
}

// DuplicateKeyError reports a second fail-fast insertion for the same key.
type DuplicateKeyError struct {
	Kind Kind
	Key  resloc.Location
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s definition for %s", e.Kind, e.Key)
}

// Registry is an append-only map of document keys to producers.
type Registry struct {
	kind    Kind
	mu      sync.RWMutex
	entries map[resloc.Location]Producer
}

// New creates an empty Registry of the given kind.
func New(kind Kind) *Registry {
	return &Registry{
		kind:    kind,
		entries: make(map[resloc.Location]Producer),
	}
}

// Kind returns the kind this registry was created with.
func (r *Registry) Kind() Kind {
	return r.kind
}

// Insert stores producer under key. It returns a *DuplicateKeyError if the
// key is already present, regardless of which policy inserted it first.
func (r *Registry) Insert(key resloc.Location, producer Producer) error {
	if producer == nil {
		panic(fmt.Sprintf("registry: nil producer for %s", key))
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return &DuplicateKeyError{Kind: r.kind, Key: key}
	}
	r.entries[key] = producer
	return nil
}

// InsertIfAbsent stores producer under key only if the key is free. It
// reports whether the producer was kept.
func (r *Registry) InsertIfAbsent(key resloc.Location, producer Producer) bool {
	if producer == nil {
		panic(fmt.Sprintf("registry: nil producer for %s", key))
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return false
	}
	r.entries[key] = producer
	return true
}

// Has reports whether key is registered.
func (r *Registry) Has(key resloc.Location) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of registered documents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Keys returns every registered key in sorted order.
func (r *Registry) Keys() []resloc.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]resloc.Location, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, resloc.Compare)
	return keys
}

// Get evaluates the producer stored under key.
func (r *Registry) Get(key resloc.Location) (any, bool) {
	r.mu.RLock()
	producer, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return producer(), true
}

// ForEach calls visit with every key and its freshly produced document, in
// key order. It stops at the first error returned by visit.
func (r *Registry) ForEach(visit func(key resloc.Location, doc any) error) error {
	for _, key := range r.Keys() {
		r.mu.RLock()
		producer := r.entries[key]
		r.mu.RUnlock()

		if err := visit(key, producer()); err != nil {
			return err
		}
	}
	return nil
}
