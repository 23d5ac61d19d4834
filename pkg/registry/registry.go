package registry

import (
	"sort"
	"strings"
	"sync"
)

// entry builds a T on first use. Construction happens at most once per
// canonical name, mirroring spec §4.3's "resolve... constructing on first
// hit" resolution rule.
type entry[T any] struct {
	once  sync.Once
	value T
	build func() T
}

// Registry is a thread-safe, lazily-memoizing name-to-singleton resolver,
// generalized from denisvmedia/inventario's RegisterBackend/CreateRegistry
// factory pattern (go/registry/factory.go) with Go generics so lexers and
// formatters share one implementation instead of two hand-duplicated ones.
type Registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
	aliases map[string]string
	onMiss  func(name string)
}

// New creates an empty registry. onMiss, if non-nil, is called the first
// time a given canonical name is actually constructed (a cache miss) — the
// registry's sole logging hook, used by lexers.go/formatters.go to emit a
// Debug line via internal/xlog without coupling this package's construction
// logic to a specific logger.
func New[T any](onMiss func(name string)) *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]*entry[T]),
		aliases: make(map[string]string),
		onMiss:  onMiss,
	}
}

// Register binds canonical name and every alias to build. Aliases and the
// canonical name share one cached entry: constructing via an alias still
// only runs build once.
func (r *Registry[T]) Register(name string, aliases []string, build func() T) {
	name = normalize(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &entry[T]{build: build}
	for _, a := range aliases {
		r.aliases[normalize(a)] = name
	}
}

// Get resolves name to its singleton, constructing it on first access.
// The bool return is false when name has no registered canonical entry or
// alias.
func (r *Registry[T]) Get(name string) (T, bool) {
	name = normalize(name)

	r.mu.RLock()
	if canon, ok := r.aliases[name]; ok {
		name = canon
	}
	e, ok := r.entries[name]
	r.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}

	e.once.Do(func() {
		e.value = e.build()
		if r.onMiss != nil {
			r.onMiss(name)
		}
	})
	return e.value, true
}

// Has reports whether name resolves to a registered entry, without forcing
// construction.
func (r *Registry[T]) Has(name string) bool {
	name = normalize(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if canon, ok := r.aliases[name]; ok {
		name = canon
	}
	_, ok := r.entries[name]
	return ok
}

// Names returns every canonical name, sorted, as spec §4.3's ListLanguages/
// ListFormatters operations require.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
