package handler

import (
	"sort"
	"sync"

	"github.com/vango-dev/markup/pkg/markup"
)

// Registry is a concurrency-safe set of named pages.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]markup.Markup
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{pages: make(map[string]markup.Markup)}
}

// Register adds or replaces the page called name.
func (r *Registry) Register(name string, m markup.Markup) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[name] = m
}

// Lookup returns the page called name.
func (r *Registry) Lookup(name string) (markup.Markup, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.pages[name]
	return m, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
