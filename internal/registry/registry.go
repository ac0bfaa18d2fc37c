// Package registry provides the in-memory implementation of the resolver's
// lookup port: named bindings with exactly-one-match semantics for both
// name and type lookups.
package registry

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"

	"github.com/zjrosen/arbor/internal/domain/resolve"
)

// Registry errors
var (
	ErrBlankName     = errors.New("binding name cannot be blank")
	ErrNilValue      = errors.New("binding value cannot be nil")
	ErrDuplicateName = errors.New("duplicate binding name")
)

// Registry holds named value bindings. Names are unique; several bindings
// may share a value type, in which case type lookups for that type fail as
// ambiguous. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	bindings []binding
	byName   map[string]int
}

type binding struct {
	name  string
	value any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]int),
	}
}

// Register adds a binding under the given name.
func (r *Registry) Register(name string, value any) error {
	if name == "" {
		return ErrBlankName
	}
	if value == nil {
		return ErrNilValue
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return ErrDuplicateName
	}
	r.byName[name] = len(r.bindings)
	r.bindings = append(r.bindings, binding{name: name, value: value})
	return nil
}

// ByName implements resolve.Lookup. Names are unique by construction, so a
// name lookup is never ambiguous here.
func (r *Registry) ByName(_ context.Context, name string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[name]
	if !ok {
		return nil, &resolve.NotFoundError{Descriptor: resolve.ByName(name)}
	}
	return r.bindings[idx].value, nil
}

// ByType implements resolve.Lookup: returns the one binding whose dynamic
// type is t, a NotFoundError for zero matches, or an AmbiguousBindingError
// naming the match count.
func (r *Registry) ByType(_ context.Context, t reflect.Type) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []any
	for _, b := range r.bindings {
		if reflect.TypeOf(b.value) == t {
			matches = append(matches, b.value)
		}
	}
	switch len(matches) {
	case 0:
		return nil, &resolve.NotFoundError{Descriptor: resolve.ByType(t)}
	case 1:
		return matches[0], nil
	default:
		return nil, &resolve.AmbiguousBindingError{Descriptor: resolve.ByType(t), Count: len(matches)}
	}
}

// Names returns all binding names, sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bindings))
	for _, b := range r.bindings {
		names = append(names, b.name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}
