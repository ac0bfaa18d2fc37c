package manifest

import (
	"fmt"

	"github.com/zjrosen/arbor/internal/domain/resolve"
	"github.com/zjrosen/arbor/internal/registry"
)

// Set is a loaded manifest set: the declared entries in file order plus
// the kind metadata they resolve under. A Set is immutable after Load;
// reloading builds a fresh one.
type Set struct {
	entries []Entry
	byName  map[string]int
	kinds   map[Kind]KindSpec
}

// Entries returns the declared entries in load order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the named entry.
func (s *Set) Entry(name string) (Entry, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// KindSpec returns the metadata declared for a kind.
func (s *Set) KindSpec(kind Kind) (KindSpec, bool) {
	spec, ok := s.kinds[kind]
	return spec, ok
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Build constructs the registry and the type-keyed metadata map the
// resolver consumes. Entry values come from the catalog; kind specs
// translate to resolve.Metadata with kinds swapped for reflect.Types.
func (s *Set) Build() (*registry.Registry, resolve.MetadataMap, error) {
	reg := registry.New()
	for _, entry := range s.entries {
		value, err := newValue(entry)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %q: %w", entry.Name, err)
		}
		if err := reg.Register(entry.Name, value); err != nil {
			return nil, nil, fmt.Errorf("entry %q: %w", entry.Name, err)
		}
	}

	meta := make(resolve.MetadataMap, len(s.kinds))
	for kind, spec := range s.kinds {
		t, err := TypeOf(kind)
		if err != nil {
			return nil, nil, err
		}
		m, err := spec.metadata()
		if err != nil {
			return nil, nil, fmt.Errorf("kind %q: %w", kind, err)
		}
		meta[t] = m
	}
	return reg, meta, nil
}

// metadata translates a KindSpec into the domain's metadata record.
func (spec KindSpec) metadata() (resolve.Metadata, error) {
	m := resolve.Metadata{
		Key:      spec.Key,
		KeyName:  spec.KeyName,
		Children: spec.Children,
	}
	if spec.KeyKind != "" {
		t, err := TypeOf(spec.KeyKind)
		if err != nil {
			return resolve.Metadata{}, err
		}
		m.KeyType = t
	}
	for _, child := range spec.ChildKinds {
		t, err := TypeOf(child)
		if err != nil {
			return resolve.Metadata{}, err
		}
		m.ChildTypes = append(m.ChildTypes, t)
	}
	return m, nil
}
