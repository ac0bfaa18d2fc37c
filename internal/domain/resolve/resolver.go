package resolve

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/zjrosen/arbor/internal/domain/tree"
)

// Resolver construction and resolution errors
var (
	ErrNilLookup            = errors.New("resolver requires a lookup")
	ErrEmptyDescriptor      = errors.New("descriptor must name a binding or a type")
	ErrConflictingChildSpec = errors.New("metadata declares both children and childTypes")
	ErrCycle                = errors.New("cycle in metadata graph")
)

// Keyer is the self-keying capability: a value type implementing it computes
// its own node key, taking precedence over any metadata-declared key. The
// result is used as-is, even when nil.
type Keyer interface {
	BuildKey() any
}

// Hooks observes resolution for instrumentation. ResolveStart may derive a
// new context (e.g. to open a span) that the resolver threads through the
// node and its children; ResolveEnd receives the outcome.
type Hooks interface {
	ResolveStart(ctx context.Context, d Descriptor) context.Context
	ResolveEnd(ctx context.Context, d Descriptor, node *tree.Node, err error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHooks attaches resolution observers.
func WithHooks(h Hooks) Option {
	return func(r *Resolver) {
		r.hooks = h
	}
}

// Resolver assembles immutable trees from metadata. It holds no state across
// calls; one Resolver is safe for concurrent Resolve calls.
type Resolver struct {
	lookup Lookup
	meta   MetadataSource
	hooks  Hooks
}

// New creates a Resolver over the given lookup and metadata source. A nil
// meta source is legal and means no value type carries metadata.
func New(lookup Lookup, meta MetadataSource, opts ...Option) (*Resolver, error) {
	if lookup == nil {
		return nil, ErrNilLookup
	}
	r := &Resolver{lookup: lookup, meta: meta}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve builds the tree rooted at the given descriptor. It resolves the
// value through the Lookup port, reads the Metadata for the value's type,
// computes the key, recursively resolves declared children in order, and
// returns the finished immutable node. Any failure aborts the whole
// resolution; no partial tree is returned.
func (r *Resolver) Resolve(ctx context.Context, d Descriptor) (*tree.Node, error) {
	if d.IsZero() {
		return nil, ErrEmptyDescriptor
	}
	st := &resolution{onPath: make(map[Descriptor]bool)}
	return r.resolveNode(ctx, d, st)
}

// resolution tracks the active descriptor path of one Resolve call for
// cycle detection. Descriptors may legally repeat across sibling subtrees;
// only a repeat on the active path is a cycle.
type resolution struct {
	path   []Descriptor
	onPath map[Descriptor]bool
}

func (r *Resolver) resolveNode(ctx context.Context, d Descriptor, st *resolution) (node *tree.Node, err error) {
	if st.onPath[d] {
		cycle := make([]Descriptor, len(st.path)+1)
		copy(cycle, st.path)
		cycle[len(st.path)] = d
		return nil, &CycleError{Path: cycle}
	}
	st.path = append(st.path, d)
	st.onPath[d] = true
	defer func() {
		st.path = st.path[:len(st.path)-1]
		delete(st.onPath, d)
	}()

	if r.hooks != nil {
		ctx = r.hooks.ResolveStart(ctx, d)
		defer func() {
			r.hooks.ResolveEnd(ctx, d, node, err)
		}()
	}

	value, err := r.lookupValue(ctx, d)
	if err != nil {
		return nil, err
	}

	valueType := reflect.TypeOf(value)
	meta, hasMeta := r.metadataFor(valueType)

	key, err := r.resolveKey(ctx, value, valueType, meta, hasMeta)
	if err != nil {
		return nil, err
	}

	children, err := r.resolveChildren(ctx, valueType, meta, hasMeta, st)
	if err != nil {
		return nil, err
	}

	return tree.NewNode(key, value, children...)
}

// lookupValue resolves the descriptor's value: by type when the descriptor
// is a type, by name otherwise.
func (r *Resolver) lookupValue(ctx context.Context, d Descriptor) (any, error) {
	if d.IsType() {
		return r.lookup.ByType(ctx, d.Type())
	}
	return r.lookup.ByName(ctx, d.Name())
}

func (r *Resolver) metadataFor(t reflect.Type) (Metadata, bool) {
	if r.meta == nil {
		return Metadata{}, false
	}
	return r.meta.MetadataFor(t)
}

// resolveKey computes the node key under the documented precedence. Keyer
// short-circuits everything: when the value can key itself, its result is
// final. Lookup failures for KeyType and KeyName are fatal, never silently
// defaulted.
func (r *Resolver) resolveKey(ctx context.Context, value any, valueType reflect.Type, meta Metadata, hasMeta bool) (any, error) {
	if keyer, ok := value.(Keyer); ok {
		return keyer.BuildKey(), nil
	}
	if !hasMeta {
		return nil, nil
	}
	if !isBlank(meta.Key) {
		return meta.Key, nil
	}
	if meta.KeyType != nil {
		key, err := r.lookup.ByType(ctx, meta.KeyType)
		if err != nil {
			return nil, fmt.Errorf("key for %s: %w", valueType, err)
		}
		return key, nil
	}
	if !isBlank(meta.KeyName) {
		key, err := r.lookup.ByName(ctx, meta.KeyName)
		if err != nil {
			return nil, fmt.Errorf("key for %s: %w", valueType, err)
		}
		return key, nil
	}
	return nil, nil
}

// resolveChildren resolves the declared child descriptors in order. The
// conflict check runs before any child lookup, so a bad spec never triggers
// registry traffic.
func (r *Resolver) resolveChildren(ctx context.Context, valueType reflect.Type, meta Metadata, hasMeta bool, st *resolution) ([]*tree.Node, error) {
	if !hasMeta || (len(meta.Children) == 0 && len(meta.ChildTypes) == 0) {
		return nil, nil
	}
	if len(meta.Children) > 0 && len(meta.ChildTypes) > 0 {
		return nil, &ConflictingChildSpecError{ValueType: valueType}
	}

	if len(meta.ChildTypes) > 0 {
		nodes := make([]*tree.Node, 0, len(meta.ChildTypes))
		for _, ct := range meta.ChildTypes {
			child, err := r.resolveNode(ctx, ByType(ct), st)
			if err != nil {
				return nil, fmt.Errorf("child %s of %s: %w", ct, valueType, err)
			}
			nodes = append(nodes, child)
		}
		return nodes, nil
	}

	nodes := make([]*tree.Node, 0, len(meta.Children))
	for _, name := range meta.Children {
		child, err := r.resolveNode(ctx, ByName(name), st)
		if err != nil {
			return nil, fmt.Errorf("child %q of %s: %w", name, valueType, err)
		}
		nodes = append(nodes, child)
	}
	return nodes, nil
}

// ConflictingChildSpecError reports metadata that declares children both by
// name and by type. Always a metadata authoring mistake, never resolved by
// preferring one list.
type ConflictingChildSpecError struct {
	ValueType reflect.Type
}

// Error implements the error interface.
func (e *ConflictingChildSpecError) Error() string {
	return fmt.Sprintf("metadata for %s declares both children and childTypes, declare one", e.ValueType)
}

// Unwrap returns ErrConflictingChildSpec so callers can match with errors.Is.
func (e *ConflictingChildSpecError) Unwrap() error {
	return ErrConflictingChildSpec
}

// CycleError reports a descriptor revisited on the active resolution path.
// Path holds the descriptors from the root to the repeat, in order.
type CycleError struct {
	Path []Descriptor
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, d := range e.Path {
		parts[i] = d.String()
	}
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(parts, " -> "))
}

// Unwrap returns ErrCycle so callers can match with errors.Is.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}
