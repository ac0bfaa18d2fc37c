package manifest

import (
	"context"
	"io/fs"
	"strings"

	"github.com/zjrosen/arbor/internal/domain/resolve"
	"github.com/zjrosen/arbor/internal/domain/tree"
	"github.com/zjrosen/arbor/internal/log"
	"github.com/zjrosen/arbor/internal/registry"
)

// KindPrefix marks a CLI descriptor string as a type descriptor.
const KindPrefix = "kind:"

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	wrap  []func(resolve.Lookup) resolve.Lookup
	hooks resolve.Hooks
}

// WithLookup layers a decorator over the registry lookup. Decorators
// apply in the order given, innermost first, so
// WithLookup(cache), WithLookup(trace) traces cache hits too.
func WithLookup(wrap func(resolve.Lookup) resolve.Lookup) Option {
	return func(o *serviceOptions) {
		o.wrap = append(o.wrap, wrap)
	}
}

// WithHooks attaches resolution observers to the service's resolver.
func WithHooks(h resolve.Hooks) Option {
	return func(o *serviceOptions) {
		o.hooks = h
	}
}

// Service is the CLI-facing facade over one loaded manifest set. It owns
// the registry built from the entries and a resolver wired with whatever
// caching and tracing the caller layered on. A Service is immutable;
// manifest changes are handled by building a new one.
type Service struct {
	set      *Set
	reg      *registry.Registry
	resolver *resolve.Resolver
}

// NewService loads manifests from fsys and builds the registry, metadata,
// and resolver.
func NewService(fsys fs.FS, opts ...Option) (*Service, error) {
	var o serviceOptions
	for _, opt := range opts {
		opt(&o)
	}

	set, err := Load(fsys)
	if err != nil {
		return nil, err
	}
	reg, meta, err := set.Build()
	if err != nil {
		return nil, err
	}

	lookup := resolve.Lookup(reg)
	for _, wrap := range o.wrap {
		lookup = wrap(lookup)
	}

	var resolverOpts []resolve.Option
	if o.hooks != nil {
		resolverOpts = append(resolverOpts, resolve.WithHooks(o.hooks))
	}
	resolver, err := resolve.New(lookup, meta, resolverOpts...)
	if err != nil {
		return nil, err
	}

	log.Debug(log.CatManifest, "manifest set loaded", "entries", set.Len())

	return &Service{set: set, reg: reg, resolver: resolver}, nil
}

// Resolve parses the descriptor string and builds its tree.
func (s *Service) Resolve(ctx context.Context, descriptor string) (*tree.Node, error) {
	d, err := ParseDescriptor(descriptor)
	if err != nil {
		return nil, err
	}
	log.Debug(log.CatResolve, "resolving", "descriptor", d.String())
	return s.resolver.Resolve(ctx, d)
}

// Set returns the loaded manifest set.
func (s *Service) Set() *Set {
	return s.set
}

// Entries returns the manifest entries in load order.
func (s *Service) Entries() []Entry {
	return s.set.Entries()
}

// Entry returns the named manifest entry.
func (s *Service) Entry(name string) (Entry, bool) {
	return s.set.Entry(name)
}

// Names returns the registered binding names, sorted.
func (s *Service) Names() []string {
	return s.reg.Names()
}

// ParseDescriptor turns a CLI descriptor string into a resolve.Descriptor.
// "kind:page" resolves by type through the catalog; anything else is a
// binding name.
func ParseDescriptor(s string) (resolve.Descriptor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return resolve.Descriptor{}, resolve.ErrEmptyDescriptor
	}
	if rest, ok := strings.CutPrefix(s, KindPrefix); ok {
		t, err := TypeOf(Kind(strings.TrimSpace(rest)))
		if err != nil {
			return resolve.Descriptor{}, err
		}
		return resolve.ByType(t), nil
	}
	return resolve.ByName(s), nil
}
