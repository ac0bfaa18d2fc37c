// Package manifest implements the application layer for YAML-defined registries.
//
// This package serves as the facade that bridges the resolution domain to
// infrastructure concerns:
//   - Loads entries and kind metadata from YAML manifest files
//   - Builds the registry and the type-keyed metadata map the resolver consumes
//   - Provides the high-level Resolve operation the CLI calls
//
// # Architecture
//
// The application layer depends on:
//   - Domain layer (internal/domain/resolve, internal/domain/tree): pure resolution logic
//   - internal/registry: the Lookup port implementation entries are bound into
//   - Infrastructure: fs.FS for file access, YAML parsing for manifests
//
// This separation keeps the domain free of I/O; the resolver never learns
// that its registry came from YAML.
//
// # Manifest format
//
// A manifest file has two sections. Entries bind named values; kinds attach
// resolution metadata:
//
//	entries:
//	  - name: home          # registry name (required, unique per load)
//	    kind: page          # catalog kind, defaults to page
//	    title: Home
//	    body: |             # markdown, page and fragment only
//	      ...
//	kinds:
//	  group:
//	    key: site           # literal key
//	    keyKind: ""         # key resolved by type
//	    keyName: ""         # key resolved by name
//	    children: [a, b]    # name children, ordered
//	    childKinds: []      # type children, ordered
//
// Metadata binds to kinds rather than entries because the domain looks
// metadata up by value-type identity: every entry of one kind shares the
// kind's Go type, and therefore its metadata. Files in one directory merge;
// duplicate entry names and doubly-declared kinds fail the load.
//
// # Catalog
//
// The catalog maps kind strings to distinct Go value types (group, page,
// panel, action, fragment, widget, badge) so kind-based wiring exercises
// real type identity. Page, Action, and Badge key themselves by name;
// the rest take keys from their kind spec, or none.
//
// # Descriptor strings
//
// The CLI addresses roots as either a binding name ("home") or a kind
// ("kind:page"), the latter resolving by type through the catalog.
package manifest
