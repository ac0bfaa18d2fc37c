package resolve

import (
	"fmt"
	"reflect"
)

// Descriptor locates a value through the Lookup port: either a binding name
// or a value type, never both. The zero Descriptor is invalid.
type Descriptor struct {
	name string
	typ  reflect.Type
}

// ByName returns a Descriptor that resolves by binding name.
func ByName(name string) Descriptor {
	return Descriptor{name: name}
}

// ByType returns a Descriptor that resolves by value type.
func ByType(t reflect.Type) Descriptor {
	return Descriptor{typ: t}
}

// ByTypeOf returns a Descriptor for the dynamic type of v.
func ByTypeOf(v any) Descriptor {
	return Descriptor{typ: reflect.TypeOf(v)}
}

// Name returns the binding name, empty for type descriptors.
func (d Descriptor) Name() string {
	return d.name
}

// Type returns the value type, nil for name descriptors.
func (d Descriptor) Type() reflect.Type {
	return d.typ
}

// IsType reports whether the descriptor resolves by type.
func (d Descriptor) IsType() bool {
	return d.typ != nil
}

// IsZero reports whether the descriptor names neither a binding nor a type.
func (d Descriptor) IsZero() bool {
	return d.name == "" && d.typ == nil
}

// String renders the descriptor for diagnostics: `name "home"` or
// `type manifest.Page`.
func (d Descriptor) String() string {
	if d.typ != nil {
		return fmt.Sprintf("type %s", d.typ)
	}
	return fmt.Sprintf("name %q", d.name)
}
