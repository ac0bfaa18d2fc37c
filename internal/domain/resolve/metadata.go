package resolve

import "reflect"

// Metadata is the declarative record attached to a value type, describing how
// the node built for that value gets its key and its children. Every field is
// optional; the zero Metadata means no explicit key and no children.
//
// Key, KeyType, and KeyName compete under the precedence documented on
// Resolver. Children and ChildTypes are mutually exclusive; both lists keep
// their declared order.
type Metadata struct {
	// Key is a literal string key, used when non-blank.
	Key string

	// KeyType names a value type to look up as the key.
	KeyType reflect.Type

	// KeyName names a binding to look up as the key.
	KeyName string

	// Children lists child binding names in order.
	Children []string

	// ChildTypes lists child value types in order.
	ChildTypes []reflect.Type
}

// MetadataSource maps a value type to its Metadata record. Absence of
// metadata is legal and means a nil key and no children.
type MetadataSource interface {
	MetadataFor(t reflect.Type) (Metadata, bool)
}

// MetadataMap is a plain map-backed MetadataSource.
type MetadataMap map[reflect.Type]Metadata

// MetadataFor implements MetadataSource.
func (m MetadataMap) MetadataFor(t reflect.Type) (Metadata, bool) {
	meta, ok := m[t]
	return meta, ok
}
