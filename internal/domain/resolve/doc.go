// Package resolve implements the domain layer for declarative tree resolution.
//
// This package follows Domain-Driven Design (DDD) principles:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines the Descriptor and Metadata value objects and the Resolver entity
//   - Implements domain logic (key precedence, child recursion, cycle detection)
//   - Has no knowledge of infrastructure concerns (registries, file I/O, databases)
//
// # Resolution Model
//
// A Resolver assembles an immutable tree.Node tree from metadata alone: given
// a root Descriptor (a binding name or a value type), it asks the Lookup port
// for the value, reads the Metadata record attached to the value's type,
// computes the node key, recursively resolves the declared children, and
// builds the node bottom-up. The caller writes no traversal code.
//
// Key resolution precedence (first applicable wins):
//  1. The value implements Keyer: its BuildKey result is the key, even when nil.
//  2. Metadata declares a non-blank literal Key: the literal string is the key.
//  3. Metadata declares a KeyType: the key is looked up by type; failures are fatal.
//  4. Metadata declares a non-blank KeyName: the key is looked up by name; failures are fatal.
//  5. Otherwise the key is nil. A nil key is an intentional default, not an error.
//
// Children are declared either by name (Metadata.Children) or by type
// (Metadata.ChildTypes), never both; declaring both fails with
// ConflictingChildSpecError before any child lookup runs. Child order in the
// finished tree is exactly the declared order.
//
// # Lookup Port
//
// The Lookup interface is the only external dependency: it resolves a name or
// a type to exactly one value. Zero matches fail with NotFoundError, several
// matches with AmbiguousBindingError. Implementations may cache or scope
// values internally; the resolver assumes only that each individual call is
// consistent.
//
// Every failure aborts the whole resolution: there are no partial trees and
// no retries. Revisiting a descriptor already on the active resolution path
// fails with CycleError instead of recursing forever.
package resolve
