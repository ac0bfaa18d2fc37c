// Package tree implements the domain layer for immutable key/value trees.
//
// This package follows Domain-Driven Design (DDD) principles:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines the Node entity and the Path value object
//   - Implements domain logic (depth-first traversal, path walking)
//   - Has no knowledge of infrastructure concerns (file I/O, YAML parsing, databases)
//
// # Core Types
//
// Node is the immutable tree unit: a key, a value, and an ordered sequence of
// child nodes. Nodes are constructed once, bottom-up, and never change
// afterwards, which makes a finished tree safe to share across any number of
// concurrent readers without synchronization.
//
// Path is a parsed /-separated path string ("home/about/team"). Find walks a
// tree along a Path by matching each segment against child keys in their
// string form.
//
// Trees built by this package are read-only by design: there is no mutation,
// no rebalancing, and no index maintenance. Callers needing a different shape
// construct a new tree.
package tree
