package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Path errors
var (
	ErrEmptyPathSegment = errors.New("path segments must not be empty")
	ErrPathNotFound     = errors.New("path not found")
)

// Path holds the parsed segments of a /-separated tree path.
// The zero Path (and a parsed "" or "/") addresses the root itself.
type Path struct {
	segments []string
}

// ParsePath parses a /-separated path string into a Path.
// Format: {segment}/{segment}/... with an optional leading slash.
// Example: home/about/team or /home/about/team
//
// "" and "/" address the root. Empty segments ("a//b", a trailing slash)
// are invalid.
func ParsePath(s string) (Path, error) {
	if s == "" || s == "/" {
		return Path{}, nil
	}
	s = strings.TrimPrefix(s, "/")

	segments := strings.Split(s, "/")
	for _, seg := range segments {
		if seg == "" {
			return Path{}, fmt.Errorf("%w: %q", ErrEmptyPathSegment, s)
		}
	}
	return Path{segments: segments}, nil
}

// Segments returns a copy of the path's segments in order.
func (p Path) Segments() []string {
	segs := make([]string, len(p.segments))
	copy(segs, p.segments)
	return segs
}

// Depth returns the number of segments. The root path has depth 0.
func (p Path) Depth() int {
	return len(p.segments)
}

// IsRoot reports whether the path addresses the root node.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// String renders the path with a leading slash, "/" for the root.
func (p Path) String() string {
	if len(p.segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.segments, "/")
}

// PathError reports the segment at which a tree walk failed.
type PathError struct {
	Path    string
	Segment string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: no child with key %q", e.Path, e.Segment)
}

// Unwrap returns ErrPathNotFound so callers can match with errors.Is.
func (e *PathError) Unwrap() error {
	return ErrPathNotFound
}

// Find walks the tree from root along the given path string, matching each
// segment against child keys in their string form. It returns the node at
// the end of the path, the root itself for "" or "/", or a PathError naming
// the first segment with no matching child.
func Find(root *Node, path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return FindPath(root, p)
}

// FindPath walks the tree from root along an already parsed Path.
func FindPath(root *Node, p Path) (*Node, error) {
	node := root
	for _, seg := range p.segments {
		next, ok := node.FindChild(seg)
		if !ok {
			return nil, &PathError{Path: p.String(), Segment: seg}
		}
		node = next
	}
	return node, nil
}
