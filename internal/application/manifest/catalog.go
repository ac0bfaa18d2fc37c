package manifest

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind names the catalog value type a manifest entry is built as.
type Kind string

// Catalog kinds. Each maps to a distinct Go type so kind-based wiring
// (keyKind, childKinds) runs through real type identity.
const (
	KindGroup    Kind = "group"
	KindPage     Kind = "page"
	KindPanel    Kind = "panel"
	KindAction   Kind = "action"
	KindFragment Kind = "fragment"
	KindWidget   Kind = "widget"
	KindBadge    Kind = "badge"
)

// DefaultKind applies when an entry declares no kind.
const DefaultKind = KindPage

// ErrUnknownKind reports a kind string outside the catalog.
var ErrUnknownKind = errors.New("unknown manifest kind")

// Group is a structural container for other entries.
type Group struct {
	Name  string
	Title string
}

// Page is a content entry with a markdown body.
type Page struct {
	Name  string
	Title string
	Body  string
}

// BuildKey makes Page self-keying, so pages are path-addressable by name.
func (p Page) BuildKey() any {
	return p.Name
}

// Panel is a layout region inside a page.
type Panel struct {
	Name  string
	Title string
}

// Action is an invokable entry, a button or command.
type Action struct {
	Name  string
	Title string
}

// BuildKey makes Action self-keying, same as Page.
func (a Action) BuildKey() any {
	return a.Name
}

// Fragment is a reusable content snippet with a markdown body.
type Fragment struct {
	Name  string
	Title string
	Body  string
}

// Widget is a self-contained display element.
type Widget struct {
	Name  string
	Title string
}

// Badge is a marker entry that keys itself: whatever kind metadata says,
// a badge's node key is always its name.
type Badge struct {
	Name  string
	Title string
}

// BuildKey makes Badge self-keying.
func (b Badge) BuildKey() any {
	return b.Name
}

var kindTypes = map[Kind]reflect.Type{
	KindGroup:    reflect.TypeOf(Group{}),
	KindPage:     reflect.TypeOf(Page{}),
	KindPanel:    reflect.TypeOf(Panel{}),
	KindAction:   reflect.TypeOf(Action{}),
	KindFragment: reflect.TypeOf(Fragment{}),
	KindWidget:   reflect.TypeOf(Widget{}),
	KindBadge:    reflect.TypeOf(Badge{}),
}

// TypeOf returns the Go type for a catalog kind.
func TypeOf(kind Kind) (reflect.Type, error) {
	t, ok := kindTypes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return t, nil
}

// KindOf reports the catalog kind of a value type.
func KindOf(t reflect.Type) (Kind, bool) {
	for kind, kt := range kindTypes {
		if kt == t {
			return kind, true
		}
	}
	return "", false
}

// Known reports whether kind is in the catalog.
func Known(kind Kind) bool {
	_, ok := kindTypes[kind]
	return ok
}

// hasBody reports whether the kind's type carries a markdown body.
func hasBody(kind Kind) bool {
	return kind == KindPage || kind == KindFragment
}

// newValue builds the catalog value for a validated entry.
func newValue(e Entry) (any, error) {
	switch e.Kind {
	case KindGroup:
		return Group{Name: e.Name, Title: e.Title}, nil
	case KindPage:
		return Page{Name: e.Name, Title: e.Title, Body: e.Body}, nil
	case KindPanel:
		return Panel{Name: e.Name, Title: e.Title}, nil
	case KindAction:
		return Action{Name: e.Name, Title: e.Title}, nil
	case KindFragment:
		return Fragment{Name: e.Name, Title: e.Title, Body: e.Body}, nil
	case KindWidget:
		return Widget{Name: e.Name, Title: e.Title}, nil
	case KindBadge:
		return Badge{Name: e.Name, Title: e.Title}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}
