package presentation

import (
	"fmt"
	"reflect"
	"time"

	"github.com/zjrosen/arbor/internal/application/manifest"
	"github.com/zjrosen/arbor/internal/domain/resolve"
	"github.com/zjrosen/arbor/internal/domain/tree"
	"github.com/zjrosen/arbor/internal/infrastructure/sqlite"
)

// NodeDTO represents a resolved tree node for presentation.
// Key is a pointer so key-less nodes serialize as null rather than "".
// Body carries the markdown body of kinds that have one.
type NodeDTO struct {
	Key      *string   `json:"key"`
	Kind     string    `json:"kind,omitempty"`
	Value    string    `json:"value"`
	Body     string    `json:"body,omitempty"`
	Children []NodeDTO `json:"children,omitempty"`
}

// EntryDTO represents a manifest entry for presentation. Key is the entry's
// statically known key; children lists the names or kind references its kind
// declares.
type EntryDTO struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Title    string   `json:"title,omitempty"`
	Key      string   `json:"key,omitempty"`
	Children []string `json:"children,omitempty"`
}

// RunDTO represents a recorded resolution for presentation.
type RunDTO struct {
	ID         string `json:"id"`
	Descriptor string `json:"descriptor"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	TraceID    string `json:"trace_id,omitempty"`
	NodeCount  int    `json:"node_count"`
	DurationMS int64  `json:"duration_ms"`
	Snapshot   string `json:"snapshot,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// FromNode converts a resolved tree node to a DTO with string-form keys and
// value summaries.
func FromNode(node *tree.Node) NodeDTO {
	dto := NodeDTO{
		Value: ValueSummary(node.Value()),
		Body:  valueBody(node.Value()),
	}

	if key, ok := tree.KeyString(node.Key()); ok {
		dto.Key = &key
	}
	if kind, ok := manifest.KindOf(reflect.TypeOf(node.Value())); ok {
		dto.Kind = string(kind)
	}
	for _, child := range node.Children() {
		dto.Children = append(dto.Children, FromNode(child))
	}
	return dto
}

// valueBody extracts the markdown body from the kinds that carry one.
func valueBody(value any) string {
	switch v := value.(type) {
	case manifest.Page:
		return v.Body
	case manifest.Fragment:
		return v.Body
	default:
		return ""
	}
}

// keyerType is the interface catalog values implement to key themselves.
var keyerType = reflect.TypeOf((*resolve.Keyer)(nil)).Elem()

// FromManifestEntry converts a manifest entry and its kind spec to a DTO.
func FromManifestEntry(entry manifest.Entry, spec manifest.KindSpec) EntryDTO {
	dto := EntryDTO{
		Name:  entry.Name,
		Kind:  string(entry.Kind),
		Title: entry.Title,
		Key:   staticKey(entry, spec),
	}

	dto.Children = append(dto.Children, spec.Children...)
	for _, kind := range spec.ChildKinds {
		dto.Children = append(dto.Children, manifest.KindPrefix+string(kind))
	}
	return dto
}

// FromManifestSet converts every entry of a manifest set to DTOs, in entry
// order.
func FromManifestSet(set *manifest.Set) []EntryDTO {
	entries := set.Entries()
	dtos := make([]EntryDTO, len(entries))
	for i, entry := range entries {
		spec, _ := set.KindSpec(entry.Kind)
		dtos[i] = FromManifestEntry(entry, spec)
	}
	return dtos
}

// FromRun converts a stored run to a DTO.
func FromRun(run *sqlite.Run) RunDTO {
	dto := RunDTO{
		ID:         run.ID,
		Descriptor: run.Descriptor,
		Status:     run.Status,
		NodeCount:  run.NodeCount,
		DurationMS: run.DurationMS,
		Snapshot:   run.Snapshot,
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
	}
	if run.Error != nil {
		dto.Error = *run.Error
	}
	if run.TraceID != nil {
		dto.TraceID = *run.TraceID
	}
	return dto
}

// FromRuns converts a slice of stored runs to DTOs.
func FromRuns(runs []*sqlite.Run) []RunDTO {
	dtos := make([]RunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = FromRun(run)
	}
	return dtos
}

// ValueSummary renders a short human-readable description of a resolved
// value. Catalog values show their title, falling back to the entry name;
// anything else falls back to %v.
func ValueSummary(value any) string {
	switch v := value.(type) {
	case manifest.Group:
		return summarize(v.Name, v.Title)
	case manifest.Page:
		return summarize(v.Name, v.Title)
	case manifest.Panel:
		return summarize(v.Name, v.Title)
	case manifest.Action:
		return summarize(v.Name, v.Title)
	case manifest.Fragment:
		return summarize(v.Name, v.Title)
	case manifest.Widget:
		return summarize(v.Name, v.Title)
	case manifest.Badge:
		return summarize(v.Name, v.Title)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func summarize(name, title string) string {
	if title != "" {
		return title
	}
	return name
}

// staticKey computes the key an entry will carry without resolving it.
// Self-keying kinds use the entry name; otherwise only a literal kind-spec
// key is known up front.
func staticKey(entry manifest.Entry, spec manifest.KindSpec) string {
	typ, err := manifest.TypeOf(entry.Kind)
	if err == nil && typ.Implements(keyerType) {
		return entry.Name
	}
	return spec.Key
}
