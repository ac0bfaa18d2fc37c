package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load validation errors.
var (
	ErrBlankEntryName    = errors.New("manifest entry requires a name")
	ErrDuplicateEntry    = errors.New("duplicate manifest entry")
	ErrDuplicateKindSpec = errors.New("kind declared in more than one manifest")
	ErrBodyNotAllowed    = errors.New("kind does not take a body")
	ErrDanglingReference = errors.New("reference to undeclared entry")
)

// Entry is one named value in a manifest.
type Entry struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"kind"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// KindSpec is the resolution metadata a manifest attaches to a kind. It
// mirrors resolve.Metadata with kind strings standing in for Go types,
// because metadata binds to a value's type, not to an individual entry.
type KindSpec struct {
	Key        string   `yaml:"key"`
	KeyKind    Kind     `yaml:"keyKind"`
	KeyName    string   `yaml:"keyName"`
	Children   []string `yaml:"children"`
	ChildKinds []Kind   `yaml:"childKinds"`
}

// manifestFile is the YAML document shape of one manifest file.
type manifestFile struct {
	Entries []Entry           `yaml:"entries"`
	Kinds   map[Kind]KindSpec `yaml:"kinds"`
}

// Load reads every *.yaml/*.yml under fsys into one Set. Files merge:
// entries concatenate in walk order, kind specs union. Validation is
// strict; an authoring mistake anywhere fails the whole load.
func Load(fsys fs.FS) (*Set, error) {
	set := &Set{
		byName: make(map[string]int),
		kinds:  make(map[Kind]KindSpec),
	}
	kindSource := make(map[Kind]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		file, err := decodeFile(fsys, path)
		if err != nil {
			return err
		}

		for _, entry := range file.Entries {
			if err := set.addEntry(path, entry); err != nil {
				return err
			}
		}

		// Sorted so duplicate-kind errors are deterministic.
		for _, kind := range sortedKinds(file.Kinds) {
			spec := file.Kinds[kind]
			if !Known(kind) {
				return fmt.Errorf("%s: %w: %q", path, ErrUnknownKind, kind)
			}
			if first, ok := kindSource[kind]; ok {
				return fmt.Errorf("%s: %w: %q first declared in %s", path, ErrDuplicateKindSpec, kind, first)
			}
			if err := validateKindSpec(path, kind, spec); err != nil {
				return err
			}
			kindSource[kind] = path
			set.kinds[kind] = spec
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := set.checkReferences(); err != nil {
		return nil, err
	}
	return set, nil
}

// decodeFile parses one manifest file with strict field checking, so a
// typo like "childs" fails instead of silently dropping wiring.
func decodeFile(fsys fs.FS, path string) (manifestFile, error) {
	var file manifestFile

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return file, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty manifest files are legal and contribute nothing.
			return manifestFile{}, nil
		}
		return file, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return file, nil
}

// addEntry normalizes, validates, and appends one entry.
func (s *Set) addEntry(path string, entry Entry) error {
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return fmt.Errorf("%s: %w", path, ErrBlankEntryName)
	}
	if entry.Kind == "" {
		entry.Kind = DefaultKind
	}
	if !Known(entry.Kind) {
		return fmt.Errorf("%s: entry %q: %w: %q", path, entry.Name, ErrUnknownKind, entry.Kind)
	}
	if entry.Body != "" && !hasBody(entry.Kind) {
		return fmt.Errorf("%s: entry %q: %w: %q", path, entry.Name, ErrBodyNotAllowed, entry.Kind)
	}
	if _, exists := s.byName[entry.Name]; exists {
		return fmt.Errorf("%s: %w: %q", path, ErrDuplicateEntry, entry.Name)
	}

	s.byName[entry.Name] = len(s.entries)
	s.entries = append(s.entries, entry)
	return nil
}

// validateKindSpec checks that every kind a spec mentions is in the catalog.
func validateKindSpec(path string, kind Kind, spec KindSpec) error {
	if spec.KeyKind != "" && !Known(spec.KeyKind) {
		return fmt.Errorf("%s: kind %q keyKind: %w: %q", path, kind, ErrUnknownKind, spec.KeyKind)
	}
	for _, child := range spec.ChildKinds {
		if !Known(child) {
			return fmt.Errorf("%s: kind %q childKinds: %w: %q", path, kind, ErrUnknownKind, child)
		}
	}
	return nil
}

// checkReferences verifies every name a kind spec points at was declared.
// Kind-based references are left to the resolver, which owns the
// exactly-one-match rule for type lookups.
func (s *Set) checkReferences() error {
	for _, kind := range sortedKinds(s.kinds) {
		spec := s.kinds[kind]
		if spec.KeyName != "" {
			if _, ok := s.byName[spec.KeyName]; !ok {
				return fmt.Errorf("kind %q keyName: %w: %q", kind, ErrDanglingReference, spec.KeyName)
			}
		}
		for _, child := range spec.Children {
			if _, ok := s.byName[child]; !ok {
				return fmt.Errorf("kind %q children: %w: %q", kind, ErrDanglingReference, child)
			}
		}
	}
	return nil
}

func sortedKinds(specs map[Kind]KindSpec) []Kind {
	kinds := make([]Kind, 0, len(specs))
	for kind := range specs {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
