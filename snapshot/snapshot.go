package snapshot

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poset/registry"
)

// Version is the snapshot format version written by Encode.
const Version = 1

var (
	// ErrVersion indicates an unsupported snapshot version.
	ErrVersion = errors.New("snapshot: unsupported version")

	// ErrDuplicateName indicates two elements share a name.
	ErrDuplicateName = errors.New("snapshot: duplicate element name")

	// ErrUnknownElement indicates "above" refers to a name not listed.
	ErrUnknownElement = errors.New("snapshot: unknown element")
)

// Snapshot is the serializable form of one poset.
type Snapshot struct {
	Version  int       `yaml:"version"`
	Poset    uint64    `yaml:"poset"`
	Elements []Element `yaml:"elements"`
}

// Element is one element and the names strictly above it.
type Element struct {
	Name  string   `yaml:"name"`
	ID    uint64   `yaml:"id,omitempty"`
	Above []string `yaml:"above,omitempty,flow"`
}

// FromView captures v. Elements and Above lists are sorted by name.
// A nil v yields an empty snapshot.
func FromView(v *registry.View) *Snapshot {
	s := &Snapshot{
		Version:  Version,
		Poset:    uint64(v.ID()),
		Elements: make([]Element, 0, v.Size()),
	}
	for _, name := range v.Elements() {
		e := Element{Name: name, ID: uint64(v.ElementID(name))}
		for _, up := range v.Successors(name) {
			if up != name {
				e.Above = append(e.Above, up)
			}
		}
		s.Elements = append(s.Elements, e)
	}

	return s
}

// Validate checks the version, name uniqueness and that every Above entry
// names a listed element.
func (s *Snapshot) Validate() error {
	if s.Version != Version {
		return fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	seen := make(map[string]struct{}, len(s.Elements))
	for _, e := range s.Elements {
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	for _, e := range s.Elements {
		for _, up := range e.Above {
			if _, ok := seen[up]; !ok {
				return fmt.Errorf("%w: %q above %q", ErrUnknownElement, up, e.Name)
			}
		}
	}

	return nil
}

// Encode writes s as YAML.
func Encode(w io.Writer, s *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	return enc.Close()
}

// Decode reads one YAML snapshot and validates it. Unknown fields are rejected.
func Decode(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Snapshot
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Restore creates a new poset in reg holding the snapshot's elements and the
// closure of its pairs, and returns the new id. On failure the partially
// built poset is deleted again.
func Restore(reg *registry.Registry, s *Snapshot) (registry.PosetID, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	id := reg.New()
	fail := func(err error) (registry.PosetID, error) {
		_ = reg.Delete(id)
		return 0, err
	}
	for _, e := range s.Elements {
		if err := reg.Insert(id, e.Name); err != nil {
			return fail(err)
		}
	}
	for _, e := range s.Elements {
		for _, up := range e.Above {
			err := reg.Add(id, e.Name, up)
			// Pairs already implied by earlier ones are expected.
			if err != nil && !errors.Is(err, registry.ErrRelationExists) {
				return fail(err)
			}
		}
	}

	return id, nil
}
