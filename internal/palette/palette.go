// Package palette holds the subjects the generator iterates over and the
// role table that resolves `(subject, role)` to a concrete block or item.
//
// A Palette is populated once, from configuration or from Default, and is
// read-only afterwards.
package palette

import (
	"fmt"
	"regexp"

	"github.com/specialistvlad/dyegen/internal/resloc"
)

var subjectNameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

// Subject is one colour variant. Name is the serialized form every derived
// identifier starts from.
type Subject struct {
	Name string
}

func (s Subject) String() string {
	return s.Name
}

// Handle is a registered block and/or item.
type Handle struct {
	ID    resloc.Location
	Block bool
	Item  bool
}

// Lookup resolves a subject's role to its handle.
type Lookup interface {
	Lookup(subject Subject, role string) (Handle, error)
}

// MissingRoleError reports a role that was never bound for a subject.
type MissingRoleError struct {
	Subject string
	Role    string
}

func (e *MissingRoleError) Error() string {
	return fmt.Sprintf("subject %q has no %q role", e.Subject, e.Role)
}

// Palette is the ordered subject enumeration plus its role table.
type Palette struct {
	namespace string
	subjects  []Subject
	handles   map[string]map[string]Handle
}

// New creates an empty palette whose identifiers live in namespace.
func New(namespace string) (*Palette, error) {
	if _, err := resloc.Make(namespace, "probe"); err != nil {
		return nil, err
	}
	return &Palette{
		namespace: namespace,
		handles:   make(map[string]map[string]Handle),
	}, nil
}

// Namespace returns the namespace identifiers are created in.
func (p *Palette) Namespace() string {
	return p.namespace
}

// AddSubject appends a subject. Names must be unique.
func (p *Palette) AddSubject(name string) (Subject, error) {
	if !subjectNameRegex.MatchString(name) {
		return Subject{}, fmt.Errorf("invalid subject name: %q", name)
	}
	if _, exists := p.handles[name]; exists {
		return Subject{}, fmt.Errorf("subject %q declared twice", name)
	}
	s := Subject{Name: name}
	p.subjects = append(p.subjects, s)
	p.handles[name] = make(map[string]Handle)
	return s, nil
}

// Bind registers the handle for a subject's role. The handle path is
// resolved inside the palette namespace.
func (p *Palette) Bind(subject Subject, role, path string, block, item bool) error {
	roles, ok := p.handles[subject.Name]
	if !ok {
		return fmt.Errorf("unknown subject %q", subject.Name)
	}
	if _, exists := roles[role]; exists {
		return fmt.Errorf("role %q bound twice for subject %q", role, subject.Name)
	}
	if !block && !item {
		return fmt.Errorf("role %q for subject %q is neither a block nor an item", role, subject.Name)
	}
	id, err := resloc.Make(p.namespace, path)
	if err != nil {
		return fmt.Errorf("role %q for subject %q: %w", role, subject.Name, err)
	}
	roles[role] = Handle{ID: id, Block: block, Item: item}
	return nil
}

// Subjects returns the subjects in declaration order.
func (p *Palette) Subjects() []Subject {
	return append([]Subject(nil), p.subjects...)
}

// Lookup implements Lookup.
func (p *Palette) Lookup(subject Subject, role string) (Handle, error) {
	if h, ok := p.handles[subject.Name][role]; ok {
		return h, nil
	}
	return Handle{}, &MissingRoleError{Subject: subject.Name, Role: role}
}
