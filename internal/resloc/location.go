package resloc

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultNamespace is assumed when a raw identifier carries no namespace.
const DefaultNamespace = "minecraft"

var (
	namespaceRegex = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	pathRegex      = regexp.MustCompile(`^[a-z0-9_./-]+$`)
)

// Location is a namespaced resource identifier.
type Location struct {
	Namespace string
	Path      string
}

// New creates a Location and panics if either part is invalid. It is meant
// for identifiers that are compiled into the binary.
func New(namespace, path string) Location {
	loc, err := Make(namespace, path)
	if err != nil {
		panic(err)
	}
	return loc
}

// Vanilla creates a Location in the default namespace.
func Vanilla(path string) Location {
	return New(DefaultNamespace, path)
}

// Make creates a Location after validating both parts.
func Make(namespace, path string) (Location, error) {
	if !namespaceRegex.MatchString(namespace) {
		return Location{}, fmt.Errorf("invalid namespace: %q", namespace)
	}
	if !pathRegex.MatchString(path) {
		return Location{}, fmt.Errorf("invalid path: %q", path)
	}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return Location{}, fmt.Errorf("invalid path segment in %q", path)
		}
	}
	return Location{Namespace: namespace, Path: path}, nil
}

// Parse reads the canonical `namespace:path` form.
func Parse(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("identifier cannot be empty")
	}
	namespace, path, found := strings.Cut(raw, ":")
	if !found {
		return Make(DefaultNamespace, raw)
	}
	return Make(namespace, path)
}

// String returns the canonical `namespace:path` form.
func (l Location) String() string {
	return l.Namespace + ":" + l.Path
}

// IsZero reports whether the Location was never set.
func (l Location) IsZero() bool {
	return l.Namespace == "" && l.Path == ""
}

// WithPrefix returns a copy with prefix prepended to the path.
func (l Location) WithPrefix(prefix string) Location {
	return Location{Namespace: l.Namespace, Path: prefix + l.Path}
}

// WithSuffix returns a copy with suffix appended to the path.
func (l Location) WithSuffix(suffix string) Location {
	return Location{Namespace: l.Namespace, Path: l.Path + suffix}
}

// Compare orders locations by namespace, then path.
func Compare(a, b Location) int {
	if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return strings.Compare(a.Path, b.Path)
}

// MarshalText implements encoding.TextMarshaler so locations serialize as
// plain strings inside documents.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
