package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every given file and translates it into a single merged
	// model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// NamePattern derives a role's identifier path from a colour name.
type NamePattern interface {
	Expand(color string) (string, error)
}
