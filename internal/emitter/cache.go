package emitter

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/opencontainers/go-digest"
)

// Cache decides whether a write can be skipped.
type Cache interface {
	// Unchanged reports whether path already holds content with digest d.
	Unchanged(path string, d digest.Digest) (bool, error)
}

// fsCache compares against the file currently on the output filesystem.
type fsCache struct {
	fs billy.Filesystem
}

// NewFSCache returns a Cache backed by the files already in fs.
func NewFSCache(fs billy.Filesystem) Cache {
	return &fsCache{fs: fs}
}

func (c *fsCache) Unchanged(path string, d digest.Digest) (bool, error) {
	existing, err := util.ReadFile(c.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return d.Algorithm().FromBytes(existing) == d, nil
}

// NoCache never skips a write.
type NoCache struct{}

func (NoCache) Unchanged(string, digest.Digest) (bool, error) {
	return false, nil
}
