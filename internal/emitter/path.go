package emitter

import (
	"path/filepath"

	"github.com/specialistvlad/dyegen/internal/registry"
	"github.com/specialistvlad/dyegen/internal/resloc"
)

// DefaultTargetRoot is the resource pack directory documents are written to.
const DefaultTargetRoot = "assets"

// PathProvider derives output paths from document keys.
type PathProvider struct {
	TargetRoot string
}

// Path returns the file a document is written to, relative to the output
// filesystem root.
func (p PathProvider) Path(kind registry.Kind, key resloc.Location) string {
	return filepath.Join(p.TargetRoot, key.Namespace, string(kind), filepath.FromSlash(key.Path)+".json")
}
