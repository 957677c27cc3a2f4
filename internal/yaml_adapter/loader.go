// Package yaml_adapter loads palette configuration written in YAML.
//
//	namespace: dyenamics
//	colors: [maroon, mint]
//	roles:
//	  - name: wool
//	    id: "{color}_wool"
//	  - name: dye
//	    id: "{color}_dye"
//	    block: false
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/dyegen/internal/config"
	"github.com/specialistvlad/dyegen/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions this loader reads.
var Extensions = []string{".yaml", ".yml"}

type fileRoot struct {
	Namespace string      `yaml:"namespace"`
	Colors    []string    `yaml:"colors"`
	Roles     []roleEntry `yaml:"roles"`
}

type roleEntry struct {
	Name  string `yaml:"name"`
	ID    string `yaml:"id"`
	Block *bool  `yaml:"block"`
	Item  *bool  `yaml:"item"`
}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every file and merges them, in order, into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := &config.Model{}
	for _, file := range paths {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		fileModel, err := decode(data, file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		if err := model.Merge(fileModel); err != nil {
			return nil, fmt.Errorf("failed to merge YAML file %s: %w", file, err)
		}
		logger.Debug("Loaded YAML file.", "file", file, "colors", len(fileModel.Colors), "roles", len(fileModel.Roles))
	}

	logger.Debug("YAML loading complete.", "namespace", model.Namespace, "colors", len(model.Colors), "roles", len(model.Roles))
	return model, nil
}

func decode(data []byte, source string) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root fileRoot
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	m := &config.Model{Namespace: root.Namespace, Colors: root.Colors}
	for i, r := range root.Roles {
		if r.Name == "" {
			return nil, fmt.Errorf("roles[%d]: name is required", i)
		}
		pattern, err := config.NewTemplatePattern(r.ID)
		if err != nil {
			return nil, fmt.Errorf("role %q: %w", r.Name, err)
		}
		m.Roles = append(m.Roles, &config.RoleDefinition{
			Name:    r.Name,
			Pattern: pattern,
			Block:   boolOr(r.Block, true),
			Item:    boolOr(r.Item, true),
			Source:  source,
		})
	}
	return m, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
