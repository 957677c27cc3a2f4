package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/dyegen/internal/config"
	"github.com/specialistvlad/dyegen/internal/ctxlog"
	"github.com/specialistvlad/dyegen/internal/fsutil"
)

// loadModel resolves the configured palette paths and merges every file, in
// sorted path order, into one model. Without paths the built-in palette is
// used.
func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var model *config.Model
	if len(a.config.ConfigPaths) == 0 {
		logger.Info("No palette configuration given, using the built-in palette.")
		model = config.Default()
	} else {
		var exts []string
		for ext := range a.loaders {
			exts = append(exts, ext)
		}
		slices.Sort(exts)
		files, err := fsutil.ResolveFiles(a.config.ConfigPaths, exts...)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no palette files found in %v", a.config.ConfigPaths)
		}
		logger.Info("Found palette files to process.", "count", len(files))

		model = &config.Model{}
		for _, file := range files {
			loader, ok := a.loaders[filepath.Ext(file)]
			if !ok {
				return nil, fmt.Errorf("no loader for %s, supported extensions are %v", file, exts)
			}
			fileModel, err := loader.Load(ctx, file)
			if err != nil {
				return nil, err
			}
			if err := model.Merge(fileModel); err != nil {
				return nil, fmt.Errorf("failed to merge %s: %w", file, err)
			}
			logger.Debug("Resolved palette file.", "path", file)
		}
	}

	if a.config.Namespace != "" {
		if model.Namespace != "" && model.Namespace != a.config.Namespace {
			logger.Warn("Namespace overridden from the command line.", "configured", model.Namespace, "namespace", a.config.Namespace)
		}
		model.Namespace = a.config.Namespace
	}
	return model, nil
}
