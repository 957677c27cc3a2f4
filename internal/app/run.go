package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/dyegen/internal/ctxlog"
	"github.com/specialistvlad/dyegen/internal/emitter"
	"github.com/specialistvlad/dyegen/internal/engine"
)

// Run generates every document and writes it to the output filesystem.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	pal, err := a.model.Palette()
	if err != nil {
		return fmt.Errorf("failed to build palette: %w", err)
	}
	a.logger.Info("Palette ready.", "namespace", pal.Namespace(), "subjects", len(pal.Subjects()))

	res, err := engine.New().Generate(ctx, pal.Subjects(), pal)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	a.logger.Info("Documents generated.", "blockstates", res.BlockStates.Len(), "models", res.Models.Len())

	em := emitter.New(a.fs, emitter.Options{
		TargetRoot: a.config.TargetRoot,
		Workers:    a.config.WorkerCount,
		Force:      a.config.Force,
	})
	report, err := em.Emit(ctx, res.Registries()...)
	if err != nil {
		return fmt.Errorf("emission failed: %w", err)
	}

	a.logger.Info("Generation finished.", "written", report.Written, "unchanged", report.Unchanged, "output", a.config.OutputDir)
	return nil
}
