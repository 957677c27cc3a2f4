package engine

import (
	"context"
	"fmt"

	"github.com/specialistvlad/dyegen/internal/ctxlog"
	"github.com/specialistvlad/dyegen/internal/palette"
	"github.com/specialistvlad/dyegen/internal/recipe"
	"github.com/specialistvlad/dyegen/internal/registry"
)

// Result holds the populated registries.
type Result struct {
	BlockStates *registry.Registry
	Models      *registry.Registry
}

// Registries returns both registries in emission order.
func (r *Result) Registries() []*registry.Registry {
	return []*registry.Registry{r.BlockStates, r.Models}
}

// Len returns the total number of documents.
func (r *Result) Len() int {
	return r.BlockStates.Len() + r.Models.Len()
}

// Engine applies recipe stages to subjects.
type Engine struct {
	stages []recipe.Stage
}

// New creates an engine over the given stages, or over the full recipe set
// when none are given.
func New(stages ...recipe.Stage) *Engine {
	if len(stages) == 0 {
		stages = recipe.Stages()
	}
	return &Engine{stages: stages}
}

// Generate runs every stage over every subject.
func (e *Engine) Generate(ctx context.Context, subjects []palette.Subject, lookup palette.Lookup) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generation started.", "subjects", len(subjects), "stages", len(e.stages))

	res := &Result{
		BlockStates: registry.New(registry.BlockStates),
		Models:      registry.New(registry.Models),
	}

	for _, stage := range e.stages {
		stageCtx := ctxlog.With(ctx, "stage", stage.Name)
		for _, subject := range subjects {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := e.applyAll(stageCtx, res, stage, subject, lookup); err != nil {
				return nil, err
			}
		}
		logger.Info("Stage complete.", "stage", stage.Name, "blockstates", res.BlockStates.Len(), "models", res.Models.Len())
	}

	logger.Debug("Generation finished.", "documents", res.Len())
	return res, nil
}

func (e *Engine) applyAll(ctx context.Context, res *Result, stage recipe.Stage, subject palette.Subject, lookup palette.Lookup) error {
	logger := ctxlog.FromContext(ctx).With("subject", subject.Name)

	for _, r := range stage.Recipes {
		out, err := r.Apply(subject, lookup)
		if err != nil {
			return fmt.Errorf("recipe %s for subject %s: %w", r.Name, subject.Name, err)
		}
		if err := insert(ctx, res, out); err != nil {
			return fmt.Errorf("recipe %s for subject %s: %w", r.Name, subject.Name, err)
		}
		logger.Debug("Recipe applied.", "recipe", r.Name, "documents", out.Len())
	}
	return nil
}

// insert moves a recipe's output into the registries. Block states and
// models are fail-fast; item defaults keep whatever was registered first.
func insert(ctx context.Context, res *Result, out *recipe.Output) error {
	for _, entry := range out.BlockStates {
		if err := res.BlockStates.Insert(entry.Key, entry.Produce); err != nil {
			return err
		}
	}
	for _, entry := range out.Models {
		if err := res.Models.Insert(entry.Key, entry.Produce); err != nil {
			return err
		}
	}
	for _, entry := range out.ItemDefaults {
		if !res.Models.InsertIfAbsent(entry.Key, entry.Produce) {
			ctxlog.FromContext(ctx).Debug("Item model already defined, keeping the first one.", "key", entry.Key.String())
		}
	}
	return nil
}
