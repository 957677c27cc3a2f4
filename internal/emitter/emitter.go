package emitter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/opencontainers/go-digest"
	"github.com/specialistvlad/dyegen/internal/ctxlog"
	"github.com/specialistvlad/dyegen/internal/registry"
	"github.com/specialistvlad/dyegen/internal/resloc"
	"golang.org/x/sync/errgroup"
)

// WriteFailure records one file that could not be written. Failures do not
// stop sibling writes.
type WriteFailure struct {
	Path string
	Err  error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteFailure) Unwrap() error {
	return e.Err
}

// EncodeError reports a document that cannot be serialized. It aborts the
// whole emission.
type EncodeError struct {
	Key resloc.Location
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Key, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Options configures an Emitter.
type Options struct {
	TargetRoot string
	Workers    int
	// Force disables the digest comparison and rewrites every file.
	Force bool
}

// Report counts what an emission did.
type Report struct {
	Written   int
	Unchanged int
}

// Emitter writes registries to a billy filesystem.
type Emitter struct {
	fs      billy.Filesystem
	paths   PathProvider
	cache   Cache
	workers int
}

// New creates an emitter writing into fs.
func New(fs billy.Filesystem, opts Options) *Emitter {
	if opts.TargetRoot == "" {
		opts.TargetRoot = DefaultTargetRoot
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	var cache Cache = NoCache{}
	if !opts.Force {
		cache = NewFSCache(fs)
	}
	return &Emitter{
		fs:      fs,
		paths:   PathProvider{TargetRoot: opts.TargetRoot},
		cache:   cache,
		workers: opts.Workers,
	}
}

type job struct {
	kind registry.Kind
	key  resloc.Location
	doc  any
}

type run struct {
	written   atomic.Int64
	unchanged atomic.Int64

	mu       sync.Mutex
	failures []error
}

func (r *run) fail(err *WriteFailure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, err)
}

// Emit writes every document of every registry. It returns after all
// workers have drained. Write failures are joined into the returned error;
// an encoding failure cancels the remaining work. Files written before a
// failure stay on disk.
func (e *Emitter) Emit(ctx context.Context, registries ...*registry.Registry) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Emission started.", "workers", e.workers, "target_root", e.paths.TargetRoot)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job)
	r := &run{}

	g.Go(func() error {
		defer close(jobs)
		for _, reg := range registries {
			err := reg.ForEach(func(key resloc.Location, doc any) error {
				select {
				case jobs <- job{kind: reg.Kind(), key: key, doc: doc}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	for i := 1; i <= e.workers; i++ {
		workerID := i
		g.Go(func() error {
			return e.worker(gctx, jobs, r, workerID)
		})
	}

	err := g.Wait()
	report := &Report{Written: int(r.written.Load()), Unchanged: int(r.unchanged.Load())}
	slices.SortFunc(r.failures, func(a, b error) int {
		return strings.Compare(a.(*WriteFailure).Path, b.(*WriteFailure).Path)
	})
	if err != nil {
		return report, errors.Join(append([]error{err}, r.failures...)...)
	}
	if len(r.failures) > 0 {
		return report, errors.Join(r.failures...)
	}

	logger.Info("Emission finished.", "written", report.Written, "unchanged", report.Unchanged)
	return report, nil
}

// worker is the processing loop for a single concurrent writer.
func (e *Emitter) worker(ctx context.Context, jobs <-chan job, r *run, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for j := range jobs {
		path := e.paths.Path(j.kind, j.key)

		data, err := Encode(j.doc)
		if err != nil {
			logger.Error("Failed to encode document.", "key", j.key.String(), "error", err)
			return &EncodeError{Key: j.key, Err: err}
		}

		d := digest.FromBytes(data)
		same, err := e.cache.Unchanged(path, d)
		if err != nil {
			logger.Error("Failed to read existing document.", "path", path, "error", err)
			r.fail(&WriteFailure{Path: path, Err: err})
			continue
		}
		if same {
			logger.Debug("Document unchanged, skipping write.", "path", path, "digest", d.String())
			r.unchanged.Add(1)
			continue
		}

		if err := e.write(path, data); err != nil {
			logger.Error("Failed to write document.", "path", path, "error", err)
			r.fail(&WriteFailure{Path: path, Err: err})
			continue
		}
		logger.Debug("Wrote document.", "path", path, "digest", d.String())
		r.written.Add(1)
	}

	logger.Debug("Worker finished.")
	return nil
}

func (e *Emitter) write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := e.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", dir, err)
	}
	if err := util.WriteFile(e.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", path, err)
	}
	return nil
}
