package godocai

import (
	"context"
	"os"
	"strings"
	"time"
)

// FileEvent describes the completion of one file in a batch run.
type FileEvent struct {
	Source   string
	Target   string
	Rel      string
	DocType  DocType
	Outcome  Outcome
	Reason   string // Set for skips: "empty source" or "unchanged"
	Err      error  // Set for read/write faults; the batch continues regardless
	Chunks   int
	Failed   int
	Cached   int
	Duration time.Duration
}

// Observer receives per-file completion events from a batch run.
type Observer interface {
	FileDone(ev FileEvent)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(FileEvent)

// FileDone implements Observer.
func (f ObserverFunc) FileDone(ev FileEvent) { f(ev) }

// BatchSummary totals the per-file outcomes of a run.
type BatchSummary struct {
	Files     int
	Succeeded int
	Failed    int
	Skipped   int
}

// Runner processes a documentation tree strictly sequentially: one file at a
// time, chunks within a file one at a time, in document order. Failures are
// contained at file granularity: every attempted file produces a target
// file (translated, fallback-wrapped or empty) and the walk continues.
type Runner struct {
	translator  *Translator
	observer    Observer
	incremental bool
}

// RunnerOption is a functional option for configuring the Runner.
type RunnerOption func(*Runner)

// WithObserver sets the observer notified after each file.
func WithObserver(o Observer) RunnerOption {
	return func(r *Runner) {
		r.observer = o
	}
}

// WithIncremental enables manifest-based skipping of files whose content is
// unchanged since the last completed run.
func WithIncremental(on bool) RunnerOption {
	return func(r *Runner) {
		r.incremental = on
	}
}

// NewRunner creates a Runner around a Translator.
func NewRunner(t *Translator, opts ...RunnerOption) *Runner {
	r := &Runner{translator: t}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run translates every document under root into the mirrored target subtree
// root/targetName. It returns the batch summary and an error only for a
// failed walk setup or context cancellation; per-file failures are counted
// in the summary and reported through the observer.
func (r *Runner) Run(ctx context.Context, root, targetName string) (*BatchSummary, error) {
	var manifest *Manifest
	if r.incremental {
		manifest = LoadManifest(manifestPath(root, targetName))
	}

	summary := &BatchSummary{}

	err := WalkTree(root, targetName, func(pair FilePair) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ev := r.processFile(ctx, pair, manifest)

		summary.Files++
		switch ev.Outcome {
		case OutcomeSuccess:
			summary.Succeeded++
		case OutcomeFailure:
			summary.Failed++
		case OutcomeSkipped:
			summary.Skipped++
		}

		if r.observer != nil {
			r.observer.FileDone(ev)
		}

		// Context cancellation is the only per-file error that stops the walk.
		if ev.Err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	if manifest != nil {
		if err := manifest.Save(); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// processFile translates a single file and writes its target artifact. All
// faults are folded into the returned event; nothing panics out of here.
func (r *Runner) processFile(ctx context.Context, pair FilePair, manifest *Manifest) FileEvent {
	start := time.Now()
	ev := FileEvent{
		Source:  pair.Source,
		Target:  pair.Target,
		Rel:     pair.Rel,
		DocType: pair.DocType,
	}
	defer func() {
		ev.Duration = time.Since(start)
	}()

	data, err := os.ReadFile(pair.Source)
	if err != nil {
		ev.Outcome = OutcomeFailure
		ev.Err = &WalkError{Path: pair.Source, Message: "reading source file", Cause: err}
		return ev
	}
	text := string(data)
	hash := HashText(text)

	if manifest != nil && manifest.Unchanged(pair.Rel, hash) && fileExists(pair.Target) {
		ev.Outcome = OutcomeSkipped
		ev.Reason = "unchanged"
		return ev
	}

	if strings.TrimSpace(text) == "" {
		if err := WriteTarget(pair.Target, ""); err != nil {
			ev.Outcome = OutcomeFailure
			ev.Err = err
			return ev
		}
		ev.Outcome = OutcomeSkipped
		ev.Reason = "empty source"
		if manifest != nil {
			manifest.Record(pair.Rel, hash)
		}
		return ev
	}

	res, err := r.translator.TranslateDocument(ctx, text, pair.DocType)
	if err != nil {
		ev.Outcome = OutcomeFailure
		ev.Err = err
		return ev
	}

	ev.Chunks = res.ChunkCount
	ev.Failed = res.FailedChunks
	ev.Cached = res.CachedChunks

	if err := WriteTarget(pair.Target, res.Content); err != nil {
		ev.Outcome = OutcomeFailure
		ev.Err = err
		return ev
	}

	ev.Outcome = res.Outcome
	if manifest != nil && res.Outcome == OutcomeSuccess {
		manifest.Record(pair.Rel, hash)
	}
	return ev
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
