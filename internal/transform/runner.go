package transform

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	derrors "git.home.luguber.info/inful/docgarden/internal/foundation/errors"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"golang.org/x/sync/errgroup"
)

// Runner applies an ordered list of stages to documents.
type Runner struct {
	stages []Stage
	limit  int
	onDone func(*content.Document)
}

// NewRunner creates a runner. limit bounds concurrently processed documents;
// <= 0 means runtime.NumCPU().
func NewRunner(limit int, stages ...Stage) *Runner {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	return &Runner{stages: stages, limit: limit}
}

// OnDocument registers fn to be called after each document of Run finished
// all stages. fn may be called from several goroutines at once.
func (r *Runner) OnDocument(fn func(*content.Document)) *Runner {
	r.onDone = fn
	return r
}

// StageNames returns the stage names in execution order.
func (r *Runner) StageNames() []string {
	names := make([]string, len(r.stages))
	for i, s := range r.stages {
		names[i] = s.Name()
	}
	return names
}

// Run processes every document and returns once all of them finished. The
// only error is the context's: stage failures end up in the report.
func (r *Runner) Run(ctx context.Context, bctx *buildctx.Context, docs []*content.Document) (*Report, error) {
	report := newReport()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.runDocument(gctx, bctx, doc, report)
			if r.onDone != nil {
				r.onDone(doc)
			}
			return nil
		})
	}
	err := g.Wait()
	report.finish(len(docs))
	if err != nil {
		return report, fmt.Errorf("transform canceled: %w", err)
	}
	return report, nil
}

// RunDocument applies every stage to one document.
func (r *Runner) RunDocument(ctx context.Context, bctx *buildctx.Context, doc *content.Document) *Report {
	report := newReport()
	r.runDocument(ctx, bctx, doc, report)
	report.finish(1)
	return report
}

func (r *Runner) runDocument(ctx context.Context, bctx *buildctx.Context, doc *content.Document, report *Report) {
	log := bctx.Log()
	rec := bctx.Metrics()
	for _, st := range r.stages {
		t0 := time.Now()
		panicked, err := runStage(ctx, st, bctx, doc)
		dur := time.Since(t0)
		rec.ObserveStageDuration(st.Name(), dur)

		if err == nil {
			log.Debug("Stage complete",
				logfields.Stage(st.Name()),
				logfields.File(doc.FilePath),
				logfields.DurationMS(float64(dur.Microseconds())/1000))
			report.record(st.Name(), nil, rec)
			continue
		}

		classified := derrors.WrapError(err, derrors.CategoryTransform, "stage failed").
			Warning().
			WithContext("stage", st.Name()).
			WithContext("file", doc.FilePath).
			Build()
		log.Warn("Transform stage failed",
			logfields.Stage(st.Name()),
			logfields.File(doc.FilePath),
			logfields.Error(err))
		report.record(st.Name(), &Issue{
			Stage:    st.Name(),
			File:     doc.FilePath,
			Slug:     doc.Slug,
			Message:  err.Error(),
			Panicked: panicked,
			Err:      classified,
		}, rec)
	}
}

func runStage(ctx context.Context, st Stage, bctx *buildctx.Context, doc *content.Document) (panicked bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			panicked = true
			err = fmt.Errorf("panic in stage %s: %v", st.Name(), p)
		}
	}()
	return false, st.Transform(ctx, bctx, doc)
}
