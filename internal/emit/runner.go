package emit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	derrors "git.home.luguber.info/inful/docgarden/internal/foundation/errors"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"git.home.luguber.info/inful/docgarden/internal/metrics"
)

// Result summarizes an emit run.
type Result struct {
	// Written lists the file paths in write order.
	Written []string
	// Artifacts counts artifacts per emitter.
	Artifacts map[string]int
	// Failed lists the emitters that reported an error.
	Failed []string
}

// Runner executes emitters in registration order.
type Runner struct {
	emitters []Emitter
	writer   Writer
}

// NewRunner creates a runner writing through w.
func NewRunner(w Writer, emitters ...Emitter) *Runner {
	return &Runner{emitters: emitters, writer: w}
}

// Names returns the emitter names in execution order.
func (r *Runner) Names() []string {
	names := make([]string, len(r.emitters))
	for i, e := range r.emitters {
		names[i] = e.Name()
	}
	return names
}

// Run emits every artifact of corpus. Emitter and write failures are logged
// and the remaining emitters still run; the returned error aggregates them.
func (r *Runner) Run(ctx context.Context, bctx *buildctx.Context, corpus *content.Corpus) (*Result, error) {
	log := bctx.Log()
	rec := bctx.Metrics()
	resources := CollectResources(r.emitters)
	result := &Result{Artifacts: map[string]int{}}
	var errs []error

	for _, e := range r.emitters {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("emit canceled: %w", err)
		}
		t0 := time.Now()
		artifacts, err := e.Emit(ctx, bctx, corpus, resources)

		var writeErrs []error
		for _, a := range artifacts {
			p, werr := r.writer.Write(ctx, a)
			if werr != nil {
				writeErrs = append(writeErrs, werr)
				continue
			}
			result.Written = append(result.Written, p)
			result.Artifacts[e.Name()]++
		}
		if werr := errors.Join(writeErrs...); werr != nil {
			err = errors.Join(err, werr)
		}
		dur := time.Since(t0)
		rec.ObserveEmitterDuration(e.Name(), dur)
		rec.AddArtifacts(e.Name(), result.Artifacts[e.Name()])

		if err != nil {
			rec.IncEmitterResult(e.Name(), metrics.ResultFailed)
			result.Failed = append(result.Failed, e.Name())
			errs = append(errs, derrors.WrapError(err, derrors.CategoryEmit, "emitter failed").
				WithContext("emitter", e.Name()).
				Build())
			log.Error("Emitter failed", logfields.Emitter(e.Name()), logfields.Error(err))
			continue
		}
		rec.IncEmitterResult(e.Name(), metrics.ResultSuccess)
		log.Debug("Emitter complete",
			logfields.Emitter(e.Name()),
			logfields.Count(result.Artifacts[e.Name()]),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}

	if len(errs) > 0 {
		return result, derrors.EmitError(fmt.Sprintf("%d emitter(s) failed", len(errs))).
			WithCause(errors.Join(errs...)).
			WithContext("emitters", result.Failed).
			Build()
	}
	return result, nil
}
