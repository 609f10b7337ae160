package transform

import (
	"fmt"
	"sync"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/metrics"
)

// Issue is one stage failure on one document.
type Issue struct {
	Stage    string
	File     string
	Slug     string
	Message  string
	Panicked bool
	Err      error
}

// StageCount tallies stage outcomes across documents.
type StageCount struct {
	Success int
	Failed  int
}

// Report collects the outcome of a transform run. It is safe for concurrent use.
type Report struct {
	mu          sync.Mutex
	Start       time.Time
	End         time.Time
	Documents   int
	Issues      []Issue
	StageCounts map[string]StageCount
}

func newReport() *Report {
	return &Report{Start: time.Now(), StageCounts: map[string]StageCount{}}
}

func (r *Report) record(stage string, issue *Issue, recorder metrics.Recorder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sc := r.StageCounts[stage]
	if issue == nil {
		sc.Success++
		recorder.IncStageResult(stage, metrics.ResultSuccess)
	} else {
		sc.Failed++
		r.Issues = append(r.Issues, *issue)
		recorder.IncStageResult(stage, metrics.ResultWarning)
	}
	r.StageCounts[stage] = sc
}

func (r *Report) finish(docs int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Documents = docs
	r.End = time.Now()
}

// Warnings returns the recorded stage errors in record order.
func (r *Report) Warnings() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, 0, len(r.Issues))
	for _, is := range r.Issues {
		out = append(out, is.Err)
	}
	return out
}

// HasIssues reports whether any stage failed.
func (r *Report) HasIssues() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Issues) > 0
}

// Summary returns a single-line description of the run.
func (r *Report) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("documents=%d stages=%d issues=%d duration=%s",
		r.Documents, len(r.StageCounts), len(r.Issues), r.End.Sub(r.Start).Truncate(time.Millisecond))
}
