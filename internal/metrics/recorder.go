package metrics

import "time"

// ResultLabel enumerates stage and emitter result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFailed  ResultLabel = "failed"
)

// BuildOutcomeLabel is the final status of a run.
type BuildOutcomeLabel string

const (
	BuildOutcomeSuccess BuildOutcomeLabel = "success"
	BuildOutcomeWarning BuildOutcomeLabel = "warning"
	BuildOutcomeFailed  BuildOutcomeLabel = "failed"
)

// Recorder defines observability hooks for a pipeline run. Implementations
// must be safe for concurrent use: transform stages report from many goroutines.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	ObserveEmitterDuration(emitter string, d time.Duration)
	IncEmitterResult(emitter string, result ResultLabel)
	AddArtifacts(emitter string, n int)
	IncDateSource(field, source string)
	SetDocuments(n int)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome BuildOutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration)   {}
func (NoopRecorder) IncStageResult(string, ResultLabel)           {}
func (NoopRecorder) ObserveEmitterDuration(string, time.Duration) {}
func (NoopRecorder) IncEmitterResult(string, ResultLabel)         {}
func (NoopRecorder) AddArtifacts(string, int)                     {}
func (NoopRecorder) IncDateSource(string, string)                 {}
func (NoopRecorder) SetDocuments(int)                             {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)           {}
func (NoopRecorder) IncBuildOutcome(BuildOutcomeLabel)            {}
