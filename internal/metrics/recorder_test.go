package metrics

import (
	"testing"
	"time"
)

// NoopRecorder must satisfy the interface and accept every call.
func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStageDuration("dates", time.Millisecond)
	r.IncStageResult("dates", ResultSuccess)
	r.ObserveEmitterDuration("content-page", time.Second)
	r.IncEmitterResult("content-page", ResultFailed)
	r.AddArtifacts("content-page", 3)
	r.IncDateSource("created", "git")
	r.SetDocuments(10)
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(BuildOutcomeSuccess)
}
