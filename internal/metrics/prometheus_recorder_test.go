package metrics

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveStageDuration("dates", 150*time.Millisecond)
	pr.IncStageResult("dates", ResultSuccess)
	pr.IncStageResult("dates", ResultWarning)
	pr.ObserveEmitterDuration("timeline-pages", 20*time.Millisecond)
	pr.IncEmitterResult("timeline-pages", ResultSuccess)
	pr.AddArtifacts("timeline-pages", 2)
	pr.IncDateSource("created", "frontmatter")
	pr.SetDocuments(7)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(BuildOutcomeSuccess)

	assert.InDelta(t, 1, testutil.ToFloat64(pr.stageResults.WithLabelValues("dates", "warning")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.artifacts.WithLabelValues("timeline-pages")), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(pr.documents), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestPrometheusRecorderConcurrentUse(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pr.ObserveStageDuration("frontmatter", time.Millisecond)
			pr.IncStageResult("frontmatter", ResultSuccess)
		}()
	}
	wg.Wait()
	assert.InDelta(t, 32, testutil.ToFloat64(pr.stageResults.WithLabelValues("frontmatter", "success")), 0)
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncBuildOutcome(BuildOutcomeWarning)

	path := filepath.Join(t.TempDir(), "docgarden.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `docgarden_build_outcomes_total{outcome="warning"} 1`)
}
