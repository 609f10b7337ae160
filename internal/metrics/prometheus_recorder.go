package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docgarden"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg             *prom.Registry
	stageDuration   *prom.HistogramVec
	stageResults    *prom.CounterVec
	emitterDuration *prom.HistogramVec
	emitterResults  *prom.CounterVec
	artifacts       *prom.CounterVec
	dateSources     *prom.CounterVec
	documents       prom.Gauge
	buildDuration   prom.Histogram
	buildOutcome    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "transform_stage_duration_seconds",
			Help:      "Duration of one transform stage on one document",
			Buckets:   prom.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"stage"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "transform_stage_results_total",
			Help:      "Transform stage result counts by outcome",
		}, []string{"stage", "result"}),
		emitterDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "emitter_duration_seconds",
			Help:      "Duration of each emitter",
			Buckets:   prom.DefBuckets,
		}, []string{"emitter"}),
		emitterResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "emitter_results_total",
			Help:      "Emitter result counts by outcome",
		}, []string{"emitter", "result"}),
		artifacts: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_written_total",
			Help:      "Output artifacts written per emitter",
		}, []string{"emitter"}),
		dateSources: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "date_resolutions_total",
			Help:      "Resolved date fields by field and winning source",
		}, []string{"field", "source"}),
		documents: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "documents",
			Help:      "Documents in the corpus of the last run",
		}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.emitterDuration, pr.emitterResults,
		pr.artifacts, pr.dateSources, pr.documents, pr.buildDuration, pr.buildOutcome)
	return pr
}

// Registry returns the registry the recorder publishes to.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile exports every gathered metric in the text exposition format,
// suitable for the node-exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveEmitterDuration(emitter string, d time.Duration) {
	p.emitterDuration.WithLabelValues(emitter).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncEmitterResult(emitter string, result ResultLabel) {
	p.emitterResults.WithLabelValues(emitter, string(result)).Inc()
}

func (p *PrometheusRecorder) AddArtifacts(emitter string, n int) {
	p.artifacts.WithLabelValues(emitter).Add(float64(n))
}

func (p *PrometheusRecorder) IncDateSource(field, source string) {
	p.dateSources.WithLabelValues(field, source).Inc()
}

func (p *PrometheusRecorder) SetDocuments(n int) { p.documents.Set(float64(n)) }

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}
