// Package metrics defines the observability hooks of a pipeline run.
//
// The engine only talks to the Recorder interface. NoopRecorder is the
// default; PrometheusRecorder collects into a registry that can be exported
// as a node-exporter textfile at the end of a run.
package metrics
