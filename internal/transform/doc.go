// Package transform runs the ordered document stages of a pipeline run.
//
// Stages run strictly in order for one document; documents are processed
// concurrently. A failing or panicking stage is recorded in the Report and
// the document continues with the next stage, keeping whatever the failed
// stage already changed.
package transform
