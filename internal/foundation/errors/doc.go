// Package errors provides the classified error primitives used across docgarden.
//
// A ClassifiedError carries a category (what part of the pipeline failed), a
// severity (whether the run can continue) and free-form context such as the
// offending file path. The CLI adapter maps categories to process exit codes.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryTransform, "stage failed").
//		Warning().
//		WithContext("stage", "dates").
//		WithContext("file", doc.FilePath).
//		WithCause(originalErr).
//		Build()
package errors
