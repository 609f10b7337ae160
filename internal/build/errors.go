package build

import "errors"

// Sentinel errors naming the phase a run failed in.
var (
	ErrLoad      = errors.New("docgarden: load error")
	ErrTransform = errors.New("docgarden: transform error")
	ErrEmit      = errors.New("docgarden: emit error")
)
