package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyEmitter    = "emitter"
	KeySlug       = "slug"
	KeyFile       = "file"
	KeyPath       = "path"
	KeySource     = "source"
	KeyRawValue   = "raw_value"
	KeyRepo       = "repository"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Emitter(name string) slog.Attr   { return slog.String(KeyEmitter, name) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func File(p string) slog.Attr         { return slog.String(KeyFile, p) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Source(s string) slog.Attr       { return slog.String(KeySource, s) }
func RawValue(v any) slog.Attr        { return slog.Any(KeyRawValue, v) }
func Repository(r string) slog.Attr   { return slog.String(KeyRepo, r) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
