package emit

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Artifact is one output file.
type Artifact struct {
	Slug    string
	Ext     string
	Content []byte
}

// Name returns slug+ext, e.g. "notes/a.html".
func (a Artifact) Name() string { return a.Slug + a.Ext }

// Writer persists artifacts.
type Writer interface {
	Write(ctx context.Context, a Artifact) (string, error)
}

// FSWriter writes artifacts to <Root>/<slug><ext>.
type FSWriter struct {
	Root string
}

// NewFSWriter returns a writer rooted at dir.
func NewFSWriter(dir string) *FSWriter {
	return &FSWriter{Root: dir}
}

// Path returns the file path of a.
func (w *FSWriter) Path(a Artifact) (string, error) {
	clean := path.Clean("/" + a.Slug)
	if a.Slug == "" || clean == "/" || strings.Contains(a.Slug, "..") {
		return "", fmt.Errorf("invalid artifact slug %q", a.Slug)
	}
	return filepath.Join(w.Root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))+a.Ext), nil
}

func (w *FSWriter) Write(ctx context.Context, a Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := w.Path(a)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", a.Name(), err)
	}
	// #nosec G306 -- generated site files are world-readable
	if err := os.WriteFile(p, a.Content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", a.Name(), err)
	}
	return p, nil
}
