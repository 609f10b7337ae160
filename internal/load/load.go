// Package load turns a content directory into the corpus snapshot of a run.
package load

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docgarden/internal/content"
	derrors "git.home.luguber.info/inful/docgarden/internal/foundation/errors"
	"git.home.luguber.info/inful/docgarden/internal/frontmatter"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"git.home.luguber.info/inful/docgarden/internal/markdown"
)

// Loader reads markdown files below ContentDir.
type Loader struct {
	// WorkDir is the base document file paths are made relative to.
	WorkDir string
	// ContentDir is walked recursively; relative values resolve against WorkDir.
	ContentDir string
	Logger     *slog.Logger
}

// Load walks the content directory in lexical order and parses every
// markdown file. A malformed frontmatter block is a warning: the document
// keeps its body and an empty frontmatter. An unreadable directory or file
// aborts the load.
func (l *Loader) Load(ctx context.Context) (*content.Corpus, error) {
	log := l.Logger
	if log == nil {
		log = slog.Default()
	}
	root := l.ContentDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(l.WorkDir, root)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, derrors.FileSystemError("content directory is not readable").
			Fatal().
			WithCause(err).
			WithContext("path", root).
			Build()
	}
	if !info.IsDir() {
		return nil, derrors.FileSystemError("content path is not a directory").
			Fatal().
			WithContext("path", root).
			Build()
	}

	var entries []content.Entry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(d.Name()) {
			return nil
		}
		doc, err := l.loadFile(root, path, log)
		if err != nil {
			return err
		}
		entries = append(entries, content.Entry{Key: doc.FilePath, Doc: doc})
		return nil
	})
	if walkErr != nil {
		return nil, derrors.FileSystemError("failed to read content directory").
			Fatal().
			WithCause(walkErr).
			WithContext("path", root).
			Build()
	}

	corpus, err := content.NewCorpus(entries)
	if err != nil {
		return nil, derrors.LoadError("failed to build corpus").WithCause(err).Build()
	}
	log.Debug("Corpus loaded", logfields.Path(root), logfields.Count(corpus.Len()))
	return corpus, nil
}

func (l *Loader) loadFile(root, path string, log *slog.Logger) (*content.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)
	filePath := path
	if l.WorkDir != "" {
		if r, err := filepath.Rel(l.WorkDir, path); err == nil {
			filePath = r
		}
	}
	filePath = filepath.ToSlash(filePath)

	doc := content.NewDocument(content.Slugify(rel), filePath)
	doc.RelativePath = rel
	doc.RawText = string(raw)

	fm, body, had, err := frontmatter.Split(raw)
	switch {
	case err != nil:
		log.Warn("Malformed frontmatter, treating file as body", logfields.File(filePath), logfields.Error(err))
		body = raw
	case had:
		fields, perr := frontmatter.ParseYAML(fm)
		if perr != nil {
			log.Warn("Invalid frontmatter YAML ignored", logfields.File(filePath), logfields.Error(perr))
		} else if fields != nil {
			doc.Frontmatter = fields
		}
	}
	doc.Source = body
	doc.Tree = markdown.Parse(body)
	return doc, nil
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
