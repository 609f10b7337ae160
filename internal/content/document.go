// Package content defines the documents that flow through the pipeline and
// the corpus snapshot shared by every stage and emitter of a run.
package content

import (
	"path"
	"strings"
	"time"

	gmast "github.com/yuin/goldmark/ast"
)

// MetadataVersion is bumped whenever a Metadata field changes meaning.
const MetadataVersion = 1

// Document represents one source file being processed through the pipeline.
//
// The loader creates it once per file. Transform stages mutate Tree and Meta
// in place; after the transform barrier the document is treated as read-only.
type Document struct {
	// Slug is the stable, path-derived identifier (e.g. "notes/kubernetes").
	Slug string

	// FilePath is the source path relative to the working directory
	// (e.g. "content/notes/kubernetes.md").
	FilePath string

	// RelativePath is the source path relative to the content directory.
	RelativePath string

	// Frontmatter holds the author-declared YAML fields.
	Frontmatter map[string]any

	// RawText is the full file text, frontmatter included.
	RawText string

	// Source is the markdown body; Tree segments point into it.
	Source []byte

	// Tree is the parsed structural representation of Source.
	Tree gmast.Node

	// Meta accumulates stage-derived metadata.
	Meta Metadata
}

// Metadata is the typed per-document data produced by transform stages.
// Each field is owned by exactly one stage and is empty until that stage ran.
type Metadata struct {
	Version int

	// Title, Aliases and Tags are set by the frontmatter stage.
	Title   string
	Aliases []string
	Tags    []string

	// Dates is set by the dates stage and is always fully populated once set.
	Dates *Dates

	// Fingerprint is the content hash set by the fingerprint stage.
	Fingerprint string

	// Transcluded lists the files whose blocks were inlined by the transclude stage.
	Transcluded []string
}

// Dates holds the resolved timestamps of a document. A zero value means unresolved.
type Dates struct {
	Created   time.Time
	Modified  time.Time
	Published time.Time
}

// Complete reports whether every field is resolved.
func (d Dates) Complete() bool {
	return !d.Created.IsZero() && !d.Modified.IsZero() && !d.Published.IsZero()
}

// NewDocument creates a document with an initialized metadata bag.
func NewDocument(slug, filePath string) *Document {
	return &Document{
		Slug:        slug,
		FilePath:    filePath,
		Frontmatter: map[string]any{},
		Meta:        Metadata{Version: MetadataVersion},
	}
}

// Title returns the resolved title, empty until the frontmatter stage ran.
func (d *Document) Title() string { return d.Meta.Title }

// Folder returns the slug with its final segment removed ("" for root documents).
func (d *Document) Folder() string { return Folder(d.Slug) }

// Folder returns slug without its final path segment.
func Folder(slug string) string {
	idx := strings.LastIndex(slug, "/")
	if idx < 0 {
		return ""
	}
	return slug[:idx]
}

// Slugify derives a slug from a content-relative file path: extension dropped,
// separators normalized to "/", whitespace collapsed to "-".
func Slugify(relativePath string) string {
	p := strings.ReplaceAll(relativePath, "\\", "/")
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	p = strings.TrimSuffix(p, path.Ext(p))
	return strings.Join(strings.Fields(p), "-")
}
