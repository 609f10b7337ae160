package dates

import (
	"context"
	"fmt"
	"slices"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/foundation/normalization"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"github.com/djherbis/times"
)

// Source names one origin of date values.
type Source string

const (
	Frontmatter Source = config.SourceFrontmatter
	Git         Source = config.SourceGit
	Filesystem  Source = config.SourceFilesystem
)

// DefaultPriority is frontmatter, then version control, then the filesystem.
var DefaultPriority = []Source{Frontmatter, Git, Filesystem}

var sourceNames = normalization.New("date source", map[string]Source{
	string(Frontmatter): Frontmatter,
	string(Git):         Git,
	string(Filesystem):  Filesystem,
})

// ParseSources converts configured priority names into sources. Names are
// matched case-insensitively; duplicates are rejected.
func ParseSources(names []string) ([]Source, error) {
	out := make([]Source, 0, len(names))
	for _, n := range names {
		s, err := sourceNames.Parse(n)
		if err != nil {
			return nil, err
		}
		if slices.Contains(out, s) {
			return nil, fmt.Errorf("date source %q listed more than once", s)
		}
		out = append(out, s)
	}
	return out, nil
}

// candidates are the raw values one source offers, per field and in
// preference order. A time.Time from git or the filesystem is already typed;
// frontmatter values are whatever YAML produced.
type candidates struct {
	created   []any
	modified  []any
	published []any
}

// Frontmatter keys per field; the canonical name comes first and wins.
var (
	createdKeys   = []string{"created", "date"}
	modifiedKeys  = []string{"modified", "lastmod", "updated"}
	publishedKeys = []string{"published", "publishDate"}
)

func fromFrontmatter(doc *content.Document) candidates {
	pick := func(keys []string) []any {
		var vals []any
		for _, k := range keys {
			if v, ok := doc.Frontmatter[k]; ok && v != nil {
				vals = append(vals, v)
			}
		}
		return vals
	}
	return candidates{
		created:   pick(createdKeys),
		modified:  pick(modifiedKeys),
		published: pick(publishedKeys),
	}
}

func fromFilesystem(bctx *buildctx.Context, doc *content.Document) candidates {
	path := bctx.Path(doc.FilePath)
	ts, err := times.Stat(path)
	if err != nil {
		bctx.Log().Debug("Filesystem dates unavailable", logfields.File(doc.FilePath), logfields.Error(err))
		return candidates{}
	}
	c := candidates{modified: []any{ts.ModTime()}}
	if ts.HasBirthTime() {
		c.created = []any{ts.BirthTime()}
	}
	return c
}

func fromGit(_ context.Context, bctx *buildctx.Context, doc *content.Document) candidates {
	if bctx.Repos == nil {
		return candidates{}
	}
	h, repo, err := bctx.Repos.History(doc.FilePath)
	if err != nil {
		bctx.Log().Debug("Git dates unavailable",
			logfields.File(doc.FilePath),
			logfields.Repository(repo.Name()),
			logfields.Error(err))
		return candidates{}
	}
	return candidates{created: []any{h.Created}, modified: []any{h.Modified}}
}
