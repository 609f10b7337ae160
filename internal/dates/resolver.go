package dates

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
)

// supportedFormats is shown next to invalid date warnings.
const supportedFormats = "YYYY-MM-DD HH:mm, RFC 3339, or any common date layout"

// Resolver resolves document dates.
type Resolver struct {
	// Location is used for zone-less date strings; nil means time.Local.
	Location *time.Location
	// Now supplies the default for unresolved fields when the run has no start time.
	Now func() time.Time
}

// NewResolver creates a resolver interpreting strings in local time.
func NewResolver() *Resolver {
	return &Resolver{Location: time.Local, Now: time.Now}
}

type field struct {
	name string
	dst  *time.Time
	pick func(candidates) []any
}

// Resolve walks sources in order and returns fully populated dates.
func (r *Resolver) Resolve(ctx context.Context, doc *content.Document, sources []Source, bctx *buildctx.Context) content.Dates {
	if bctx == nil {
		bctx = &buildctx.Context{}
	}
	var out content.Dates
	fields := []field{
		{name: "created", dst: &out.Created, pick: func(c candidates) []any { return c.created }},
		{name: "modified", dst: &out.Modified, pick: func(c candidates) []any { return c.modified }},
		{name: "published", dst: &out.Published, pick: func(c candidates) []any { return c.published }},
	}
	log := bctx.Log()

	for _, src := range sources {
		if out.Complete() {
			break
		}
		var c candidates
		switch src {
		case Frontmatter:
			c = fromFrontmatter(doc)
		case Git:
			c = fromGit(ctx, bctx, doc)
		case Filesystem:
			c = fromFilesystem(bctx, doc)
		default:
			log.Warn("Unknown date source ignored", logfields.Source(string(src)))
			continue
		}
		for _, f := range fields {
			if !f.dst.IsZero() {
				continue
			}
			for _, raw := range f.pick(c) {
				t, err := Coerce(raw, r.Location)
				if err != nil {
					log.Warn("Invalid date value",
						logfields.File(doc.FilePath),
						slog.String("field", f.name),
						logfields.Source(string(src)),
						logfields.RawValue(raw),
						logfields.Error(err),
						slog.String("supported", supportedFormats))
					continue
				}
				*f.dst = t
				bctx.Metrics().IncDateSource(f.name, string(src))
				break
			}
		}
	}

	def := r.fallback(bctx)
	for _, f := range fields {
		if f.dst.IsZero() {
			*f.dst = def
			bctx.Metrics().IncDateSource(f.name, "default")
			log.Debug("Date defaulted to run start", logfields.File(doc.FilePath), slog.String("field", f.name))
		}
	}
	return out
}

func (r *Resolver) fallback(bctx *buildctx.Context) time.Time {
	if bctx != nil && !bctx.StartedAt.IsZero() {
		return bctx.StartedAt
	}
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
