package transform

import (
	"context"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/dates"
)

// StageDates is the name of the date resolution stage.
const StageDates = "dates"

// DatesStage attaches fully populated dates via the date resolver.
type DatesStage struct {
	Resolver *dates.Resolver
	Priority []dates.Source
}

func (*DatesStage) Name() string { return StageDates }

func (s *DatesStage) Transform(ctx context.Context, bctx *buildctx.Context, doc *content.Document) error {
	r := s.Resolver
	if r == nil {
		r = dates.NewResolver()
	}
	priority := s.Priority
	if len(priority) == 0 {
		priority = dates.DefaultPriority
	}
	d := r.Resolve(ctx, doc, priority, bctx)
	doc.Meta.Dates = &d
	return nil
}
