package emit

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/layout"
	"git.home.luguber.info/inful/docgarden/internal/markdown"
	"git.home.luguber.info/inful/docgarden/internal/render"
	"git.home.luguber.info/inful/docgarden/internal/timeline"
)

const (
	// EmitterTimelinePages is the name of the timeline emitter.
	EmitterTimelinePages = "timeline-pages"

	TimelineSlug = "timeline/index"
	RecentSlug   = "recent/index"
)

// TimelinePagesEmitter produces the timeline and recent notes pages from one
// derivation of the corpus.
type TimelinePagesEmitter struct {
	Layouts layout.Layouts
	// Override is applied over the list layout of both pages.
	Override layout.Spec
}

type timelinePage struct {
	slug  string
	title string
	opts  timeline.Options
}

func (*TimelinePagesEmitter) Name() string { return EmitterTimelinePages }

func (e *TimelinePagesEmitter) Components() []component.Component {
	return e.Layouts.ListPage(e.Override).Components()
}

func (e *TimelinePagesEmitter) Emit(ctx context.Context, bctx *buildctx.Context, corpus *content.Corpus, _ Resources) ([]Artifact, error) {
	cfg := bctx.Config.Timeline
	raw := timeline.Extract(corpus, cfg.DisallowedSlugs, cfg.DisallowedTags)
	pages := []timelinePage{
		{slug: TimelineSlug, title: "Timeline", opts: timeline.Options{Compact: true, Limit: cfg.Limit}},
		{slug: RecentSlug, title: "Recent Notes", opts: timeline.Options{CreatedOnly: true, Limit: cfg.Limit}},
	}

	resolved := e.Layouts.ListPage(e.Override)
	out := make([]Artifact, 0, len(pages))
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		doc := content.NewDocument(p.slug, p.slug)
		doc.Tree = markdown.NewTree()
		doc.Meta.Title = p.title

		page, err := render.Page(component.Props{
			Doc:    doc,
			Config: bctx.Config,
			Corpus: corpus,
			Events: timeline.View(raw, p.opts),
		}, resolved)
		if err != nil {
			return out, fmt.Errorf("render %s: %w", p.slug, err)
		}
		out = append(out, Artifact{Slug: p.slug, Ext: ".html", Content: page})
	}
	return out, nil
}
