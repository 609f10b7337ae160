package emit

import (
	"context"
	"errors"
	"fmt"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/layout"
	"git.home.luguber.info/inful/docgarden/internal/render"
)

// EmitterContentPage is the name of the content page emitter.
const EmitterContentPage = "content-page"

// ContentPageEmitter renders one HTML page per document.
type ContentPageEmitter struct {
	Layouts  layout.Layouts
	Override layout.Spec
}

func (*ContentPageEmitter) Name() string { return EmitterContentPage }

func (e *ContentPageEmitter) Components() []component.Component {
	return e.Layouts.ContentPage(e.Override).Components()
}

// Emit renders every document. A page that fails to render is reported and
// the other pages are still returned.
func (e *ContentPageEmitter) Emit(ctx context.Context, bctx *buildctx.Context, corpus *content.Corpus, _ Resources) ([]Artifact, error) {
	resolved := e.Layouts.ContentPage(e.Override)
	var (
		out  []Artifact
		errs []error
	)
	for _, doc := range corpus.Documents() {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		page, err := render.Page(component.Props{
			Doc:    doc,
			Config: bctx.Config,
			Corpus: corpus,
		}, resolved)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", doc.FilePath, err))
			continue
		}
		out = append(out, Artifact{Slug: doc.Slug, Ext: ".html", Content: page})
	}
	return out, errors.Join(errs...)
}
