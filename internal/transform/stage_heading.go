package transform

import (
	"context"
	"strings"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/markdown"
	gmast "github.com/yuin/goldmark/ast"
	"golang.org/x/text/cases"
)

// StageStripHeading is the name of the duplicate-heading stage.
const StageStripHeading = "strip-heading"

// rootIndexSlug keeps its heading: the home page has no separate title block.
const rootIndexSlug = "index"

// StripHeadingStage removes a leading H1 that repeats the page title, which
// the article title component already renders.
type StripHeadingStage struct{}

func (*StripHeadingStage) Name() string { return StageStripHeading }

func (*StripHeadingStage) Transform(_ context.Context, _ *buildctx.Context, doc *content.Document) error {
	if doc.Tree == nil || doc.Slug == rootIndexSlug {
		return nil
	}
	first := doc.Tree.FirstChild()
	h, ok := first.(*gmast.Heading)
	if !ok || h.Level != 1 {
		return nil
	}
	fold := cases.Fold()
	if fold.String(markdown.PlainText(h, doc.Source)) == fold.String(strings.TrimSpace(doc.Meta.Title)) {
		doc.Tree.RemoveChild(doc.Tree, h)
	}
	return nil
}
