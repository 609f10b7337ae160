package emit

import (
	"context"
	"strings"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/layout"
	"git.home.luguber.info/inful/docgarden/internal/render"
)

// EmitterComponentResources is the name of the stylesheet/script emitter.
const EmitterComponentResources = "component-resources"

// baseCSS styles the page skeleton produced by render.Page.
const baseCSS = `:root { --light: #faf8f8; --lightgray: #e5e5e5; --gray: #b8b8b8; --darkgray: #4e4e4e; --dark: #2b2b2b; --secondary: #284b63; --highlight: rgba(143, 159, 169, 0.15); }
body { margin: 0; background-color: var(--light); color: var(--darkgray); font-family: system-ui, sans-serif; }
#garden-body { display: grid; grid-template-columns: 320px auto 320px; gap: 2rem; }
.center { max-width: 750px; margin: 0 auto; }
.sidebar { padding: 6rem 2rem 2rem; }`

// ComponentResourcesEmitter writes the aggregated CSS and scripts.
type ComponentResourcesEmitter struct{}

func (*ComponentResourcesEmitter) Name() string                      { return EmitterComponentResources }
func (*ComponentResourcesEmitter) Components() []component.Component { return nil }

func (*ComponentResourcesEmitter) Emit(_ context.Context, _ *buildctx.Context, _ *content.Corpus, res Resources) ([]Artifact, error) {
	css := append([]string{baseCSS}, res.CSS...)
	return []Artifact{
		{Slug: render.StylesheetSlug, Ext: ".css", Content: []byte(strings.Join(css, "\n") + "\n")},
		{Slug: render.ScriptSlug, Ext: ".js", Content: []byte(strings.Join(res.Scripts, "\n"))},
	}, nil
}

// DefaultEmitters returns the built-in emitters in execution order.
func DefaultEmitters(l layout.Layouts) []Emitter {
	return []Emitter{
		&ContentPageEmitter{Layouts: l},
		&TimelinePagesEmitter{Layouts: l},
		&ComponentResourcesEmitter{},
	}
}
