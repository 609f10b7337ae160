package emit

import (
	"context"
	"slices"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/content"
)

// Emitter produces artifacts from the finished corpus. Emit is called once
// per run; emitters keep no state between runs.
type Emitter interface {
	Name() string
	// Components lists every component the emitter may render.
	Components() []component.Component
	Emit(ctx context.Context, bctx *buildctx.Context, corpus *content.Corpus, resources Resources) ([]Artifact, error)
}

// Resources are the static assets of all components of a run, in first-seen order.
type Resources struct {
	CSS     []string
	Scripts []string
}

// CollectResources aggregates the resources of the emitters' components.
// Identical snippets are kept once.
func CollectResources(emitters []Emitter) Resources {
	var res Resources
	for _, e := range emitters {
		for _, c := range e.Components() {
			if c == nil {
				continue
			}
			r := c.Resources()
			if r.CSS != "" && !slices.Contains(res.CSS, r.CSS) {
				res.CSS = append(res.CSS, r.CSS)
			}
			if r.Script != "" && !slices.Contains(res.Scripts, r.Script) {
				res.Scripts = append(res.Scripts, r.Script)
			}
		}
	}
	return res
}
