// Package layout composes page layouts from three layers (shared, page type,
// per-page override) and flattens them into the component list a page uses.
package layout

import (
	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/config"
)

// Slot names a region of the page skeleton.
type Slot string

const (
	SlotHead       Slot = "head"
	SlotHeader     Slot = "header"
	SlotBeforeBody Slot = "beforeBody"
	SlotBody       Slot = "body"
	SlotAfterBody  Slot = "afterBody"
	SlotLeft       Slot = "left"
	SlotRight      Slot = "right"
	SlotFooter     Slot = "footer"
)

// Order is the slot order used when flattening a layout.
var Order = []Slot{SlotHead, SlotHeader, SlotBeforeBody, SlotBody, SlotAfterBody, SlotLeft, SlotRight, SlotFooter}

// Spec maps slots to ordered components. A slot present with an empty list
// is defined and replaces the lower layer with nothing.
type Spec map[Slot][]component.Component

// Resolved is the result of composing layers.
type Resolved struct {
	slots map[Slot][]component.Component
}

// Compose merges the layers shallowly: for each slot the highest layer that
// defines it wins, without merging lists.
func Compose(shared, page, override Spec) Resolved {
	r := Resolved{slots: make(map[Slot][]component.Component)}
	for _, layer := range []Spec{shared, page, override} {
		for slot, comps := range layer {
			r.slots[slot] = append([]component.Component(nil), comps...)
		}
	}
	return r
}

// Slot returns the components of slot, or nil when undefined.
func (r Resolved) Slot(s Slot) []component.Component {
	return r.slots[s]
}

// Defined reports whether any layer defined s.
func (r Resolved) Defined(s Slot) bool {
	_, ok := r.slots[s]
	return ok
}

// Components returns every component of the layout in slot order, each once.
func (r Resolved) Components() []component.Component {
	var out []component.Component
	seen := make(map[component.Component]struct{})
	for _, s := range Order {
		for _, c := range r.slots[s] {
			if c == nil {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// Layouts are the default layers built once per run so components keep their identity.
type Layouts struct {
	Shared  Spec
	Content Spec
	List    Spec
}

// Defaults returns the default layouts for cfg.
func Defaults(cfg *config.Config) Layouts {
	if cfg == nil {
		cfg = config.Default()
	}
	title := &component.ArticleTitle{}
	return Layouts{
		Shared: Spec{
			SlotHead:   {&component.Head{}},
			SlotFooter: {&component.Footer{Links: cfg.Site.FooterLinks}},
		},
		Content: Spec{
			SlotBeforeBody: {title, component.NewContentMeta(), &component.MediaMeta{}, &component.TagList{}},
			SlotRight:      {component.NewRecentNotes(cfg.Timeline)},
			SlotBody:       {&component.Content{}},
		},
		List: Spec{
			SlotBeforeBody: {title},
			SlotBody:       {&component.Timeline{}},
		},
	}
}

// ContentPage resolves the content page layout with an optional override.
func (l Layouts) ContentPage(override Spec) Resolved {
	return Compose(l.Shared, l.Content, override)
}

// ListPage resolves the list page layout with an optional override.
func (l Layouts) ListPage(override Spec) Resolved {
	return Compose(l.Shared, l.List, override)
}
