// Package component defines the rendering contract the engine sequences and
// ships the default component library.
//
// The engine never looks inside a component: it asks for its static resources
// and for a node tree given the page props.
package component

import (
	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/timeline"
	"golang.org/x/net/html"
)

// Props is the render context of one page.
type Props struct {
	// Doc is the page document; synthetic pages carry an empty tree.
	Doc    *content.Document
	Config *config.Config
	Corpus *content.Corpus
	// Events is the event list of timeline pages.
	Events []timeline.Event
	// Root is the relative path from the page to the output root, e.g. "..".
	Root string
}

// Slug returns the page slug.
func (p Props) Slug() string {
	if p.Doc == nil {
		return ""
	}
	return p.Doc.Slug
}

// Href returns a link from the page to slug.
func (p Props) Href(slug string) string {
	root := p.Root
	if root == "" {
		root = "."
	}
	return root + "/" + slug
}

// Resources are the static assets a component needs on every page it appears on.
type Resources struct {
	CSS    string
	Script string
}

// Component renders one part of a page. A nil node renders nothing; a node
// of type html.DocumentNode is a fragment whose children are inserted.
//
// Components are compared by identity when layouts are flattened, so
// implementations are pointer types.
type Component interface {
	Name() string
	Render(props Props) (*html.Node, error)
	Resources() Resources
}
