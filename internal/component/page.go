package component

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docgarden/internal/markdown"
	"github.com/spf13/cast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Head renders the document head: charset, viewport, title and canonical link.
type Head struct{}

func (*Head) Name() string         { return "Head" }
func (*Head) Resources() Resources { return Resources{} }

func (*Head) Render(p Props) (*html.Node, error) {
	title := "Untitled"
	if p.Doc != nil && p.Doc.Title() != "" {
		title = p.Doc.Title()
	}
	if p.Config != nil && p.Config.Site.Title != "" {
		title += " | " + p.Config.Site.Title
	}
	nodes := []*html.Node{
		El("meta", Attrs("charset", "utf-8")),
		El("title", nil, Text(title)),
		El("meta", Attrs("name", "viewport", "content", "width=device-width, initial-scale=1.0")),
	}
	if p.Doc != nil {
		if desc := strings.TrimSpace(cast.ToString(p.Doc.Frontmatter["description"])); desc != "" {
			nodes = append(nodes, El("meta", Attrs("name", "description", "content", desc)))
		}
	}
	if p.Config != nil && p.Config.Site.BaseURL != "" && p.Doc != nil {
		href := strings.TrimSuffix(p.Config.Site.BaseURL, "/") + "/" + p.Doc.Slug
		nodes = append(nodes, El("link", Attrs("rel", "canonical", "href", href)))
	}
	return Fragment(nodes...), nil
}

// Content renders the document tree inside the article element.
type Content struct{}

func (*Content) Name() string         { return "Content" }
func (*Content) Resources() Resources { return Resources{} }

func (*Content) Render(p Props) (*html.Node, error) {
	classes := []string{"popover-hint"}
	article := El("article", nil)
	if p.Doc != nil {
		classes = append(classes, cast.ToStringSlice(p.Doc.Frontmatter["cssclasses"])...)
		if p.Doc.Tree != nil {
			out, err := markdown.RenderHTML(p.Doc.Source, p.Doc.Tree)
			if err != nil {
				return nil, fmt.Errorf("render %s: %w", p.Doc.FilePath, err)
			}
			nodes, err := html.ParseFragment(bytes.NewReader(out), &html.Node{
				Type:     html.ElementNode,
				Data:     "article",
				DataAtom: atom.Article,
			})
			if err != nil {
				return nil, fmt.Errorf("parse rendered %s: %w", p.Doc.FilePath, err)
			}
			for _, n := range nodes {
				article.AppendChild(n)
			}
		}
	}
	article.Attr = Attrs("class", ClassNames(classes...))
	return article, nil
}

// Footer renders the site footer with configured links, ordered by name.
type Footer struct {
	Links map[string]string
}

func (*Footer) Name() string { return "Footer" }

func (*Footer) Resources() Resources {
	return Resources{CSS: `footer { text-align: left; margin-bottom: 4rem; opacity: 0.7; }
footer ul { list-style: none; margin: 0; padding: 0; display: flex; gap: 1rem; }`}
}

func (f *Footer) Render(Props) (*html.Node, error) {
	names := make([]string, 0, len(f.Links))
	for name := range f.Links {
		names = append(names, name)
	}
	slices.Sort(names)

	ul := El("ul", nil)
	for _, name := range names {
		ul.AppendChild(El("li", nil, El("a", Attrs("href", f.Links[name]), Text(name))))
	}
	return El("footer", nil, El("p", nil, Text("Created with docgarden")), ul), nil
}
