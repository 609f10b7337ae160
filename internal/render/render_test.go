package render

import (
	"bytes"
	"errors"
	"testing"

	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/layout"
	"git.home.luguber.info/inful/docgarden/internal/markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type failing struct{}

func (*failing) Name() string                               { return "Failing" }
func (*failing) Resources() component.Resources             { return component.Resources{} }
func (*failing) Render(component.Props) (*html.Node, error) { return nil, errors.New("boom") }

func TestPathToRoot(t *testing.T) {
	tests := map[string]string{
		"index":          ".",
		"a":              ".",
		"notes/a":        "..",
		"timeline/index": "..",
		"a/b/c":          "../..",
	}
	for slug, want := range tests {
		t.Run(slug, func(t *testing.T) {
			assert.Equal(t, want, PathToRoot(slug))
		})
	}
}

func page(t *testing.T, props component.Props, resolved layout.Resolved) *goquery.Document {
	t.Helper()
	out, err := Page(props, resolved)
	require.NoError(t, err)
	dom, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)
	return dom
}

func TestPage_ContentLayout(t *testing.T) {
	cfg := config.Default()
	cfg.Site.Title = "Garden"
	doc := content.NewDocument("notes/a", "content/notes/a.md")
	doc.Source = []byte("Hello *world*.\n")
	doc.Tree = markdown.Parse(doc.Source)
	doc.Meta.Title = "Alpha"
	doc.Meta.Tags = []string{"go"}

	l := layout.Defaults(cfg)
	dom := page(t, component.Props{Doc: doc, Config: cfg}, l.ContentPage(nil))

	lang, _ := dom.Find("html").Attr("lang")
	assert.Equal(t, "en-US", lang)
	assert.Equal(t, "Alpha | Garden", dom.Find("head title").Text())
	css, _ := dom.Find(`head link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "../index.css", css)
	script, _ := dom.Find("body > script").Attr("src")
	assert.Equal(t, "../postscript.js", script)

	slug, _ := dom.Find("body").Attr("data-slug")
	assert.Equal(t, "notes/a", slug)
	assert.Equal(t, "Alpha", dom.Find(".center .page-header h1.article-title").Text())
	assert.Equal(t, "world", dom.Find(".center article em").Text())
	href, _ := dom.Find(".center .tags a").Attr("href")
	assert.Equal(t, "../tags/go", href)
	assert.Equal(t, 1, dom.Find(".page-end footer").Length())
}

func TestPage_SlotOrderInCenter(t *testing.T) {
	doc := content.NewDocument("index", "content/index.md")
	doc.Meta.Title = "Home"
	resolved := layout.Compose(nil, layout.Spec{
		layout.SlotBeforeBody: {&component.ArticleTitle{}},
		layout.SlotBody:       {&component.Content{}},
	}, nil)

	dom := page(t, component.Props{Doc: doc}, resolved)
	children := dom.Find(".center").Children()
	require.Equal(t, 3, children.Length())
	assert.True(t, children.Eq(0).HasClass("page-header"))
	assert.True(t, children.Eq(1).Is("article"))
	assert.True(t, children.Eq(2).HasClass("page-footer"))
	script, _ := dom.Find("body > script").Attr("src")
	assert.Equal(t, "./postscript.js", script)
}

func TestPage_ComponentError(t *testing.T) {
	resolved := layout.Compose(nil, layout.Spec{layout.SlotRight: {&failing{}}}, nil)
	_, err := Page(component.Props{Doc: content.NewDocument("a", "a.md")}, resolved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component Failing in slot right")
}
