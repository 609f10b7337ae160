package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmast "github.com/yuin/goldmark/ast"
)

func TestParseAndRender(t *testing.T) {
	src := []byte("# Hello *World*\n\nSome ~~old~~ text.\n")
	root := Parse(src)
	require.Equal(t, gmast.KindDocument, root.Kind())

	out, err := RenderHTML(src, root)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>Hello <em>World</em></h1>")
	assert.Contains(t, string(out), "<del>old</del>")
}

func TestFirstHeadingAndPlainText(t *testing.T) {
	src := []byte("intro\n\n## Sub\n\n# Main Title\n")
	root := Parse(src)

	h := FirstHeading(root, 1)
	require.NotNil(t, h)
	assert.Equal(t, "Main Title", PlainText(h, src))
	assert.Nil(t, FirstHeading(root, 3))
}

func TestBlockSource(t *testing.T) {
	src := []byte("![[note#^abc|quote]]\n")
	root := Parse(src)
	p := root.FirstChild()
	require.Equal(t, gmast.KindParagraph, p.Kind())
	assert.Equal(t, "![[note#^abc|quote]]", BlockSource(p, src))
}

func TestRenderHTML_EmptyTree(t *testing.T) {
	out, err := RenderHTML(nil, NewTree())
	require.NoError(t, err)
	assert.Empty(t, out)
}
