// Package markdown is the parser collaborator of the pipeline: it turns
// markdown bodies into goldmark trees and renders trees back to HTML.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// md is shared by every document; goldmark parsers keep no per-call state.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse parses a Markdown body (frontmatter already removed) into a Goldmark AST.
func Parse(body []byte) gmast.Node {
	return md.Parser().Parse(text.NewReader(body))
}

// NewTree returns an empty document tree, used for synthetic pages.
func NewTree() gmast.Node {
	return gmast.NewDocument()
}

// RenderHTML renders node (usually the document root) to HTML.
// source must be the buffer the tree was parsed from.
func RenderHTML(source []byte, node gmast.Node) ([]byte, error) {
	var buf bytes.Buffer
	if node == nil {
		return buf.Bytes(), nil
	}
	if err := md.Renderer().Render(&buf, source, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PlainText concatenates the inline text below n.
func PlainText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *gmast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(v.Value)
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// BlockSource returns the raw source lines of a block node such as a paragraph.
func BlockSource(n gmast.Node, source []byte) string {
	lines := n.Lines()
	if lines == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimSpace(sb.String())
}

// FirstHeading returns the first top-level heading of the given level, or nil.
func FirstHeading(root gmast.Node, level int) *gmast.Heading {
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if h, ok := c.(*gmast.Heading); ok && h.Level == level {
			return h
		}
	}
	return nil
}
