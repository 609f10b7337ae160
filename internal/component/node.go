package component

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// El creates an element with attrs and children. Nil children are skipped.
func El(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Attrs builds an attribute list from key, value pairs.
func Attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

// Text creates a text node; its content is escaped on render.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Fragment groups nodes without a wrapping element.
func Fragment(children ...*html.Node) *html.Node {
	f := &html.Node{Type: html.DocumentNode}
	for _, c := range children {
		if c != nil {
			f.AppendChild(c)
		}
	}
	return f
}

// Nodes returns n itself, or its detached children when n is a fragment.
func Nodes(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	if n.Type != html.DocumentNode {
		return []*html.Node{n}
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		out = append(out, c)
		c = next
	}
	return out
}

// ClassNames joins non-empty class names.
func ClassNames(names ...string) string {
	return strings.Join(slices.DeleteFunc(names, func(s string) bool { return s == "" }), " ")
}
