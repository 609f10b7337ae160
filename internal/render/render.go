// Package render turns a resolved layout into a complete HTML page.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/layout"
	"golang.org/x/net/html"
)

const (
	// StylesheetSlug is the slug of the aggregated stylesheet (index.css).
	StylesheetSlug = "index"
	// ScriptSlug is the slug of the aggregated script (postscript.js).
	ScriptSlug = "postscript"
)

// PathToRoot returns the relative path from the page at slug to the output root.
func PathToRoot(slug string) string {
	depth := strings.Count(strings.Trim(slug, "/"), "/")
	if depth == 0 {
		return "."
	}
	return strings.TrimSuffix(strings.Repeat("../", depth), "/")
}

// Page renders props through the resolved layout and returns the HTML document.
func Page(props component.Props, resolved layout.Resolved) ([]byte, error) {
	props.Root = PathToRoot(props.Slug())

	lang := "en-US"
	if props.Config != nil && props.Config.Site.Locale != "" {
		lang = props.Config.Site.Locale
	}

	head := component.El("head", nil)
	if err := appendSlot(head, resolved, layout.SlotHead, props); err != nil {
		return nil, err
	}
	head.AppendChild(component.El("link", component.Attrs(
		"href", props.Href(StylesheetSlug+".css"), "rel", "stylesheet", "type", "text/css")))

	left := component.El("div", component.Attrs("class", "left sidebar"))
	right := component.El("div", component.Attrs("class", "right sidebar"))
	header := component.El("div", component.Attrs("class", "page-header"))
	beforeBody := component.El("div", component.Attrs("class", "popover-hint"))
	afterBody := component.El("div", component.Attrs("class", "page-footer"))
	center := component.El("div", component.Attrs("class", "center"))
	footer := component.El("div", component.Attrs("class", "page-end"))

	slots := []struct {
		parent *html.Node
		slot   layout.Slot
	}{
		{left, layout.SlotLeft},
		{header, layout.SlotHeader},
		{beforeBody, layout.SlotBeforeBody},
		{center, layout.SlotBody},
		{afterBody, layout.SlotAfterBody},
		{right, layout.SlotRight},
		{footer, layout.SlotFooter},
	}
	// header and beforeBody sit above the body inside center.
	center.AppendChild(header)
	header.AppendChild(beforeBody)
	for _, s := range slots {
		if err := appendSlot(s.parent, resolved, s.slot, props); err != nil {
			return nil, err
		}
	}
	center.AppendChild(afterBody)

	body := component.El("body", component.Attrs("data-slug", props.Slug()),
		component.El("div", component.Attrs("id", "garden-root", "class", "page"),
			component.El("div", component.Attrs("id", "garden-body"), left, center, right),
			footer,
		),
		component.El("script", component.Attrs("src", props.Href(ScriptSlug+".js"), "type", "application/javascript")),
	)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(component.El("html", component.Attrs("lang", lang), head, body))

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render page %s: %w", props.Slug(), err)
	}
	return buf.Bytes(), nil
}

func appendSlot(parent *html.Node, resolved layout.Resolved, slot layout.Slot, props component.Props) error {
	for _, c := range resolved.Slot(slot) {
		n, err := c.Render(props)
		if err != nil {
			return fmt.Errorf("component %s in slot %s: %w", c.Name(), slot, err)
		}
		for _, child := range component.Nodes(n) {
			parent.AppendChild(child)
		}
	}
	return nil
}
