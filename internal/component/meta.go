package component

import (
	"bytes"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/net/html"
)

// DateLayout is the short date shown in page metadata ("Jan 02, 2024").
const DateLayout = "Jan 02, 2006"

// ArticleTitle renders the page title as the article heading.
type ArticleTitle struct{}

func (*ArticleTitle) Name() string         { return "ArticleTitle" }
func (*ArticleTitle) Resources() Resources { return Resources{} }

func (*ArticleTitle) Render(p Props) (*html.Node, error) {
	if p.Doc == nil || p.Doc.Title() == "" {
		return nil, nil
	}
	return El("h1", Attrs("class", "article-title"), Text(p.Doc.Title())), nil
}

// ContentMeta renders the created date and the in-progress/incomplete
// markers of authored pages. Pages without text render nothing.
type ContentMeta struct {
	ShowInProgress bool
	ShowIncomplete bool
}

// NewContentMeta returns a ContentMeta with every marker enabled.
func NewContentMeta() *ContentMeta {
	return &ContentMeta{ShowInProgress: true, ShowIncomplete: true}
}

func (*ContentMeta) Name() string { return "ContentMeta" }

func (*ContentMeta) Resources() Resources {
	return Resources{CSS: `.content-meta { margin-top: 0; color: var(--gray); }
.content-meta[show-comma="true"] > *:not(:last-child)::after { content: ", "; }
.content-meta .in-progress, .content-meta .incomplete { color: var(--secondary); }`}
}

func (c *ContentMeta) Render(p Props) (*html.Node, error) {
	doc := p.Doc
	if doc == nil || len(bytes.TrimSpace(doc.Source)) == 0 {
		return nil, nil
	}
	var segments []*html.Node
	if doc.Meta.Dates != nil && !doc.Meta.Dates.Created.IsZero() {
		segments = append(segments, timeNode(doc.Meta.Dates.Created))
	}
	if c.ShowInProgress && cast.ToBool(doc.Frontmatter["in-progress"]) {
		segments = append(segments, El("span", Attrs("class", "in-progress"), Text("In progress")))
	}
	if c.ShowIncomplete {
		if v, ok := doc.Frontmatter["incomplete"]; ok {
			if cast.ToBool(v) {
				segments = append(segments, El("span", Attrs("class", "incomplete"), Text("incomplete note")))
			} else {
				segments = append(segments, El("span", Attrs("class", "complete"), Text("completed note")))
			}
		}
	}
	if len(segments) == 0 {
		return nil, nil
	}
	return El("p", Attrs("show-comma", "true", "class", "content-meta"), segments...), nil
}

func timeNode(t time.Time) *html.Node {
	return El("time", Attrs("datetime", t.Format(time.RFC3339)), Text(t.Format(DateLayout)))
}

// MediaMeta renders the media a note is about (frontmatter media, media-type, authors).
type MediaMeta struct{}

func (*MediaMeta) Name() string { return "MediaMeta" }

func (*MediaMeta) Resources() Resources {
	return Resources{CSS: `.media-meta { color: var(--darkgray); }`}
}

func (*MediaMeta) Render(p Props) (*html.Node, error) {
	doc := p.Doc
	if doc == nil || len(bytes.TrimSpace(doc.Source)) == 0 {
		return nil, nil
	}
	media := strings.TrimSpace(cast.ToString(doc.Frontmatter["media"]))
	if media == "" {
		return nil, nil
	}
	label := "Title: " + media
	if kind := strings.TrimSpace(cast.ToString(doc.Frontmatter["media-type"])); kind != "" {
		label += " (" + kind + ")"
	}
	n := El("p", Attrs("class", "media-meta"), El("span", Attrs("class", "title"), Text(label)))

	authors := cast.ToStringSlice(doc.Frontmatter["authors"])
	if s, ok := doc.Frontmatter["authors"].(string); ok && s != "" {
		authors = []string{s}
	}
	if len(authors) > 0 {
		heading := "Author"
		if len(authors) > 1 {
			heading = "Authors"
		}
		n.AppendChild(El("br", nil))
		n.AppendChild(El("span", Attrs("class", "authors"), Text(heading+": "+strings.Join(authors, " & "))))
	}
	return n, nil
}

// TagList renders the document tags as links to tag pages.
type TagList struct{}

func (*TagList) Name() string { return "TagList" }

func (*TagList) Resources() Resources {
	return Resources{CSS: `.tags { list-style: none; display: flex; flex-wrap: wrap; gap: 0.4rem; padding-left: 0; }
.tags > li { display: inline-block; }
.tag-link { border-radius: 8px; padding: 0.2rem 0.4rem; background-color: var(--highlight); }`}
}

func (*TagList) Render(p Props) (*html.Node, error) {
	if p.Doc == nil || len(p.Doc.Meta.Tags) == 0 {
		return nil, nil
	}
	ul := El("ul", Attrs("class", "tags"))
	for _, tag := range p.Doc.Meta.Tags {
		ul.AppendChild(El("li", nil,
			El("a", Attrs("href", p.Href("tags/"+TagSlug(tag)), "class", "internal tag-link"), Text(tag))))
	}
	return ul, nil
}

var tagReplacer = strings.NewReplacer("&", " and ", "%", " percent", "?", "", "#", "")

// TagSlug turns a tag into a URL path: whitespace becomes '-', hierarchy is kept.
func TagSlug(tag string) string {
	parts := strings.Split(tag, "/")
	for i, part := range parts {
		parts[i] = strings.Join(strings.Fields(tagReplacer.Replace(part)), "-")
	}
	return strings.Join(parts, "/")
}
