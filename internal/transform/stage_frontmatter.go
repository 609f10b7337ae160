package transform

import (
	"context"
	"path"
	"strings"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/markdown"
	"github.com/spf13/cast"
)

// StageFrontmatter is the name of the frontmatter stage.
const StageFrontmatter = "frontmatter"

// FrontmatterStage fills Meta.Title, Meta.Aliases and Meta.Tags.
//
// The title is the frontmatter title, else the text of the first H1, else
// the file name. Tags lose a leading '#' and are de-duplicated in order.
type FrontmatterStage struct{}

func (*FrontmatterStage) Name() string { return StageFrontmatter }

func (*FrontmatterStage) Transform(_ context.Context, _ *buildctx.Context, doc *content.Document) error {
	fm := doc.Frontmatter
	doc.Meta.Version = content.MetadataVersion
	doc.Meta.Aliases = firstList(fm, "aliases", "alias")
	doc.Meta.Tags = normalizeTags(firstList(fm, "tags", "tag"))

	title := strings.TrimSpace(cast.ToString(fm["title"]))
	if title == "" && doc.Tree != nil {
		if h := markdown.FirstHeading(doc.Tree, 1); h != nil {
			title = markdown.PlainText(h, doc.Source)
		}
	}
	if title == "" {
		name := path.Base(doc.Slug)
		if doc.RelativePath != "" {
			base := path.Base(doc.RelativePath)
			name = strings.TrimSuffix(base, path.Ext(base))
		}
		title = name
	}
	doc.Meta.Title = title
	return nil
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(strings.TrimPrefix(t, "#"))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
