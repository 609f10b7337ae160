package transform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/frontmatter"
	"git.home.luguber.info/inful/docgarden/internal/logfields"
	"git.home.luguber.info/inful/docgarden/internal/markdown"
	"github.com/spf13/cast"
	gmast "github.com/yuin/goldmark/ast"
)

// StageTransclude is the name of the block transclusion stage.
const StageTransclude = "transclude"

// embedPattern matches a whole paragraph of the form ![[file#^block|alias]].
var embedPattern = regexp.MustCompile(`^!\[\[([^\]#|]+)#\^([^\]|]+)(?:\|([^\]]+))?\]\]$`)

// TranscludeStage inlines block references to unpublished notes.
//
// A paragraph consisting only of an embed is replaced by a blockquote holding
// the referenced block line and an attribution. The target is searched in the
// document's own directory and then in CommonDirectories, all below the content
// directory. Names resolving outside the content directory are never read. Targets without frontmatter, targets marked publish: true, and
// missing files or blocks leave the paragraph untouched.
type TranscludeStage struct {
	CommonDirectories []string
}

func (*TranscludeStage) Name() string { return StageTransclude }

type embed struct {
	node  gmast.Node
	file  string
	block string
	alias string
}

func (s *TranscludeStage) Transform(_ context.Context, bctx *buildctx.Context, doc *content.Document) error {
	if doc.Tree == nil {
		return nil
	}
	var embeds []embed
	err := gmast.Walk(doc.Tree, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		p, ok := n.(*gmast.Paragraph)
		if !ok {
			return gmast.WalkContinue, nil
		}
		m := embedPattern.FindStringSubmatch(markdown.BlockSource(p, doc.Source))
		if m != nil {
			embeds = append(embeds, embed{
				node:  p,
				file:  strings.TrimSpace(m[1]),
				block: strings.TrimSpace(m[2]),
				alias: strings.TrimSpace(m[3]),
			})
		}
		return gmast.WalkSkipChildren, nil
	})
	if err != nil {
		return err
	}

	log := bctx.Log()
	for _, e := range embeds {
		target, ok := s.find(bctx, doc, e.file)
		if !ok {
			log.Debug("Transclusion target not found", logfields.File(doc.FilePath), logfields.Path(e.file))
			continue
		}
		quote, err := s.resolve(target, e)
		if err != nil {
			return fmt.Errorf("transclude %s: %w", target.rel, err)
		}
		if quote == nil {
			log.Debug("Transclusion skipped", logfields.File(doc.FilePath), logfields.Path(target.rel), slog.String("block", e.block))
			continue
		}
		parent := e.node.Parent()
		parent.ReplaceChild(parent, e.node, quote)
		doc.Meta.Transcluded = append(doc.Meta.Transcluded, target.rel)
	}
	return nil
}

type target struct {
	rel string
	raw []byte
}

func (s *TranscludeStage) find(bctx *buildctx.Context, doc *content.Document, name string) (target, bool) {
	dirs := append([]string{path.Dir(doc.RelativePath)}, s.CommonDirectories...)
	root := bctx.ContentPath()
	for _, dir := range dirs {
		rel := path.Join(dir, name+".md")
		if rel == ".." || strings.HasPrefix(rel, "../") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err == nil {
			return target{rel: rel, raw: raw}, true
		}
	}
	return target{}, false
}

// resolve builds the replacement blockquote; nil means leave the paragraph.
func (s *TranscludeStage) resolve(t target, e embed) (gmast.Node, error) {
	fmRaw, body, had, err := frontmatter.Split(t.raw)
	if err != nil || !had {
		return nil, nil
	}
	fm, err := frontmatter.ParseYAML(fmRaw)
	if err != nil {
		return nil, nil
	}
	if cast.ToBool(fm["publish"]) {
		return nil, nil
	}

	line, ok := findBlock(body, e.block)
	if !ok {
		return nil, nil
	}
	blockSource := []byte(line)
	blockTree := markdown.Parse(blockSource)
	first := blockTree.FirstChild()
	if first == nil {
		return nil, nil
	}
	html, err := markdown.RenderHTML(blockSource, first)
	if err != nil {
		return nil, err
	}

	quote := gmast.NewBlockquote()
	inlined := gmast.NewString(html)
	inlined.SetCode(true)
	quote.AppendChild(quote, inlined)

	attribution := gmast.NewParagraph()
	attribution.AppendChild(attribution, gmast.NewString([]byte(attributionText(e.alias, embedTitle(fm, e.file)))))
	quote.AppendChild(quote, attribution)
	return quote, nil
}

// findBlock returns the first line carrying the ^block marker, marker removed.
func findBlock(body []byte, block string) (string, bool) {
	marker := "^" + block
	for _, line := range strings.Split(string(body), "\n") {
		if strings.Contains(line, marker) {
			clean := strings.TrimSpace(strings.Replace(line, marker, "", 1))
			return clean, clean != ""
		}
	}
	return "", false
}

func embedTitle(fm map[string]any, file string) string {
	if t := strings.TrimSpace(cast.ToString(fm["title"])); t != "" {
		return t
	}
	for _, k := range []string{"alias", "aliases"} {
		if l := stringList(fm[k]); len(l) > 0 {
			return l[0]
		}
	}
	if id := strings.TrimSpace(cast.ToString(fm["id"])); id != "" {
		return id
	}
	return file
}

func attributionText(alias, title string) string {
	if alias == "" {
		return "— " + title
	}
	return "— " + alias + " from " + title
}
