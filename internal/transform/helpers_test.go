package transform

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/buildctx"
	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/frontmatter"
	"git.home.luguber.info/inful/docgarden/internal/markdown"
	"git.home.luguber.info/inful/docgarden/internal/metrics"
	"github.com/stretchr/testify/require"
)

// parseDoc builds a document the way the loader does.
func parseDoc(t *testing.T, rel, raw string) *content.Document {
	t.Helper()
	doc := content.NewDocument(content.Slugify(rel), "content/"+rel)
	doc.RelativePath = rel
	doc.RawText = raw
	fm, body, had, err := frontmatter.Split([]byte(raw))
	require.NoError(t, err)
	if had {
		fields, err := frontmatter.ParseYAML(fm)
		require.NoError(t, err)
		doc.Frontmatter = fields
	}
	doc.Source = body
	doc.Tree = markdown.Parse(body)
	return doc
}

func renderDoc(t *testing.T, doc *content.Document) string {
	t.Helper()
	out, err := markdown.RenderHTML(doc.Source, doc.Tree)
	require.NoError(t, err)
	return string(out)
}

func testContext(t *testing.T, work string) *buildctx.Context {
	t.Helper()
	cfg := config.Default()
	return buildctx.New(cfg, buildctx.Options{WorkDir: work}, nil, nil)
}

func writeContent(t *testing.T, work, rel, body string) {
	t.Helper()
	path := filepath.Join(work, "content", filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

// countingRecorder counts stage results.
type countingRecorder struct {
	metrics.NoopRecorder
	mu        sync.Mutex
	results   map[string]map[metrics.ResultLabel]int
	durations map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		results:   map[string]map[metrics.ResultLabel]int{},
		durations: map[string]int{},
	}
}

func (c *countingRecorder) IncStageResult(stage string, result metrics.ResultLabel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.results[stage]
	if !ok {
		m = map[metrics.ResultLabel]int{}
		c.results[stage] = m
	}
	m[result]++
}

func (c *countingRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.durations[stage]++
}
