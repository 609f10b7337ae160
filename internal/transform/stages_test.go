package transform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/dates"
	"github.com/inful/mdfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontmatterStage(t *testing.T) {
	tests := []struct {
		name        string
		rel         string
		raw         string
		wantTitle   string
		wantAliases []string
		wantTags    []string
	}{
		{
			name:        "explicit fields",
			rel:         "notes/a.md",
			raw:         "---\ntitle: Alpha\naliases: [First, Second]\ntags: ['#go', go, k8s]\n---\n# Heading\n",
			wantTitle:   "Alpha",
			wantAliases: []string{"First", "Second"},
			wantTags:    []string{"go", "k8s"},
		},
		{
			name:        "singular keys and scalar values",
			rel:         "notes/b.md",
			raw:         "---\nalias: Only Alias\ntag: solo\n---\nbody\n",
			wantTitle:   "b",
			wantAliases: []string{"Only Alias"},
			wantTags:    []string{"solo"},
		},
		{
			name:      "title from first heading",
			rel:       "notes/c.md",
			raw:       "intro\n\n# The *Real* Title\n",
			wantTitle: "The Real Title",
		},
		{
			name:      "title from file name",
			rel:       "notes/My Note.md",
			raw:       "just text\n",
			wantTitle: "My Note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.rel, tt.raw)
			require.NoError(t, (&FrontmatterStage{}).Transform(context.Background(), nil, doc))
			assert.Equal(t, tt.wantTitle, doc.Title())
			assert.Equal(t, tt.wantAliases, doc.Meta.Aliases)
			assert.Equal(t, tt.wantTags, doc.Meta.Tags)
			assert.Equal(t, content.MetadataVersion, doc.Meta.Version)
		})
	}
}

func TestDatesStage(t *testing.T) {
	doc := parseDoc(t, "a.md", "---\ncreated: 2024-01-01 10:00\n---\nbody\n")
	bctx := testContext(t, t.TempDir())

	stage := &DatesStage{Resolver: &dates.Resolver{Location: time.UTC}, Priority: []dates.Source{dates.Frontmatter}}
	require.NoError(t, stage.Transform(context.Background(), bctx, doc))

	require.NotNil(t, doc.Meta.Dates)
	assert.True(t, doc.Meta.Dates.Complete())
	assert.True(t, doc.Meta.Dates.Created.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)))
	assert.True(t, doc.Meta.Dates.Modified.Equal(bctx.StartedAt))
}

func TestStripHeadingStage(t *testing.T) {
	t.Run("duplicate heading removed", func(t *testing.T) {
		doc := parseDoc(t, "notes/a.md", "# alpha\n\ntext\n")
		doc.Meta.Title = "Alpha"
		require.NoError(t, (&StripHeadingStage{}).Transform(context.Background(), nil, doc))
		assert.NotContains(t, renderDoc(t, doc), "<h1>")
		assert.Contains(t, renderDoc(t, doc), "<p>text</p>")
	})

	t.Run("different heading kept", func(t *testing.T) {
		doc := parseDoc(t, "notes/a.md", "# Something else\n")
		doc.Meta.Title = "Alpha"
		require.NoError(t, (&StripHeadingStage{}).Transform(context.Background(), nil, doc))
		assert.Contains(t, renderDoc(t, doc), "<h1>Something else</h1>")
	})

	t.Run("heading not first is kept", func(t *testing.T) {
		doc := parseDoc(t, "notes/a.md", "intro\n\n# Alpha\n")
		doc.Meta.Title = "Alpha"
		require.NoError(t, (&StripHeadingStage{}).Transform(context.Background(), nil, doc))
		assert.Contains(t, renderDoc(t, doc), "<h1>Alpha</h1>")
	})

	t.Run("root index keeps heading", func(t *testing.T) {
		doc := parseDoc(t, "index.md", "# Home\n")
		doc.Meta.Title = "Home"
		require.NoError(t, (&StripHeadingStage{}).Transform(context.Background(), nil, doc))
		assert.Contains(t, renderDoc(t, doc), "<h1>Home</h1>")
	})
}

func TestFingerprintStage(t *testing.T) {
	bctx := testContext(t, t.TempDir())
	a := parseDoc(t, "a.md", "---\ntitle: A\nlastmod: 2024-01-01\n---\nbody\n")
	b := parseDoc(t, "b.md", "---\ntitle: A\nlastmod: 2025-05-05\naliases: [x]\n---\nbody\n")
	c := parseDoc(t, "c.md", "---\ntitle: A\n---\nother body\n")

	for _, d := range []*content.Document{a, b, c} {
		require.NoError(t, (&FingerprintStage{}).Transform(context.Background(), bctx, d))
	}
	assert.NotEmpty(t, a.Meta.Fingerprint)
	assert.Equal(t, a.Meta.Fingerprint, b.Meta.Fingerprint, "excluded keys do not affect the fingerprint")
	assert.NotEqual(t, a.Meta.Fingerprint, c.Meta.Fingerprint)
	assert.Equal(t, mdfp.CalculateFingerprintFromParts("title: A", "body\n"), a.Meta.Fingerprint)
}

func TestTranscludeStage(t *testing.T) {
	work := t.TempDir()
	writeContent(t, work, "notes/source.md", "---\ntitle: Source Note\n---\nintro\n\nThe **key** idea. ^idea\n")
	writeContent(t, work, "templates/shared.md", "---\naliases: [Shared]\n---\nShared line ^s1\n")
	writeContent(t, work, "notes/public.md", "---\npublish: true\n---\nPublic line ^p1\n")
	writeContent(t, work, "notes/nofm.md", "No frontmatter ^n1\n")
	bctx := testContext(t, work)
	stage := &TranscludeStage{CommonDirectories: []string{"templates"}}

	t.Run("same directory with alias", func(t *testing.T) {
		doc := parseDoc(t, "notes/page.md", "before\n\n![[source#^idea|the idea]]\n\nafter\n")
		require.NoError(t, stage.Transform(context.Background(), bctx, doc))

		html := renderDoc(t, doc)
		assert.Contains(t, html, "<blockquote>")
		assert.Contains(t, html, "<p>The <strong>key</strong> idea.</p>")
		assert.Contains(t, html, "— the idea from Source Note")
		assert.Contains(t, html, "<p>before</p>")
		assert.Contains(t, html, "<p>after</p>")
		assert.Equal(t, []string{"notes/source.md"}, doc.Meta.Transcluded)
	})

	t.Run("common directory and alias title", func(t *testing.T) {
		doc := parseDoc(t, "notes/page.md", "![[shared#^s1]]\n")
		require.NoError(t, stage.Transform(context.Background(), bctx, doc))
		html := renderDoc(t, doc)
		assert.Contains(t, html, "Shared line")
		assert.Contains(t, html, "— Shared")
	})

	t.Run("published target is left alone", func(t *testing.T) {
		doc := parseDoc(t, "notes/page.md", "![[public#^p1]]\n")
		require.NoError(t, stage.Transform(context.Background(), bctx, doc))
		assert.NotContains(t, renderDoc(t, doc), "<blockquote>")
		assert.Empty(t, doc.Meta.Transcluded)
	})

	t.Run("target without frontmatter is left alone", func(t *testing.T) {
		doc := parseDoc(t, "notes/page.md", "![[nofm#^n1]]\n")
		require.NoError(t, stage.Transform(context.Background(), bctx, doc))
		assert.NotContains(t, renderDoc(t, doc), "<blockquote>")
	})

	t.Run("missing file and block", func(t *testing.T) {
		doc := parseDoc(t, "notes/page.md", "![[nowhere#^x]]\n\n![[source#^absent]]\n")
		require.NoError(t, stage.Transform(context.Background(), bctx, doc))
		assert.NotContains(t, renderDoc(t, doc), "<blockquote>")
		assert.Empty(t, doc.Meta.Transcluded)
	})

	t.Run("target outside the content directory is not read", func(t *testing.T) {
		outside := filepath.Join(work, "outside.md")
		require.NoError(t, os.WriteFile(outside, []byte("---\ntitle: Outside\n---\nLeaked line ^o1\n"), 0o600))

		doc := parseDoc(t, "notes/page.md", "![[../../outside#^o1]]\n")
		require.NoError(t, stage.Transform(context.Background(), bctx, doc))
		html := renderDoc(t, doc)
		assert.NotContains(t, html, "Leaked line")
		assert.NotContains(t, html, "<blockquote>")
		assert.Empty(t, doc.Meta.Transcluded)

		common := &TranscludeStage{CommonDirectories: []string{".."}}
		doc = parseDoc(t, "notes/page.md", "![[outside#^o1]]\n")
		require.NoError(t, common.Transform(context.Background(), bctx, doc))
		assert.NotContains(t, renderDoc(t, doc), "Leaked line")
	})

	t.Run("inline embed is not a block embed", func(t *testing.T) {
		doc := parseDoc(t, "notes/page.md", "see ![[source#^idea]] here\n")
		require.NoError(t, stage.Transform(context.Background(), bctx, doc))
		assert.NotContains(t, renderDoc(t, doc), "<blockquote>")
	})
}

func TestDefaultStagesOrder(t *testing.T) {
	stages, err := DefaultStages(config.Default())
	require.NoError(t, err)
	r := NewRunner(1, stages...)
	assert.Equal(t, []string{StageFrontmatter, StageDates, StageTransclude, StageStripHeading, StageFingerprint}, r.StageNames())

	cfg := config.Default()
	cfg.Dates.Priority = []string{"bogus"}
	_, err = DefaultStages(cfg)
	assert.Error(t, err)
}

func TestDefaultStagesEndToEnd(t *testing.T) {
	work := t.TempDir()
	bctx := testContext(t, work)
	stages, err := DefaultStages(bctx.Config)
	require.NoError(t, err)

	doc := parseDoc(t, "notes/a.md", "---\ntitle: Alpha\ncreated: 2024-01-01 10:00\ntags: [go]\n---\n# Alpha\n\nbody\n")
	report := NewRunner(1, stages...).RunDocument(context.Background(), bctx, doc)

	assert.False(t, report.HasIssues())
	assert.Equal(t, "Alpha", doc.Title())
	assert.Equal(t, []string{"go"}, doc.Meta.Tags)
	require.NotNil(t, doc.Meta.Dates)
	assert.True(t, doc.Meta.Dates.Complete())
	assert.NotEmpty(t, doc.Meta.Fingerprint)
	assert.NotContains(t, renderDoc(t, doc), "<h1>")
}
