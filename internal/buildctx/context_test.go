package buildctx

import (
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/docgarden/internal/config"
	"git.home.luguber.info/inful/docgarden/internal/content"
	"git.home.luguber.info/inful/docgarden/internal/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesConfigDefaults(t *testing.T) {
	work := t.TempDir()
	ctx := New(config.Default(), Options{WorkDir: work}, nil, nil)

	assert.NotEqual(t, uuid.Nil, ctx.RunID)
	assert.False(t, ctx.StartedAt.IsZero())
	assert.Equal(t, "content", ctx.Options.ContentDir)
	assert.Equal(t, "public", ctx.Options.OutputDir)
	assert.Equal(t, filepath.Join(work, "content"), ctx.ContentPath())
	assert.Equal(t, filepath.Join(work, "public"), ctx.OutputPath())
	assert.IsType(t, metrics.NoopRecorder{}, ctx.Metrics())
	require.NotNil(t, ctx.Repos)
	require.NotNil(t, ctx.Repos.Content())
	assert.Equal(t, filepath.Join(work, "content"), ctx.Repos.Content().Root())
}

func TestWithCorpusCopies(t *testing.T) {
	ctx := New(nil, Options{}, nil, nil)
	corpus, err := content.FromDocuments(content.NewDocument("a", "content/a.md"))
	require.NoError(t, err)

	withCorpus := ctx.WithCorpus(corpus)
	assert.Nil(t, ctx.Corpus)
	assert.Same(t, corpus, withCorpus.Corpus)
	assert.Equal(t, ctx.RunID, withCorpus.RunID)
	assert.Same(t, ctx.Repos, withCorpus.Repos)
}

func TestNilContextFallbacks(t *testing.T) {
	var ctx *Context
	assert.NotNil(t, ctx.Log())
	assert.NotNil(t, ctx.Metrics())
}

func TestPathKeepsAbsolute(t *testing.T) {
	ctx := New(nil, Options{WorkDir: "/work", OutputDir: "/tmp/out"}, nil, nil)
	assert.Equal(t, "/tmp/out", ctx.OutputPath())
	assert.Equal(t, filepath.Join("/work", "content", "a.md"), ctx.Path("content/a.md"))
}
