package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"index.md", "index"},
		{"notes/kubernetes.md", "notes/kubernetes"},
		{"notes\\windows path.md", "notes/windows-path"},
		{"./a/../b/c.md", "b/c"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestFolder(t *testing.T) {
	assert.Equal(t, "", Folder("index"))
	assert.Equal(t, "notes", Folder("notes/a"))
	assert.Equal(t, "notes/deep", Folder("notes/deep/a"))
}

func TestNewCorpus(t *testing.T) {
	a := NewDocument("a", "content/a.md")
	b := NewDocument("notes/b", "content/notes/b.md")

	c, err := FromDocuments(a, b)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []*Document{a, b}, c.Documents())
	got, ok := c.Lookup("notes/b")
	require.True(t, ok)
	assert.Same(t, b, got)
	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestNewCorpus_DuplicateSlug(t *testing.T) {
	_, err := FromDocuments(NewDocument("a", "content/a.md"), NewDocument("a", "content/A.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slug")
}

func TestDatesComplete(t *testing.T) {
	assert.False(t, Dates{}.Complete())
	assert.Equal(t, MetadataVersion, NewDocument("a", "a.md").Meta.Version)
}
