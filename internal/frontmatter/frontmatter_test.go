package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantFM   string
		wantBody string
		wantHad  bool
	}{
		{
			name:     "no frontmatter",
			input:    "# Title\n\nHello\n",
			wantBody: "# Title\n\nHello\n",
		},
		{
			name:     "yaml frontmatter",
			input:    "---\ntitle: A\n---\n# Title\n",
			wantFM:   "title: A\n",
			wantBody: "# Title\n",
			wantHad:  true,
		},
		{
			name:     "crlf",
			input:    "---\r\ntitle: A\r\n---\r\n# Title\r\n",
			wantFM:   "title: A\r\n",
			wantBody: "# Title\r\n",
			wantHad:  true,
		},
		{
			name:     "empty block",
			input:    "---\n---\nbody\n",
			wantBody: "body\n",
			wantHad:  true,
		},
		{
			name:    "closing delimiter at eof",
			input:   "---\ntitle: A\n---",
			wantFM:  "title: A\n",
			wantHad: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had, err := Split([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantHad, had)
			assert.Equal(t, tt.wantFM, string(fm))
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\ntitle: A\n# Title\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	assert.False(t, had)
}

func TestParseYAML(t *testing.T) {
	fields, err := ParseYAML([]byte("title: Hello\ntags: [a, b]\ncreated: 2024-01-01 10:00\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", fields["title"])
	assert.Equal(t, []any{"a", "b"}, fields["tags"])

	empty, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseYAML([]byte("title: [unclosed"))
	require.Error(t, err)
}

func TestCanonical(t *testing.T) {
	out, err := Canonical(map[string]any{"title": "A", "aliases": []any{"x"}, "b": 1}, "aliases")
	require.NoError(t, err)
	assert.Equal(t, "b: 1\ntitle: A", out)

	out, err = Canonical(map[string]any{"fingerprint": "abc"}, "fingerprint")
	require.NoError(t, err)
	assert.Empty(t, out)
}
