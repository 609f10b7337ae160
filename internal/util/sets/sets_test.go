package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New("draft", "private")
	s.Add("wip")

	assert.True(t, s.Has("draft"))
	assert.False(t, s.Has("published"))
	assert.True(t, s.HasAny([]string{"public", "wip"}))
	assert.False(t, s.HasAny(nil))
	assert.Equal(t, []string{"draft", "private", "wip"}, Sorted(s))
}

func TestNilSet(t *testing.T) {
	var s Set[string]
	assert.False(t, s.Has("x"))
	assert.False(t, s.HasAny([]string{"x"}))
	assert.Empty(t, Sorted(s))
}
