package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnum string

const (
	testAlpha testEnum = "alpha"
	testBeta  testEnum = "beta"
)

func newTestNormalizer() *Normalizer[testEnum] {
	return New("test enum", map[string]testEnum{"alpha": testAlpha, "Beta": testBeta})
}

func TestParse(t *testing.T) {
	n := newTestNormalizer()
	tests := []struct {
		input string
		want  testEnum
	}{
		{"alpha", testAlpha},
		{"ALPHA", testAlpha},
		{"  beta  ", testBeta},
		{" BeTa", testBeta},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := n.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := newTestNormalizer().Parse("gamma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid test enum "gamma"`)
	assert.Contains(t, err.Error(), "[alpha beta]")
}

func TestCanonical(t *testing.T) {
	n := newTestNormalizer()
	key, ok := n.Canonical(" Alpha ")
	assert.True(t, ok)
	assert.Equal(t, "alpha", key)

	key, ok = n.Canonical(" Gamma ")
	assert.False(t, ok)
	assert.Equal(t, " Gamma ", key)
}

func TestKeysIsCopy(t *testing.T) {
	n := newTestNormalizer()
	keys := n.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"alpha", "beta"}, n.Keys())
}
