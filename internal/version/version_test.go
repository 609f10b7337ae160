package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.Equal(t, "docgarden "+Version+" (commit "+GitCommit+", built "+BuildTime+")", String())
}
