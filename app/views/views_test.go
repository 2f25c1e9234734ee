package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesOnce(t *testing.T) {
	first := Load()
	second := Load()

	for _, name := range []string{"index", "show", "admin_login", "admin_index"} {
		require.Contains(t, first, name)
		assert.Same(t, first[name], second[name], "%s should be parsed a single time", name)
	}
}
