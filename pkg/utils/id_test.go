package utils

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{12}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 500; i++ {
		id, err := GenerateID()
		require.NoError(t, err)

		assert.Regexp(t, pattern, id)
		assert.Equal(t, id, url.QueryEscape(id))

		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
