package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idSize)
		for _, char := range id {
			assert.True(t, strings.ContainsRune(characters, char))
		}
		assert.False(t, seen[id])
		seen[id] = true
	}
}
