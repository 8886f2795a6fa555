package bookref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref, err := Generate()
		require.NoError(t, err)
		assert.Len(t, ref, 10)
		assert.Regexp(t, Pattern, ref)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	// Коллизия на 1000 генераций при пространстве 36^8 практически невозможна
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		ref, err := Generate()
		require.NoError(t, err)
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
}
