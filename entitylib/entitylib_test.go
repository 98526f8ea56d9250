package entitylib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountEmpty(t *testing.T) {
	f, err := Count("  \n")
	require.NoError(t, err)
	assert.Empty(t, f)
}

func TestCountKeys(t *testing.T) {
	f, err := Count("Lebron James plays basketball in Los Angeles. Lebron James is famous.")
	require.NoError(t, err)

	for key, n := range f {
		text, label := Split(key)
		assert.NotEmpty(t, text, key)
		assert.NotEmpty(t, label, key)
		assert.Positive(t, n, key)
	}
}

func TestSplit(t *testing.T) {
	text, label := Split("Los Angeles :: GPE")
	assert.Equal(t, "Los Angeles", text)
	assert.Equal(t, "GPE", label)

	text, label = Split("plain")
	assert.Equal(t, "plain", text)
	assert.Empty(t, label)
}
