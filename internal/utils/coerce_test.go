package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceBoolean(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{" True ", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoerceBoolean(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseNumber("-3.5")
	require.NoError(t, err)
	assert.Equal(t, -3.5, n)

	n, err = ParseNumber("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, n)

	_, err = ParseNumber("twelve")
	assert.Error(t, err)

	_, err = ParseNumber("")
	assert.Error(t, err)
}
