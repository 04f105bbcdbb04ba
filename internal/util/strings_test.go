package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAlphanumericString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"verbose", true},
		{"v2", true},
		{"é", true},
		{"", false},
		{"dry-run", false},
		{"a b", false},
		{"_x", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAlphanumericString(tt.in), "IsAlphanumericString(%q)", tt.in)
	}
}

func TestHasText(t *testing.T) {
	assert.True(t, HasText(" a "))
	assert.False(t, HasText(""))
	assert.False(t, HasText(" \t\n"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, "é  ", PadRight("é", 3), "padding should count runes, not bytes")
}
