package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "fits", input: "walk dog", maxLen: 10, want: "walk dog"},
		{name: "exact", input: "walk dog", maxLen: 8, want: "walk dog"},
		{name: "truncated", input: "give Beaker a treat", maxLen: 8, want: "give Be…"},
		{name: "zero width", input: "abc", maxLen: 0, want: ""},
		{name: "one cell", input: "abc", maxLen: 1, want: "…"},
		{name: "wide runes", input: "日本語テキスト", maxLen: 5, want: "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.input, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), max(tt.maxLen, 0))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcdef", PadRight("abcdef", 4))
}

func TestRowRange(t *testing.T) {
	assert.Equal(t, "1–5 of 12", RowRange(1, 5, 12))
	assert.Equal(t, "", RowRange(0, 0, 0))
}
