package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordFrequency(t *testing.T) {
	a := &Analytics{}
	got := a.WordFrequency("The polishing, and the POLISHING! Same-day teak (teak) teak.")
	assert.Equal(t, map[string]int{"polishing": 2, "same-day": 1, "teak": 3}, got)
	assert.Empty(t, a.WordFrequency("   "))
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("The"))
	assert.True(t, IsStopword("services"))
	assert.False(t, IsStopword("veneer"))
}

func TestTopNWords(t *testing.T) {
	a := &Analytics{}
	text := "wood wood wood teak teak pu melamine"
	assert.Equal(t, []string{"wood", "teak", "melamine"}, a.TopNWords(text, 3))
	assert.Len(t, a.TopNWords(text, 50), 4)
}

func TestKeywordDensity(t *testing.T) {
	a := &Analytics{}
	tests := []struct {
		name   string
		text   string
		phrase string
		want   float64
	}{
		{"single word", "wood polish wood polish", "wood", 50},
		{"phrase", "teak wood polishing in powai teak wood polishing done right", "teak wood polishing", 60},
		{"no match", "sofa frame", "duco", 0},
		{"empty text", "", "duco", 0},
		{"empty phrase", "sofa", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, a.KeywordDensity(tt.text, tt.phrase), 0.001)
		})
	}
}
