package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("I want a relaxing rooftop sunset tour, please!")
	assert.Equal(t, []string{"relaxing", "rooftop", "sunset", "tour"}, got)
}

func TestExtractKeywordsNormalization(t *testing.T) {
	got := ExtractKeywords("Street-food! STREET-FOOD? street-food...")
	assert.Equal(t, []string{"street-food"}, got)
}

func TestExtractKeywordsCap(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima mike november oscar"
	got := ExtractKeywords(text)
	assert.Len(t, got, MaxKeywords)
}

func TestExtractKeywordsDropsShortAndStopWords(t *testing.T) {
	got := ExtractKeywords("we are so looking forward to it")
	assert.Equal(t, []string{"forward"}, got)
}
