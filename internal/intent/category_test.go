package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I want a food tour in Rome", "Food, Drink & Culinary"},
		{"wine tasting would be great", "Food, Drink & Culinary"},
		{"a photo walk at sunrise", "Art & Photography"},
		{"visit the old town and some museums", "Culture & History"},
		{"go hiking in the mountains", "Adventure & Outdoor"},
		{"a relaxing spa day", "Wellness & Relaxation"},
		{"bar crawl with friends", "Nightlife & Entertainment"},
		{"a day of sailing", "Water & Sailing"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ExtractCategory(tt.text)
			require.NotNil(t, got, "text: %q", tt.text)
			assert.Equal(t, tt.want, *got)
		})
	}

	assert.Nil(t, ExtractCategory("take us somewhere nice"))
	assert.Nil(t, ExtractCategory(""))
}

func TestExtractCategoryFirstEntryWins(t *testing.T) {
	// table order decides when several families could claim the text
	got := ExtractCategory("a food and wine walking tour")
	require.NotNil(t, got)
	assert.Equal(t, "Food, Drink & Culinary", *got)
}
