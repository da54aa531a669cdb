package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadge(t *testing.T) {
	duration := "Full Day"

	assert.Equal(t, "Small Group",
		Listing{GroupStyles: JSONArray{"Small Group"}, ActivityForms: JSONArray{"Walking"}}.Badge())
	assert.Equal(t, "Walking", Listing{ActivityForms: JSONArray{"Walking"}}.Badge())
	assert.Equal(t, "Outdoor", Listing{Environments: JSONArray{"Outdoor"}}.Badge())
	assert.Equal(t, "Full Day", Listing{DurationCategory: &duration}.Badge())
	assert.Equal(t, "Featured", Listing{}.Badge())
}

func TestToRecommendation(t *testing.T) {
	l := Listing{
		ID:            7,
		Slug:          "rome-street-food",
		Title:         "Rome Street Food Tour",
		Description:   "Short enough to keep.",
		Category:      "Food, Drink & Culinary",
		LocationValue: "Rome, Italy",
		Images:        JSONArray{"first.jpg", "second.jpg"},
		VinPoints:     20,
		AvgRating:     4.6667,
		ReviewCount:   210,
	}

	rec := l.ToRecommendation()
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, "Rome, Italy", rec.Location)
	assert.Equal(t, "first.jpg", rec.Image)
	assert.Equal(t, 4.7, rec.Rating)
	assert.Equal(t, "Short enough to keep.", rec.Description)
}

func TestToRecommendationTruncatesDescription(t *testing.T) {
	long := strings.Repeat("wander the old town alleys ", 12)
	rec := Listing{Description: long}.ToRecommendation()

	assert.LessOrEqual(t, len(rec.Description), recommendationDescriptionLimit+len("…"))
	assert.True(t, strings.HasSuffix(rec.Description, "…"))
	// truncation lands on a word boundary, not mid-word
	trimmed := strings.TrimSuffix(rec.Description, "…")
	assert.True(t, strings.HasPrefix(long, trimmed))
	assert.False(t, strings.HasSuffix(trimmed, " "))
}

func TestPrimaryImageEmpty(t *testing.T) {
	assert.Empty(t, Listing{}.PrimaryImage())
}
