package intent

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMergePrefersExtracted(t *testing.T) {
	prior := model.Memory{
		Location:   strPtr("Rome, Italy"),
		Category:   strPtr("Food, Drink & Culinary"),
		GuestCount: intPtr(2),
	}
	extracted := model.Memory{
		Location: strPtr("Lisbon"),
		Dates: &model.DateRange{
			Start: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 10, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	merged := Merge(prior, extracted)

	require.NotNil(t, merged.Location)
	assert.Equal(t, "Lisbon", *merged.Location)
	require.NotNil(t, merged.Category)
	assert.Equal(t, "Food, Drink & Culinary", *merged.Category)
	require.NotNil(t, merged.GuestCount)
	assert.Equal(t, 2, *merged.GuestCount)
	require.NotNil(t, merged.Dates)
	assert.Equal(t, extracted.Dates.Start, merged.Dates.Start)
}

func TestMergeNeverClears(t *testing.T) {
	prior := model.Memory{
		Location:   strPtr("Kyoto, Japan"),
		Category:   strPtr("Culture & History"),
		GuestCount: intPtr(4),
		Dates: &model.DateRange{
			Start: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2027, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		Keywords: []string{"temple", "garden"},
	}

	merged := Merge(prior, model.Memory{})

	require.NotNil(t, merged.Location)
	assert.Equal(t, "Kyoto, Japan", *merged.Location)
	require.NotNil(t, merged.Category)
	require.NotNil(t, merged.GuestCount)
	require.NotNil(t, merged.Dates)
	assert.Equal(t, []string{"temple", "garden"}, merged.Keywords)
	assert.Empty(t, MissingFields(merged))
}

func TestMergeCopiesDates(t *testing.T) {
	prior := model.Memory{Dates: &model.DateRange{
		Start: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
	}}

	merged := Merge(prior, model.Memory{})
	require.NotNil(t, merged.Dates)
	assert.NotSame(t, prior.Dates, merged.Dates)
}

func TestMergeKeywordUnion(t *testing.T) {
	prior := model.Memory{Keywords: []string{"rooftop", "sunset"}}
	extracted := model.Memory{Keywords: []string{"Sunset", "tapas"}}

	merged := Merge(prior, extracted)
	assert.Equal(t, []string{"rooftop", "sunset", "tapas"}, merged.Keywords)
}

func TestMergeKeywordCap(t *testing.T) {
	var prior, extracted model.Memory
	for i := 0; i < 8; i++ {
		prior.Keywords = append(prior.Keywords, fmt.Sprintf("prior%d", i))
		extracted.Keywords = append(extracted.Keywords, fmt.Sprintf("extracted%d", i))
	}

	merged := Merge(prior, extracted)
	require.Len(t, merged.Keywords, MaxKeywords)
	assert.Equal(t, "prior0", merged.Keywords[0])
	assert.Equal(t, "extracted3", merged.Keywords[MaxKeywords-1])
}

func TestMissingFieldsOrder(t *testing.T) {
	assert.Equal(t,
		[]string{FieldLocation, FieldCategory, FieldDates, FieldGuests},
		MissingFields(model.Memory{}))

	partial := model.Memory{
		Location:   strPtr("Lisbon"),
		GuestCount: intPtr(2),
	}
	assert.Equal(t, []string{FieldCategory, FieldDates}, MissingFields(partial))
}

func TestParserLatestUserTurnOnly(t *testing.T) {
	parser := NewParserAt(func() time.Time { return parseNow })
	turns := []model.ConversationTurn{
		{Role: model.RoleUser, Content: "We want a food tour in Rome, Italy"},
		{Role: model.RoleAssistant, Content: "Great choice! When are you travelling?"},
		{Role: model.RoleUser, Content: "From Jan 7 to Jan 10 2027"},
	}

	slots := parser.Parse(turns)

	assert.Nil(t, slots.Location, "earlier turns must not leak into this turn's slots")
	assert.Nil(t, slots.Category)
	require.NotNil(t, slots.Dates)
	assert.Equal(t, time.Date(2027, 1, 7, 0, 0, 0, 0, time.UTC), slots.Dates.Start)
}

func TestParserContextualGuestAnswer(t *testing.T) {
	parser := NewParser()
	turns := []model.ConversationTurn{
		{Role: model.RoleAssistant, Content: "How many people are travelling?"},
		{Role: model.RoleUser, Content: "four"},
	}

	slots := parser.Parse(turns)
	require.NotNil(t, slots.GuestCount)
	assert.Equal(t, 4, *slots.GuestCount)
}

func TestParserEmptyTranscript(t *testing.T) {
	parser := NewParser()
	assert.Equal(t, model.Memory{}, parser.Parse(nil))
	assert.Equal(t, model.Memory{}, parser.Parse([]model.ConversationTurn{
		{Role: model.RoleUser, Content: "   "},
	}))
}
