package intent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parseNow = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractDateRange(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start time.Time
		end   time.Time
	}{
		{
			name:  "iso pair",
			text:  "we arrive 2026-01-07 and leave 2026-01-10",
			start: day(2026, time.January, 7),
			end:   day(2026, time.January, 10),
		},
		{
			name:  "iso pair reversed in text",
			text:  "back home 2026-01-10, out on 2026-01-07",
			start: day(2026, time.January, 7),
			end:   day(2026, time.January, 10),
		},
		{
			name:  "month first range with trailing year",
			text:  "from Jan 7 to Jan 10 2026",
			start: day(2026, time.January, 7),
			end:   day(2026, time.January, 10),
		},
		{
			name:  "month misspelling",
			text:  "janury 5 to janury 9, 2026",
			start: day(2026, time.January, 5),
			end:   day(2026, time.January, 9),
		},
		{
			name:  "day first range",
			text:  "we fly 5 June to 9 June 2026",
			start: day(2026, time.June, 5),
			end:   day(2026, time.June, 9),
		},
		{
			name:  "single month day span",
			text:  "sometime March 3-6, 2027",
			start: day(2027, time.March, 3),
			end:   day(2027, time.March, 6),
		},
		{
			name:  "loose pair in document order",
			text:  "arriving around jan 7 2026, flying home jan 10 2026",
			start: day(2026, time.January, 7),
			end:   day(2026, time.January, 10),
		},
		{
			name:  "no year defaults to current",
			text:  "October 12 to October 15",
			start: day(2026, time.October, 12),
			end:   day(2026, time.October, 15),
		},
		{
			name:  "year end rollover",
			text:  "dec 28 to jan 2",
			start: day(2026, time.December, 28),
			end:   day(2027, time.January, 2),
		},
		{
			name:  "numeric day month year",
			text:  "landing on 25/12/2026",
			start: day(2026, time.December, 25),
			end:   day(2026, time.December, 25),
		},
		{
			name:  "numeric month day year",
			text:  "landing on 12/25/2026",
			start: day(2026, time.December, 25),
			end:   day(2026, time.December, 25),
		},
		{
			name:  "single named date",
			text:  "maybe around March 15",
			start: day(2026, time.March, 15),
			end:   day(2026, time.March, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDateRange(tt.text, parseNow)
			require.NotNil(t, got)
			assert.Equal(t, tt.start, got.Start)
			assert.Equal(t, tt.end, got.End)
		})
	}
}

func TestExtractDateRangeAbsent(t *testing.T) {
	for _, text := range []string{
		"",
		"somewhere warm with good food",
		"for 2 people please",
		"in may next year", // bare month, no day
	} {
		assert.Nil(t, ExtractDateRange(text, parseNow), "text: %q", text)
	}
}

func TestExtractDateRangePairBeatsSingle(t *testing.T) {
	// a two-ended match wins even when a stray single date appears first
	got := ExtractDateRange("booked 3/4/2026 but actually June 1 to June 5 2026", parseNow)
	require.NotNil(t, got)
	assert.Equal(t, day(2026, time.June, 1), got.Start)
	assert.Equal(t, day(2026, time.June, 5), got.End)
}

func TestExtractDateRangeRejectsInvalidDay(t *testing.T) {
	got := ExtractDateRange("meet on feb 30", parseNow)
	assert.Nil(t, got)
}
