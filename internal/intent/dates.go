package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// Travelers type month names loosely. The alias map carries 3-letter forms,
// full names and the misspellings that show up often enough in transcripts to
// be worth catching.
var monthAliases = map[string]time.Month{
	"jan": time.January, "january": time.January, "janury": time.January, "januray": time.January,
	"feb": time.February, "february": time.February, "febuary": time.February, "feburary": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April, "aprl": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August, "agust": time.August,
	"sep": time.September, "sept": time.September, "september": time.September, "septmber": time.September,
	"oct": time.October, "october": time.October, "octber": time.October,
	"nov": time.November, "november": time.November, "novmber": time.November,
	"dec": time.December, "december": time.December, "decemeber": time.December,
}

var (
	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	// "jan 7[, 2026] to jan 10[, 2026]"
	monthFirstRangeRe = regexp.MustCompile(`\b([a-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?\s*(?:to|until|till|through|-|–)\s*([a-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?`)

	// "7 jan[ 2026] to 10 jan[ 2026]"
	dayFirstRangeRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]{3,9})\.?(?:\s+(\d{4}))?\s*(?:to|until|till|through|-|–)\s*(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]{3,9})\.?(?:\s+(\d{4}))?`)

	// "jan 7-10[, 2026]": one month, a day span
	monthDaySpanRe = regexp.MustCompile(`\b([a-z]{3,9})\.?\s+(\d{1,2})\s*(?:-|–|to)\s*(\d{1,2})(?:,?\s*(\d{4}))?\b`)

	monthDayRe = regexp.MustCompile(`\b([a-z]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s*(\d{4}))?`)
	dayMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]{3,9})\b(?:\s+(\d{4}))?`)

	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[/.](\d{1,2})[/.](\d{2,4})\b`)
)

type dateStrategy func(text string, now time.Time) (model.DateRange, bool)

// Two-ended strategies first: a pair match always wins over a single date.
var dateStrategies = []dateStrategy{
	isoPair,
	namedRange,
	looseMonthDayPair,
	looseDayMonthPair,
	numericSingle,
	namedSingle,
}

// ExtractDateRange pulls a travel window out of free text. Strategies are
// tried in order and the first hit wins; no hit returns nil. A single found
// date yields Start == End.
func ExtractDateRange(text string, now time.Time) *model.DateRange {
	normalized := strings.ToLower(text)
	for _, strategy := range dateStrategies {
		if r, ok := strategy(normalized, now); ok {
			return &r
		}
	}
	return nil
}

func isoPair(text string, _ time.Time) (model.DateRange, bool) {
	matches := isoDateRe.FindAllStringSubmatch(text, 2)
	if len(matches) < 2 {
		return model.DateRange{}, false
	}
	start, okS := parseISO(matches[0])
	end, okE := parseISO(matches[1])
	if !okS || !okE {
		return model.DateRange{}, false
	}
	if end.Before(start) {
		start, end = end, start
	}
	return model.DateRange{Start: start, End: end}, true
}

func parseISO(m []string) (time.Time, bool) {
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return makeDate(y, time.Month(mo), d)
}

func namedRange(text string, now time.Time) (model.DateRange, bool) {
	if m := monthFirstRangeRe.FindStringSubmatch(text); m != nil {
		if r, ok := buildNamedRange(m[1], m[2], m[3], m[4], m[5], m[6], now); ok {
			return r, true
		}
	}
	if m := dayFirstRangeRe.FindStringSubmatch(text); m != nil {
		if r, ok := buildNamedRange(m[2], m[1], m[3], m[5], m[4], m[6], now); ok {
			return r, true
		}
	}
	if m := monthDaySpanRe.FindStringSubmatch(text); m != nil {
		if r, ok := buildNamedRange(m[1], m[2], m[4], m[1], m[3], m[4], now); ok {
			return r, true
		}
	}
	return model.DateRange{}, false
}

func buildNamedRange(sMonth, sDay, sYear, eMonth, eDay, eYear string, now time.Time) (model.DateRange, bool) {
	startMonth, ok := monthAliases[sMonth]
	if !ok {
		return model.DateRange{}, false
	}
	endMonth, ok := monthAliases[eMonth]
	if !ok {
		return model.DateRange{}, false
	}
	sd, errS := strconv.Atoi(sDay)
	ed, errE := strconv.Atoi(eDay)
	if errS != nil || errE != nil {
		return model.DateRange{}, false
	}

	startYear, endYear, endDefaulted := resolveYears(sYear, eYear, now)
	start, okS := makeDate(startYear, startMonth, sd)
	end, okE := makeDate(endYear, endMonth, ed)
	if !okS || !okE {
		return model.DateRange{}, false
	}
	if end.Before(start) {
		if endDefaulted {
			// "dec 28 to jan 2" with no years rolls the end into next year
			end = end.AddDate(1, 0, 0)
		} else {
			start, end = end, start
		}
	}
	return model.DateRange{Start: start, End: end}, true
}

// resolveYears fills absent years: each side borrows the other's, both absent
// default to the current year.
func resolveYears(sYear, eYear string, now time.Time) (int, int, bool) {
	switch {
	case sYear == "" && eYear == "":
		return now.Year(), now.Year(), true
	case sYear == "":
		ey, _ := strconv.Atoi(eYear)
		return ey, ey, false
	case eYear == "":
		sy, _ := strconv.Atoi(sYear)
		return sy, sy, true
	default:
		sy, _ := strconv.Atoi(sYear)
		ey, _ := strconv.Atoi(eYear)
		return sy, ey, false
	}
}

// looseMonthDayPair pairs any two "month day [year]" occurrences in document
// order, wherever they appear in the text.
func looseMonthDayPair(text string, now time.Time) (model.DateRange, bool) {
	var found [][]string
	for _, m := range monthDayRe.FindAllStringSubmatch(text, -1) {
		if _, ok := monthAliases[m[1]]; ok {
			found = append(found, m)
		}
		if len(found) == 2 {
			break
		}
	}
	if len(found) < 2 {
		return model.DateRange{}, false
	}
	return buildNamedRange(found[0][1], found[0][2], found[0][3], found[1][1], found[1][2], found[1][3], now)
}

// looseDayMonthPair is the day-before-month ordering fallback.
func looseDayMonthPair(text string, now time.Time) (model.DateRange, bool) {
	var found [][]string
	for _, m := range dayMonthRe.FindAllStringSubmatch(text, -1) {
		if _, ok := monthAliases[m[2]]; ok {
			found = append(found, m)
		}
		if len(found) == 2 {
			break
		}
	}
	if len(found) < 2 {
		return model.DateRange{}, false
	}
	return buildNamedRange(found[0][2], found[0][1], found[0][3], found[1][2], found[1][1], found[1][3], now)
}

// numericSingle parses one D/M/Y or M/D/Y date, disambiguated by whichever
// component exceeds 12; fully ambiguous input reads as M/D/Y.
func numericSingle(text string, _ time.Time) (model.DateRange, bool) {
	m := numericDateRe.FindStringSubmatch(text)
	if m == nil {
		return model.DateRange{}, false
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[2])
	y, _ := strconv.Atoi(m[3])
	if y < 100 {
		y += 2000
	}

	var day, month int
	switch {
	case a > 12 && b <= 12:
		day, month = a, b
	case b > 12 && a <= 12:
		month, day = a, b
	case a <= 12 && b <= 12:
		month, day = a, b
	default:
		return model.DateRange{}, false
	}

	d, ok := makeDate(y, time.Month(month), day)
	if !ok {
		return model.DateRange{}, false
	}
	return model.DateRange{Start: d, End: d}, true
}

func namedSingle(text string, now time.Time) (model.DateRange, bool) {
	for _, m := range monthDayRe.FindAllStringSubmatch(text, -1) {
		if month, ok := monthAliases[m[1]]; ok {
			return singleDate(month, m[2], m[3], now)
		}
	}
	for _, m := range dayMonthRe.FindAllStringSubmatch(text, -1) {
		if month, ok := monthAliases[m[2]]; ok {
			return singleDate(month, m[1], m[3], now)
		}
	}
	return model.DateRange{}, false
}

func singleDate(month time.Month, dayStr, yearStr string, now time.Time) (model.DateRange, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return model.DateRange{}, false
	}
	year := now.Year()
	if yearStr != "" {
		year, _ = strconv.Atoi(yearStr)
	}
	d, ok := makeDate(year, month, day)
	if !ok {
		return model.DateRange{}, false
	}
	return model.DateRange{Start: d, End: d}, true
}

// makeDate builds a UTC midnight date, rejecting day overflow (feb 30 etc).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1 || year > 9999 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}
