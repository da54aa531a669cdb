package intent

import (
	"strings"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// Missing-field names as they appear in responses, in display order.
const (
	FieldLocation = "location"
	FieldCategory = "category"
	FieldDates    = "dates"
	FieldGuests   = "guests"
)

// Merge folds this turn's extracted slots over the prior memory. Each field
// follows `extracted ?? prior`: a resolved value is only ever replaced by a
// newly extracted one, never cleared. Keywords union and never shrink.
func Merge(prior, extracted model.Memory) model.Memory {
	merged := model.Memory{
		Location:   coalesceString(extracted.Location, prior.Location),
		Category:   coalesceString(extracted.Category, prior.Category),
		GuestCount: coalesceInt(extracted.GuestCount, prior.GuestCount),
		Keywords:   unionKeywords(prior.Keywords, extracted.Keywords),
	}
	if extracted.Dates != nil {
		dr := *extracted.Dates
		merged.Dates = &dr
	} else if prior.Dates != nil {
		dr := *prior.Dates
		merged.Dates = &dr
	}
	return merged
}

// MissingFields lists the slots still unresolved after a merge; an empty
// result means the criteria gate is open.
func MissingFields(m model.Memory) []string {
	var missing []string
	if m.Location == nil {
		missing = append(missing, FieldLocation)
	}
	if m.Category == nil {
		missing = append(missing, FieldCategory)
	}
	if m.Dates == nil {
		missing = append(missing, FieldDates)
	}
	if m.GuestCount == nil {
		missing = append(missing, FieldGuests)
	}
	return missing
}

func coalesceString(extracted, prior *string) *string {
	if extracted != nil {
		v := *extracted
		return &v
	}
	if prior != nil {
		v := *prior
		return &v
	}
	return nil
}

func coalesceInt(extracted, prior *int) *int {
	if extracted != nil {
		v := *extracted
		return &v
	}
	if prior != nil {
		v := *prior
		return &v
	}
	return nil
}

// unionKeywords keeps prior keywords first, dedupes case-insensitively and
// caps the result at MaxKeywords.
func unionKeywords(prior, extracted []string) []string {
	var union []string
	seen := make(map[string]bool)
	for _, kw := range append(append([]string{}, prior...), extracted...) {
		folded := strings.ToLower(strings.TrimSpace(kw))
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		union = append(union, folded)
		if len(union) == MaxKeywords {
			break
		}
	}
	return union
}
