package service

import (
	"fmt"
	"strings"

	"github.com/nossumusTM/vinvinio-sub003/internal/intent"
	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

const invitationReply = "Hi! Tell me where you'd like to go, what kind of experience you're after, your dates and how many of you are travelling, and I'll line up some ideas."

const noResultsReply = "I looked everywhere but couldn't find experiences matching what you described. Try a different destination or loosen the dates and I'll search again."

// slot prompts shown for whatever is still unresolved
var missingPrompts = map[string]string{
	intent.FieldLocation: "Where would you like to go?",
	intent.FieldCategory: "What kind of experience are you after — food, culture, adventure, nightlife…?",
	intent.FieldDates:    "When are you planning to travel?",
	intent.FieldGuests:   "How many people are travelling?",
}

var slotOrder = []string{intent.FieldLocation, intent.FieldCategory, intent.FieldDates, intent.FieldGuests}

var slotLabels = map[string]string{
	intent.FieldLocation: "Destination",
	intent.FieldCategory: "Experience",
	intent.FieldDates:    "Dates",
	intent.FieldGuests:   "Guests",
}

// composeMissingReply builds the follow-up shown while the criteria gate is
// closed: one line per slot with a check for what's resolved, then the
// prompts for what isn't.
func composeMissingReply(m model.Memory, missing []string) string {
	missingSet := make(map[string]bool, len(missing))
	for _, f := range missing {
		missingSet[f] = true
	}

	var b strings.Builder
	b.WriteString("Here's what I have so far:\n")
	for _, slot := range slotOrder {
		if missingSet[slot] {
			fmt.Fprintf(&b, "• %s: ?\n", slotLabels[slot])
			continue
		}
		fmt.Fprintf(&b, "✓ %s: %s\n", slotLabels[slot], slotValue(m, slot))
	}
	b.WriteString("\n")
	for _, f := range missing {
		b.WriteString(missingPrompts[f])
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func slotValue(m model.Memory, slot string) string {
	switch slot {
	case intent.FieldLocation:
		return *m.Location
	case intent.FieldCategory:
		return *m.Category
	case intent.FieldDates:
		return fmt.Sprintf("%s to %s", m.Dates.Start.Format("2006-01-02"), m.Dates.End.Format("2006-01-02"))
	case intent.FieldGuests:
		return fmt.Sprintf("%d", *m.GuestCount)
	}
	return ""
}

// composeTierReply conditions the status text on how far the search had to
// relax: a confirmation for strict, soft caveats for every relaxed tier.
func composeTierReply(tier model.QueryTier, m model.Memory, count int) string {
	location := "your destination"
	if m.Location != nil {
		location = *m.Location
	}

	switch tier {
	case model.TierStrict:
		return fmt.Sprintf("Great news — I found %d experiences in %s matching everything you asked for.", count, location)
	case model.TierNoAvailability:
		return fmt.Sprintf("I found %d matching experiences in %s, though I couldn't confirm availability for your exact dates — some may already be booked.", count, location)
	case model.TierNoGuests:
		return fmt.Sprintf("Here are %d experiences in %s close to what you asked for; a few may not fit your whole group, so check the capacity on each.", count, location)
	case model.TierNoCategory:
		return fmt.Sprintf("Nothing matched that category exactly, so here are %d other experiences around %s you might enjoy.", count, location)
	case model.TierLocationOnly:
		return fmt.Sprintf("I couldn't find an exact match, but here's what's happening around %s — %d experiences worth a look.", location, count)
	}
	return fmt.Sprintf("Here are %d experiences you might like.", count)
}
