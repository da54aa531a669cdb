package service

import (
	"fmt"
	"strings"
)

// hobbyTriggers are the "what should I do"-style phrases that flip a turn
// into suggestion mode instead of a catalog search.
var hobbyTriggers = []string{
	"what should i do",
	"what should we do",
	"what can i do",
	"what can we do",
	"what to do",
	"things to do",
	"any suggestions",
	"suggest something",
	"recommend something",
}

func isHobbyPrompt(text string) bool {
	lower := strings.ToLower(text)
	for _, trigger := range hobbyTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// hobbyFamily groups interest keywords under one suggestion template. The
// template receives the matched interest and the destination.
type hobbyFamily struct {
	Keywords []string
	Template string
}

var hobbyFamilies = []hobbyFamily{
	{
		Keywords: []string{"food", "cooking", "baking", "wine", "coffee", "eating", "restaurants"},
		Template: "Since you're into %s, hunt down a local food market in %s or book a spot at a cooking class — it's the fastest way into the city's kitchens.",
	},
	{
		Keywords: []string{"art", "photography", "painting", "drawing", "design", "museums", "galleries"},
		Template: "With your eye for %s, spend a slow morning in the galleries of %s and bring a camera — the side streets are usually better than the landmarks.",
	},
	{
		Keywords: []string{"history", "archaeology", "architecture", "reading"},
		Template: "For a %s lover, %s rewards walking: pick the old quarter, start early, and let the plaques and facades tell the story.",
	},
	{
		Keywords: []string{"music", "dancing", "nightlife", "concerts", "parties"},
		Template: "Given you love %s, ask a local in %s where tonight's live set is — the listings apps always run a week behind the good rooms.",
	},
	{
		Keywords: []string{"hiking", "nature", "camping", "birdwatching", "gardening", "outdoors", "fishing", "cycling"},
		Template: "A %s person should get out of the center of %s for a day — the nearest trailhead or green belt is usually under an hour away.",
	},
	{
		Keywords: []string{"yoga", "meditation", "wellness", "fitness", "running", "swimming"},
		Template: "Keep your %s routine going in %s: mornings are quietest, and most studios and pools take walk-ins before nine.",
	},
}

const hobbyGenericTemplate = "You mentioned %s — take an unhurried day in %s around it; locals love pointing visitors toward their own favorites, so just ask."

const hobbyAskReply = "Tell me a bit about what you enjoy — food, art, history, nightlife, nature, wellness — and I'll tailor ideas for %s."

// composeHobbyReply tailors suggestions in the given location to the caller's
// interests. Empty interests get the prompt asking for them instead.
func composeHobbyReply(location string, interests []string) string {
	var lines []string
	for _, interest := range interests {
		folded := strings.ToLower(strings.TrimSpace(interest))
		if folded == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf(hobbyTemplateFor(folded), folded, location))
	}
	if len(lines) == 0 {
		return fmt.Sprintf(hobbyAskReply, location)
	}
	return fmt.Sprintf("You're in luck — %s has plenty for you. ", location) + strings.Join(lines, " ")
}

func hobbyTemplateFor(interest string) string {
	for _, family := range hobbyFamilies {
		for _, kw := range family.Keywords {
			if strings.Contains(interest, kw) {
				return family.Template
			}
		}
	}
	return hobbyGenericTemplate
}
