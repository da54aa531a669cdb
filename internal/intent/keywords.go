package intent

import (
	"regexp"
	"strings"
)

// MaxKeywords caps the keyword set per conversation.
const MaxKeywords = 12

var keywordStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"that": true, "this": true, "these": true, "those": true, "are": true,
	"was": true, "were": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "will": true, "would": true, "could": true,
	"should": true, "can": true, "may": true, "might": true, "must": true,
	"want": true, "wants": true, "wanted": true, "like": true, "likes": true,
	"looking": true, "look": true, "need": true, "needs": true, "about": true,
	"some": true, "any": true, "just": true, "really": true, "maybe": true,
	"please": true, "thanks": true, "thank": true, "hello": true, "you": true,
	"your": true, "our": true, "their": true, "them": true, "then": true,
	"than": true, "what": true, "when": true, "where": true, "who": true,
	"how": true, "why": true, "there": true, "here": true, "also": true,
	"into": true, "onto": true, "over": true, "under": true, "between": true,
	"people": true, "person": true, "guest": true, "guests": true,
	"day": true, "days": true, "night": true, "nights": true, "week": true,
	"weeks": true, "month": true, "months": true, "year": true, "years": true,
	"trip": true, "travel": true, "traveling": true, "travelling": true,
	"visit": true, "visiting": true, "vacation": true, "holiday": true,
	"planning": true, "plan": true, "going": true, "staying": true,
	"stay": true, "around": true, "near": true, "during": true,
}

var nonKeywordCharsRe = regexp.MustCompile(`[^a-z0-9\- ]+`)

// ExtractKeywords tokenizes free text into search keywords: lowercased,
// stripped to alphanumerics/hyphens, stop words and short tokens dropped,
// deduplicated, capped at MaxKeywords.
func ExtractKeywords(text string) []string {
	cleaned := nonKeywordCharsRe.ReplaceAllString(strings.ToLower(text), " ")

	var keywords []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(cleaned) {
		token = strings.Trim(token, "-")
		if len(token) <= 2 || keywordStopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}
