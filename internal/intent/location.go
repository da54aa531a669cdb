package intent

import (
	"regexp"
	"strings"
)

type country struct {
	Name     string
	Synonyms []string
}

// Synonyms cover the official name, common alt spellings and the hand-curated
// abbreviations travelers actually type. Short synonyms (≤3 letters) only
// match on word boundaries.
var countries = []country{
	{"United States", []string{"united states of america", "united states", "america", "usa", "us", "u.s.", "the states"}},
	{"United Kingdom", []string{"united kingdom", "great britain", "britain", "england", "scotland", "wales", "uk", "u.k."}},
	{"United Arab Emirates", []string{"united arab emirates", "emirates", "uae", "dubai"}},
	{"France", []string{"france"}},
	{"Italy", []string{"italy", "italia"}},
	{"Spain", []string{"spain", "espana", "españa"}},
	{"Portugal", []string{"portugal"}},
	{"Germany", []string{"germany", "deutschland"}},
	{"Netherlands", []string{"netherlands", "holland", "the netherlands"}},
	{"Belgium", []string{"belgium"}},
	{"Switzerland", []string{"switzerland"}},
	{"Austria", []string{"austria"}},
	{"Greece", []string{"greece"}},
	{"Turkey", []string{"turkey", "turkiye", "türkiye"}},
	{"Croatia", []string{"croatia"}},
	{"Czech Republic", []string{"czech republic", "czechia"}},
	{"Hungary", []string{"hungary"}},
	{"Poland", []string{"poland"}},
	{"Ireland", []string{"ireland"}},
	{"Iceland", []string{"iceland"}},
	{"Norway", []string{"norway"}},
	{"Sweden", []string{"sweden"}},
	{"Denmark", []string{"denmark"}},
	{"Finland", []string{"finland"}},
	{"Russia", []string{"russia", "russian federation"}},
	{"Japan", []string{"japan", "nippon"}},
	{"China", []string{"china", "prc"}},
	{"South Korea", []string{"south korea", "korea", "republic of korea"}},
	{"Thailand", []string{"thailand", "siam"}},
	{"Vietnam", []string{"vietnam", "viet nam"}},
	{"Cambodia", []string{"cambodia"}},
	{"Laos", []string{"laos"}},
	{"Myanmar", []string{"myanmar", "burma"}},
	{"Indonesia", []string{"indonesia", "bali"}},
	{"Malaysia", []string{"malaysia"}},
	{"Singapore", []string{"singapore"}},
	{"Philippines", []string{"philippines", "the philippines"}},
	{"India", []string{"india"}},
	{"Sri Lanka", []string{"sri lanka"}},
	{"Nepal", []string{"nepal"}},
	{"Maldives", []string{"maldives", "the maldives"}},
	{"Israel", []string{"israel"}},
	{"Jordan", []string{"jordan"}},
	{"Saudi Arabia", []string{"saudi arabia", "ksa"}},
	{"Qatar", []string{"qatar"}},
	{"Egypt", []string{"egypt"}},
	{"Morocco", []string{"morocco"}},
	{"Tunisia", []string{"tunisia"}},
	{"South Africa", []string{"south africa"}},
	{"Kenya", []string{"kenya"}},
	{"Tanzania", []string{"tanzania", "zanzibar"}},
	{"Australia", []string{"australia", "aussie", "oz"}},
	{"New Zealand", []string{"new zealand", "aotearoa", "nz"}},
	{"Canada", []string{"canada"}},
	{"Mexico", []string{"mexico", "méxico"}},
	{"Brazil", []string{"brazil", "brasil"}},
	{"Argentina", []string{"argentina"}},
	{"Chile", []string{"chile"}},
	{"Peru", []string{"peru"}},
	{"Colombia", []string{"colombia"}},
	{"Ecuador", []string{"ecuador"}},
	{"Costa Rica", []string{"costa rica"}},
	{"Cuba", []string{"cuba"}},
	{"Dominican Republic", []string{"dominican republic"}},
	{"Jamaica", []string{"jamaica"}},
}

var regions = []string{
	"southeast asia", "central america", "south america", "north america",
	"latin america", "middle east", "scandinavia", "mediterranean",
	"caribbean", "patagonia", "balkans", "oceania", "europe", "africa", "asia",
}

var (
	prepositionPhraseRe = regexp.MustCompile(`(?i)\b(?:in|at|near|around|from|to|country|region|city)\s+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ ,.'-]*)`)
	trailingClauseRe    = regexp.MustCompile(`(?i)\s+(?:for|with|on|at|around|from|during|between|next|this|and|but|or)\b.*$`)
	leadingArticleRe    = regexp.MustCompile(`(?i)^(?:the|a|an)\s+`)
	hasLetterRe         = regexp.MustCompile(`[A-Za-zÀ-ÿ]`)
	cityBeforeCountryRe = regexp.MustCompile(`([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ'-]*(?:\s+[A-Za-zÀ-ÿ][A-Za-zÀ-ÿ'-]*)?),?\s+$`)
	wordRe              = regexp.MustCompile(`[a-z]+`)
)

// words the preposition strategy must never start a place with: seasons,
// times of day, pronouns and the verbs that follow "to" in ordinary speech
var locationRejects = map[string]bool{
	"spring": true, "summer": true, "autumn": true, "fall": true, "winter": true,
	"morning": true, "evening": true, "afternoon": true, "night": true,
	"general": true, "total": true, "budget": true, "case": true, "fact": true,
	"me": true, "us": true, "you": true, "them": true, "there": true, "here": true,
	"go": true, "visit": true, "travel": true, "see": true, "do": true,
	"eat": true, "stay": true, "book": true, "find": true, "explore": true,
	"relax": true, "make": true, "take": true, "get": true, "have": true,
	"know": true, "plan": true, "be": true, "try": true, "learn": true,
}

type locationStrategy func(text string) (string, bool)

var locationStrategies = []locationStrategy{
	locationFromPreposition,
	locationFromCountry,
	locationFromRegion,
}

// ExtractLocation resolves a destination from free text, or "" when none is
// found. Strategies run in order; the first hit wins.
func ExtractLocation(text string) *string {
	for _, strategy := range locationStrategies {
		if loc, ok := strategy(text); ok {
			return &loc
		}
	}
	return nil
}

// locationFromPreposition captures the free text after a place preposition,
// trimmed of trailing connector clauses.
func locationFromPreposition(text string) (string, bool) {
	for _, m := range prepositionPhraseRe.FindAllStringSubmatch(text, -1) {
		phrase := trailingClauseRe.ReplaceAllString(m[1], "")
		phrase = leadingArticleRe.ReplaceAllString(phrase, "")
		phrase = strings.Trim(phrase, " ,.-'")
		if phrase == "" || !hasLetterRe.MatchString(phrase) {
			continue
		}
		lower := strings.ToLower(phrase)
		if _, isMonth := monthAliases[lower]; isMonth {
			continue
		}
		firstWord := lower
		if idx := strings.IndexByte(firstWord, ' '); idx > 0 {
			firstWord = firstWord[:idx]
		}
		if locationRejects[firstWord] || keywordStopWords[lower] {
			continue
		}
		// a phrase that is itself a known synonym resolves to the
		// canonical country name
		if canonical, ok := canonicalCountry(lower); ok {
			return canonical, true
		}
		return phrase, true
	}
	return "", false
}

// locationFromCountry scans for the longest country synonym anywhere in the
// text and, when a "<city>, <Country>" span precedes it, returns the
// composite.
func locationFromCountry(text string) (string, bool) {
	lower := strings.ToLower(text)

	bestLen, bestIdx := 0, -1
	var bestCountry string
	for _, c := range countries {
		for _, syn := range c.Synonyms {
			idx := indexOfSynonym(lower, syn)
			if idx < 0 {
				continue
			}
			if len(syn) > bestLen {
				bestLen, bestIdx, bestCountry = len(syn), idx, c.Name
			}
		}
	}
	if bestIdx < 0 {
		return "", false
	}

	if city, ok := cityBefore(text, bestIdx); ok {
		return city + ", " + bestCountry, true
	}
	return bestCountry, true
}

// indexOfSynonym finds syn in text; synonyms of three letters or fewer only
// count as whole words, so "us" never fires inside "museum" but a later
// standalone "us" in the same sentence still does.
func indexOfSynonym(lower, syn string) int {
	for offset := 0; offset <= len(lower)-len(syn); {
		idx := strings.Index(lower[offset:], syn)
		if idx < 0 {
			return -1
		}
		idx += offset
		if len(syn) > 3 {
			return idx
		}
		end := idx + len(syn)
		boundedLeft := idx == 0 || !isWordByte(lower[idx-1])
		boundedRight := end == len(lower) || !isWordByte(lower[end])
		if boundedLeft && boundedRight {
			return idx
		}
		offset = idx + 1
	}
	return -1
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// cityBefore looks for a capitalized one- or two-word span directly before
// the country match, as in "Paris, France" or "Kyoto Japan".
func cityBefore(text string, countryIdx int) (string, bool) {
	prefix := text[:countryIdx]
	m := cityBeforeCountryRe.FindStringSubmatch(prefix)
	if m == nil {
		return "", false
	}
	// try the full capture first, then its last word alone, so
	// "thinking Kyoto" still yields "Kyoto"
	candidates := []string{strings.TrimSpace(m[1])}
	if idx := strings.LastIndexByte(candidates[0], ' '); idx > 0 {
		candidates = append(candidates, candidates[0][idx+1:])
	}
	for _, city := range candidates {
		if validCity(city) {
			return city, true
		}
	}
	return "", false
}

func validCity(city string) bool {
	if city == "" {
		return false
	}
	lower := strings.ToLower(city)
	if keywordStopWords[lower] || locationRejects[lower] {
		return false
	}
	if _, isMonth := monthAliases[lower]; isMonth {
		return false
	}
	// must be capitalized like a proper noun; every word counts
	for _, word := range strings.Fields(city) {
		if word[0] < 'A' || word[0] > 'Z' {
			return false
		}
	}
	return true
}

func locationFromRegion(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, region := range regions {
		if idx := strings.Index(lower, region); idx >= 0 {
			return titleCase(region), true
		}
	}
	return "", false
}

func canonicalCountry(lower string) (string, bool) {
	for _, c := range countries {
		for _, syn := range c.Synonyms {
			if lower == syn {
				return c.Name, true
			}
		}
	}
	return "", false
}

func titleCase(s string) string {
	return wordRe.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + w[1:]
	})
}
