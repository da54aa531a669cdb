package intent

import (
	"regexp"
	"strconv"
	"strings"
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
}

// word-bounded so "solo" never fires inside "Solomon" or "soloist"
var soloRe = regexp.MustCompile(`\b(?:just me|by myself|on my own|travell?ing alone|solo trip|going solo|solo travell?er|me alone|solo)\b`)

var couplePhrases = []string{
	"my partner", "my wife", "my husband", "my girlfriend", "my boyfriend",
	"my spouse", "my fiance", "my fiancee", "me and my friend", "with my friend",
	"as a couple", "the two of us", "two of us", "our honeymoon", "honeymoon",
}

var (
	explicitGuestsRe = regexp.MustCompile(`\b(\d{1,2})\s*(?:guests?|people|persons?)\b`)
	countNounRe      = regexp.MustCompile(`\b(\d{1,2})\s+(?:people|friends|adults|travellers|travelers)\b`)
	forCountRe       = regexp.MustCompile(`\bfor\s+(\d{1,2})\b(?:\s+(days?|nights?|weeks?|months?|hours?))?`)
	groupOfRe        = regexp.MustCompile(`\b(?:group|party|family)\s+of\s+(\d{1,2}|[a-z]+)\b`)
	weAreRe          = regexp.MustCompile(`\bwe(?:\s+are|'re)\s+(\d{1,2}|[a-z]+)\b`)
	meAndFriendsRe   = regexp.MustCompile(`\bme\s+and\s+(\d{1,2}|[a-z]+)\s+friends?\b`)
	withFriendsRe    = regexp.MustCompile(`\bwith\s+(\d{1,2}|[a-z]+)\s+friends?\b`)
	bareNumberRe     = regexp.MustCompile(`^(\d{1,2}|[a-z]+)[!. ]*$`)
	guestQuestionRe  = regexp.MustCompile(`how many (?:people|guests?|travell?ers|of you)|guest count|group size|party size`)
)

type guestStrategy func(text string) (int, bool)

// "me and 2 friends" must yield 3, so the additive friend idioms run before
// the plain "N friends" count.
var guestStrategies = []guestStrategy{
	guestsExplicit,
	guestsSolo,
	guestsCouple,
	guestsMeAndFriends,
	guestsWithFriends,
	guestsCountNoun,
	guestsForCount,
	guestsGroupOf,
	guestsWeAre,
}

// ExtractGuestCount resolves the party size from free text, trying each idiom
// in order; nil means unknown.
func ExtractGuestCount(text string) *int {
	lower := strings.ToLower(text)
	for _, strategy := range guestStrategies {
		if n, ok := strategy(lower); ok && n > 0 {
			return &n
		}
	}
	return nil
}

// GuestCountFromContext handles the bare "4" or "four" a user sends right
// after being asked how many are travelling.
func GuestCountFromContext(assistantTurn, userTurn string) *int {
	if !guestQuestionRe.MatchString(strings.ToLower(assistantTurn)) {
		return nil
	}
	m := bareNumberRe.FindStringSubmatch(strings.TrimSpace(strings.ToLower(userTurn)))
	if m == nil {
		return nil
	}
	if n, ok := parseCount(m[1]); ok && n > 0 {
		return &n
	}
	return nil
}

func guestsExplicit(text string) (int, bool) {
	if m := explicitGuestsRe.FindStringSubmatch(text); m != nil {
		return parseCount(m[1])
	}
	return 0, false
}

func guestsSolo(text string) (int, bool) {
	if soloRe.MatchString(text) {
		return 1, true
	}
	return 0, false
}

func guestsCouple(text string) (int, bool) {
	for _, p := range couplePhrases {
		if strings.Contains(text, p) {
			return 2, true
		}
	}
	return 0, false
}

func guestsCountNoun(text string) (int, bool) {
	if m := countNounRe.FindStringSubmatch(text); m != nil {
		return parseCount(m[1])
	}
	return 0, false
}

// "for 3" counts people unless a duration unit follows ("for 3 nights")
func guestsForCount(text string) (int, bool) {
	if m := forCountRe.FindStringSubmatch(text); m != nil && m[2] == "" {
		return parseCount(m[1])
	}
	return 0, false
}

func guestsGroupOf(text string) (int, bool) {
	if m := groupOfRe.FindStringSubmatch(text); m != nil {
		return parseCount(m[1])
	}
	return 0, false
}

func guestsWeAre(text string) (int, bool) {
	if m := weAreRe.FindStringSubmatch(text); m != nil {
		return parseCount(m[1])
	}
	return 0, false
}

func guestsMeAndFriends(text string) (int, bool) {
	if m := meAndFriendsRe.FindStringSubmatch(text); m != nil {
		if n, ok := parseCount(m[1]); ok {
			return n + 1, true
		}
	}
	return 0, false
}

func guestsWithFriends(text string) (int, bool) {
	if m := withFriendsRe.FindStringSubmatch(text); m != nil {
		if n, ok := parseCount(m[1]); ok {
			return n + 1, true
		}
	}
	return 0, false
}

func parseCount(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	return 0, false
}
