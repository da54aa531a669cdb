package intent

import "strings"

// Category is one experience taxonomy entry.
type Category struct {
	Label    string
	Keywords []string
}

// Taxonomy is ordered: the first entry with any keyword hit wins, so the more
// specific families sit above the broad ones.
var Taxonomy = []Category{
	{"Food, Drink & Culinary", []string{
		"food", "culinary", "tasting", "wine", "cooking class", "cooking",
		"street eats", "brewery", "distillery", "coffee", "gastronomy",
		"foodie", "dining", "restaurant crawl", "market tour",
	}},
	{"Art & Photography", []string{
		"photography", "photo walk", "photo tour", "art", "gallery",
		"painting", "pottery", "craft workshop", "sketching",
	}},
	{"Culture & History", []string{
		"history", "historical", "heritage", "museum", "temple", "castle",
		"ruins", "walking tour", "architecture", "old town", "culture",
		"cultural", "landmark",
	}},
	{"Nature & Wildlife", []string{
		"wildlife", "safari", "birdwatch", "whale", "national park",
		"botanical", "jungle", "rainforest", "nature walk", "nature",
	}},
	{"Adventure & Outdoor", []string{
		"adventure", "hike", "hiking", "trek", "climb", "kayak", "raft",
		"surf", "dive", "diving", "snorkel", "bike tour", "cycling",
		"zipline", "paragliding", "canyoning", "outdoor",
	}},
	{"Water & Sailing", []string{
		"sailing", "boat trip", "boat tour", "cruise", "catamaran",
		"island hopping", "fishing trip", "yacht",
	}},
	{"Nightlife & Entertainment", []string{
		"nightlife", "bar crawl", "pub crawl", "club", "live music",
		"concert", "cabaret", "rooftop bar", "night out",
	}},
	{"Wellness & Relaxation", []string{
		"wellness", "spa", "yoga", "massage", "retreat", "meditation",
		"hot spring", "thermal bath", "sound bath",
	}},
}

// ExtractCategory maps free text onto the taxonomy by substring match; nil
// when nothing in the text names an experience family.
func ExtractCategory(text string) *string {
	lower := strings.ToLower(text)
	for _, entry := range Taxonomy {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				label := entry.Label
				return &label
			}
		}
	}
	return nil
}
