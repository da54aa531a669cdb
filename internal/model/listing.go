package model

import (
	"database/sql/driver"
	"encoding/json"
	"math"
	"strings"
)

// Listing is a bookable experience as returned by the catalog, including the
// aggregated review figures the ranker needs.
type Listing struct {
	ID                  int64     `json:"id" db:"id"`
	Slug                string    `json:"slug" db:"slug"`
	Title               string    `json:"title" db:"title"`
	Description         string    `json:"description" db:"description"`
	Category            string    `json:"category" db:"category"`
	LocationValue       string    `json:"locationValue" db:"location_value"`
	LocationDescription string    `json:"locationDescription" db:"location_description"`
	MeetingPoint        string    `json:"meetingPoint" db:"meeting_point"`
	LocationType        *string   `json:"locationType,omitempty" db:"location_type"`
	DurationCategory    *string   `json:"durationCategory,omitempty" db:"duration_category"`
	GroupStyles         JSONArray `json:"groupStyles,omitempty" db:"group_styles"`
	Environments        JSONArray `json:"environments,omitempty" db:"environments"`
	ActivityForms       JSONArray `json:"activityForms,omitempty" db:"activity_forms"`
	SeoKeywords         JSONArray `json:"seoKeywords,omitempty" db:"seo_keywords"`
	Images              JSONArray `json:"images,omitempty" db:"images"`
	GuestCapacity       int       `json:"guestCapacity" db:"guest_capacity"`
	VinPoints           float64   `json:"vinPoints" db:"vin_points"`
	Status              string    `json:"status" db:"status"`
	AvgRating           float64   `json:"avgRating" db:"avg_rating"`
	ReviewCount         int       `json:"reviewCount" db:"review_count"`

	// Reservations is populated by in-process catalogs; the SQL catalog
	// resolves availability inside the query instead.
	Reservations []DateRange `json:"-" db:"-"`
}

// Badge picks the first tag family that has a value, falling back to
// "Featured" for untagged listings.
func (l Listing) Badge() string {
	if len(l.GroupStyles) > 0 {
		return l.GroupStyles[0]
	}
	if len(l.ActivityForms) > 0 {
		return l.ActivityForms[0]
	}
	if len(l.Environments) > 0 {
		return l.Environments[0]
	}
	if l.DurationCategory != nil && *l.DurationCategory != "" {
		return *l.DurationCategory
	}
	return "Featured"
}

// PrimaryImage returns the first image, or empty when the listing has none.
func (l Listing) PrimaryImage() string {
	if len(l.Images) > 0 {
		return l.Images[0]
	}
	return ""
}

// Recommendation is the flattened projection of a ranked listing sent to the
// client.
type Recommendation struct {
	ID          int64   `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Badge       string  `json:"badge"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	VinPoints   float64 `json:"vinPoints"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

const recommendationDescriptionLimit = 160

// ToRecommendation flattens a listing for the response body; the rating is
// rounded to one decimal and the description truncated at a word boundary.
func (l Listing) ToRecommendation() Recommendation {
	return Recommendation{
		ID:          l.ID,
		Slug:        l.Slug,
		Title:       l.Title,
		Category:    l.Category,
		Location:    l.LocationValue,
		Badge:       l.Badge(),
		Description: truncateWords(l.Description, recommendationDescriptionLimit),
		Image:       l.PrimaryImage(),
		VinPoints:   l.VinPoints,
		Rating:      math.Round(l.AvgRating*10) / 10,
		ReviewCount: l.ReviewCount,
	}
}

func truncateWords(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// JSONArray maps a JSONB string-array column to []string.
type JSONArray []string

// Value implements driver.Valuer.
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
