package model

import "time"

// ChatRequest is the request body for a concierge turn. Either Memory or
// SessionID may carry the prior state; with neither the turn starts cold.
type ChatRequest struct {
	Messages  []ConversationTurn `json:"messages"`
	Memory    *MemorySnapshot    `json:"memory,omitempty"`
	SessionID string             `json:"sessionId,omitempty"`
	Offset    int                `json:"offset,omitempty"`
	Limit     int                `json:"limit,omitempty"`
	Mode      string             `json:"mode,omitempty"`
}

// ModeRecommendations suppresses the conversational reply so widgets can poll
// for listings only.
const ModeRecommendations = "recommendations"

// ChatResponse is the full turn result. Memory is always populated so the
// caller can resend it verbatim.
type ChatResponse struct {
	Reply           string           `json:"reply,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	CriteriaMet     bool             `json:"criteriaMet"`
	MissingFields   []string         `json:"missingFields"`
	Memory          MemorySnapshot   `json:"memory"`
	HasMore         bool             `json:"hasMore"`
	SessionID       string           `json:"sessionId,omitempty"`
	SearchID        string           `json:"searchId,omitempty"`
}

// QueryTier names one step of the relaxation cascade, tried strictest first.
type QueryTier string

const (
	TierStrict         QueryTier = "strict"
	TierNoAvailability QueryTier = "no_availability"
	TierNoGuests       QueryTier = "no_guests"
	TierNoCategory     QueryTier = "no_category"
	TierLocationOnly   QueryTier = "location_only"
)

// FilterSet is one catalog query: the resolved criteria plus a toggle per
// filter dimension. Approved-status filtering is implicit and always on.
type FilterSet struct {
	Keywords   []string
	Category   *string
	Location   *string
	Dates      *DateRange
	GuestCount *int

	MatchKeywords     bool
	MatchCategory     bool
	MatchLocation     bool
	MatchAvailability bool
	MatchCapacity     bool

	Limit int
}

// SearchLog is one analytics row recorded per executed search.
type SearchLog struct {
	ID          string         `db:"id"`
	Query       string         `db:"query"`
	Criteria    MemorySnapshot `db:"-"`
	Tier        string         `db:"tier"`
	ResultCount int            `db:"result_count"`
	TookMs      int64          `db:"took_ms"`
	CreatedAt   time.Time      `db:"created_at"`
}

// FeedbackRequest records a user action against an earlier search.
type FeedbackRequest struct {
	SearchID  string `json:"searchId" binding:"required"`
	ListingID int64  `json:"listingId" binding:"required"`
	Action    string `json:"action" binding:"required"` // click, save, book
}
