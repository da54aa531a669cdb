package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Turn roles as they appear on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single message in the caller-supplied transcript.
type ConversationTurn struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// Memory is the accumulated conversation state: every slot resolved so far.
// It is round-tripped through the caller (or a session store) on every turn;
// the engine itself keeps no state between calls. The same shape doubles as
// the per-turn extraction result, where any field may be nil.
type Memory struct {
	Location   *string
	Category   *string
	Dates      *DateRange
	GuestCount *int
	Keywords   []string
}

// DateRange is an inclusive travel window. Single-date extractions produce
// Start == End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two inclusive ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.End.Before(other.Start) && !r.Start.After(other.End)
}

const memoryDateLayout = "2006-01-02"

// MemorySnapshot is the wire form of Memory. Unknown slots serialize as null
// and dates as YYYY-MM-DD strings so the caller can resend the snapshot
// verbatim on the next turn.
type MemorySnapshot struct {
	Location   *string            `json:"location"`
	Category   *string            `json:"category"`
	DateRange  *DateRangeSnapshot `json:"dateRange"`
	GuestCount *int               `json:"guestCount"`
	Keywords   StringList         `json:"keywords"`
}

// DateRangeSnapshot carries the serialized travel window.
type DateRangeSnapshot struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// StringList is a []string that tolerates malformed input: anything that is
// not a JSON array of strings decodes to an empty list instead of failing the
// whole request.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}
	*s = raw
	return nil
}

func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Snapshot serializes a Memory for the response body.
func (m Memory) Snapshot() MemorySnapshot {
	snap := MemorySnapshot{
		Location:   m.Location,
		Category:   m.Category,
		GuestCount: m.GuestCount,
		Keywords:   append(StringList{}, m.Keywords...),
	}
	if m.Dates != nil {
		snap.DateRange = &DateRangeSnapshot{
			StartDate: m.Dates.Start.Format(memoryDateLayout),
			EndDate:   m.Dates.End.Format(memoryDateLayout),
		}
	}
	return snap
}

// MemoryFromSnapshot rebuilds a Memory from caller input, sanitizing rather
// than rejecting: bad date strings drop the range, blank strings and
// non-positive guest counts become nil.
func MemoryFromSnapshot(snap *MemorySnapshot) Memory {
	if snap == nil {
		return Memory{}
	}
	mem := Memory{}
	if snap.Location != nil && strings.TrimSpace(*snap.Location) != "" {
		loc := strings.TrimSpace(*snap.Location)
		mem.Location = &loc
	}
	if snap.Category != nil && strings.TrimSpace(*snap.Category) != "" {
		cat := strings.TrimSpace(*snap.Category)
		mem.Category = &cat
	}
	if snap.GuestCount != nil && *snap.GuestCount > 0 {
		n := *snap.GuestCount
		mem.GuestCount = &n
	}
	if snap.DateRange != nil {
		start, errS := time.Parse(memoryDateLayout, snap.DateRange.StartDate)
		end, errE := time.Parse(memoryDateLayout, snap.DateRange.EndDate)
		if errS == nil && errE == nil && !end.Before(start) {
			mem.Dates = &DateRange{Start: start, End: end}
		}
	}
	for _, kw := range snap.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			mem.Keywords = append(mem.Keywords, kw)
		}
	}
	return mem
}
