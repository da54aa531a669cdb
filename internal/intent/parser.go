package intent

import (
	"strings"
	"time"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// Parser runs every slot extractor over the latest user turn. Extractors are
// independent and never fail: an unmatched slot is simply absent. The clock is
// injectable so year-defaulting stays testable.
type Parser struct {
	now func() time.Time
}

func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserAt pins the parser clock, for tests and replays.
func NewParserAt(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// Parse extracts this turn's slots from the transcript. Only the latest user
// turn is parsed; the preceding assistant turn is consulted for the bare
// guest-count answer.
func (p *Parser) Parse(turns []model.ConversationTurn) model.Memory {
	userText, assistantText := latestTurns(turns)
	if strings.TrimSpace(userText) == "" {
		return model.Memory{}
	}

	slots := model.Memory{
		Location: ExtractLocation(userText),
		Category: ExtractCategory(userText),
		Dates:    ExtractDateRange(userText, p.now()),
		Keywords: ExtractKeywords(userText),
	}

	slots.GuestCount = ExtractGuestCount(userText)
	if slots.GuestCount == nil {
		slots.GuestCount = GuestCountFromContext(assistantText, userText)
	}
	return slots
}

// latestTurns returns the newest user turn and the assistant turn immediately
// before it.
func latestTurns(turns []model.ConversationTurn) (user, assistant string) {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role != model.RoleUser {
			continue
		}
		user = turns[i].Content
		if i > 0 && turns[i-1].Role == model.RoleAssistant {
			assistant = turns[i-1].Content
		}
		return user, assistant
	}
	return "", ""
}
