package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nossumusTM/vinvinio-sub003/internal/config"
	"github.com/nossumusTM/vinvinio-sub003/internal/intent"
	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// Catalog is the listing store collaborator. Search applies one tier's filter
// set and returns up to FilterSet.Limit approved candidates with review
// aggregates attached.
type Catalog interface {
	Search(ctx context.Context, filter model.FilterSet) ([]model.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*model.Listing, error)
}

// SearchLogger records search analytics; failures are logged, never surfaced.
type SearchLogger interface {
	LogSearch(ctx context.Context, entry model.SearchLog) error
	LogFeedback(ctx context.Context, searchID string, listingID int64, action string) error
}

// ProfileSource exposes the caller's free-text interests for the suggestion
// branch. Optional: a nil source simply prompts the user for hobbies.
type ProfileSource interface {
	Interests(ctx context.Context, userID string) ([]string, error)
}

// ChatService turns a transcript plus prior memory into criteria and ranked
// recommendations. It holds no per-conversation state; everything round-trips
// through the request.
type ChatService struct {
	catalog      Catalog
	logs         SearchLogger
	profiles     ProfileSource
	parser       *intent.Parser
	ranker       *Ranker
	logger       *zap.SugaredLogger
	defaultLimit int
	maxLimit     int
	candidateCap int
	historyLen   int
}

// NewChatService wires the engine. logs and profiles may be nil.
func NewChatService(
	catalog Catalog,
	logs SearchLogger,
	profiles ProfileSource,
	parser *intent.Parser,
	ranker *Ranker,
	searchCfg config.SearchConfig,
	logger *zap.SugaredLogger,
) *ChatService {
	return &ChatService{
		catalog:      catalog,
		logs:         logs,
		profiles:     profiles,
		parser:       parser,
		ranker:       ranker,
		logger:       logger,
		defaultLimit: searchCfg.DefaultLimit,
		maxLimit:     searchCfg.MaxLimit,
		candidateCap: searchCfg.CandidateCap,
		historyLen:   searchCfg.HistoryWindow,
	}
}

// Respond handles one conversational turn end to end: extract, merge, gate,
// search through the tier cascade, rank, paginate and compose the reply.
// userID is optional and only feeds the hobby branch.
func (s *ChatService) Respond(ctx context.Context, req *model.ChatRequest, userID string) (*model.ChatResponse, error) {
	started := time.Now()

	turns := trimTranscript(req.Messages, s.historyLen)
	prior := model.MemoryFromSnapshot(req.Memory)

	extracted := s.parser.Parse(turns)
	merged := intent.Merge(prior, extracted)
	missing := intent.MissingFields(merged)

	resp := &model.ChatResponse{
		Recommendations: []model.Recommendation{},
		CriteriaMet:     len(missing) == 0,
		MissingFields:   missingOrEmpty(missing),
		Memory:          merged.Snapshot(),
	}

	userText := latestUserText(turns)
	if strings.TrimSpace(userText) == "" {
		resp.Reply = invitationReply
		return finishTurn(resp, req.Mode)
	}

	// suggestion branch: never touches the catalog
	if isHobbyPrompt(userText) && merged.Location != nil {
		resp.Reply = s.hobbyReply(ctx, *merged.Location, userID)
		return finishTurn(resp, req.Mode)
	}

	if len(missing) > 0 {
		resp.Reply = composeMissingReply(merged, missing)
		return finishTurn(resp, req.Mode)
	}

	offset, limit := s.clampPage(req.Offset, req.Limit)

	tier, candidates, err := s.runTiers(ctx, merged)
	if err != nil {
		return nil, err
	}
	if tier == "" {
		resp.Reply = noResultsReply
		return finishTurn(resp, req.Mode)
	}

	ranked := s.ranker.Rank(candidates, merged)
	page, hasMore := paginate(ranked, offset, limit)

	resp.HasMore = hasMore
	resp.Recommendations = make([]model.Recommendation, 0, len(page))
	for _, r := range page {
		resp.Recommendations = append(resp.Recommendations, r.ToRecommendation())
	}
	resp.Reply = composeTierReply(tier, merged, len(ranked))

	resp.SearchID = s.recordSearch(userText, merged, tier, len(ranked), time.Since(started))
	return finishTurn(resp, req.Mode)
}

// finishTurn applies branch-independent response shaping: recommendations
// mode drops the conversational reply no matter which branch composed it.
func finishTurn(resp *model.ChatResponse, mode string) (*model.ChatResponse, error) {
	if mode == model.ModeRecommendations {
		resp.Reply = ""
	}
	return resp, nil
}

// GetListing retrieves a single listing by slug.
func (s *ChatService) GetListing(ctx context.Context, slug string) (*model.Listing, error) {
	return s.catalog.GetBySlug(ctx, slug)
}

// LogFeedback records a user action against an earlier search.
func (s *ChatService) LogFeedback(ctx context.Context, searchID string, listingID int64, action string) error {
	if s.logs == nil {
		return nil
	}
	return s.logs.LogFeedback(ctx, searchID, listingID, action)
}

func (s *ChatService) hobbyReply(ctx context.Context, location, userID string) string {
	var interests []string
	if s.profiles != nil && userID != "" {
		found, err := s.profiles.Interests(ctx, userID)
		if err != nil {
			s.logger.Warnw("profile lookup failed", "error", err)
		} else {
			interests = found
		}
	}
	return composeHobbyReply(location, interests)
}

// recordSearch writes the analytics row without blocking the response.
func (s *ChatService) recordSearch(query string, criteria model.Memory, tier model.QueryTier, results int, took time.Duration) string {
	if s.logs == nil {
		return ""
	}
	entry := model.SearchLog{
		ID:          uuid.NewString(),
		Query:       query,
		Criteria:    criteria.Snapshot(),
		Tier:        string(tier),
		ResultCount: results,
		TookMs:      took.Milliseconds(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.logs.LogSearch(ctx, entry); err != nil {
			s.logger.Warnw("search log failed", "search_id", entry.ID, "error", err)
		}
	}()
	return entry.ID
}

func (s *ChatService) clampPage(offset, limit int) (int, int) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

func trimTranscript(turns []model.ConversationTurn, window int) []model.ConversationTurn {
	if window > 0 && len(turns) > window {
		return turns[len(turns)-window:]
	}
	return turns
}

func latestUserText(turns []model.ConversationTurn) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == model.RoleUser {
			return turns[i].Content
		}
	}
	return ""
}

func missingOrEmpty(missing []string) []string {
	if missing == nil {
		return []string{}
	}
	return missing
}
