package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nossumusTM/vinvinio-sub003/internal/config"
	"github.com/nossumusTM/vinvinio-sub003/internal/intent"
	"github.com/nossumusTM/vinvinio-sub003/internal/model"
	"github.com/nossumusTM/vinvinio-sub003/internal/service"
	"github.com/nossumusTM/vinvinio-sub003/internal/session"
)

// stubCatalog returns its fixed listing for every search.
type stubCatalog struct {
	listing model.Listing
}

func (c stubCatalog) Search(context.Context, model.FilterSet) ([]model.Listing, error) {
	return []model.Listing{c.listing}, nil
}

func (c stubCatalog) GetBySlug(_ context.Context, slug string) (*model.Listing, error) {
	if slug == c.listing.Slug {
		l := c.listing
		return &l, nil
	}
	return nil, nil
}

func testRouter(t *testing.T, sessions session.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := stubCatalog{listing: model.Listing{
		ID: 1, Slug: "rome-street-food", Title: "Rome Street Food Tour",
		Category: "Food, Drink & Culinary", LocationValue: "Rome, Italy",
		GuestCapacity: 8, Status: "approved", AvgRating: 4.7, ReviewCount: 100,
	}}
	svc := service.NewChatService(
		catalog, nil, nil,
		intent.NewParser(),
		service.NewRanker(config.RankingConfig{CategoryMatch: 5, LocationMatch: 4, BoostDivisor: 5, RatingMultiplier: 3, ReviewWeight: 0.1, ReviewCap: 50}),
		config.SearchConfig{DefaultLimit: 10, MaxLimit: 10, CandidateCap: 60, HistoryWindow: 18},
		zap.NewNop().Sugar(),
	)

	chat := NewChatHandler(svc, sessions, zap.NewNop().Sugar())
	feedback := NewFeedbackHandler(svc)

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/concierge/chat", chat.Chat)
	api.GET("/listings/:slug", chat.GetListing)
	api.POST("/feedback", feedback.Submit)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestChatRejectsMalformedJSON(t *testing.T) {
	router := testRouter(t, nil)
	w := postJSON(router, "/api/v1/concierge/chat", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatIncompleteCriteria(t *testing.T) {
	router := testRouter(t, nil)
	w := postJSON(router, "/api/v1/concierge/chat",
		`{"messages":[{"role":"user","content":"I want a food tour"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.CriteriaMet)
	assert.Contains(t, resp.MissingFields, "location")
	assert.Empty(t, resp.Recommendations)
	assert.NotEmpty(t, resp.Reply)
	assert.Empty(t, resp.SessionID, "no session store, no session id")
}

func TestChatSessionCarriesMemory(t *testing.T) {
	router := testRouter(t, session.NewInMemory(time.Minute))

	w := postJSON(router, "/api/v1/concierge/chat",
		`{"messages":[{"role":"user","content":"We're planning a food tour in Rome, Italy"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var first model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.NotEmpty(t, first.SessionID)
	assert.False(t, first.CriteriaMet)

	// second turn sends only the session id; location and category come
	// back from the store
	w = postJSON(router, "/api/v1/concierge/chat",
		`{"sessionId":"`+first.SessionID+`","messages":[{"role":"user","content":"2 people, from Jan 7 to Jan 10 2026"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var second model.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.True(t, second.CriteriaMet)
	require.NotNil(t, second.Memory.Location)
	assert.Equal(t, "Rome, Italy", *second.Memory.Location)
	require.Len(t, second.Recommendations, 1)
	assert.Equal(t, "rome-street-food", second.Recommendations[0].Slug)
}

func TestGetListing(t *testing.T) {
	router := testRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/listings/rome-street-food", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listing model.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, "Rome Street Food Tour", listing.Title)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/listings/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeedbackValidation(t *testing.T) {
	router := testRouter(t, nil)

	w := postJSON(router, "/api/v1/feedback", `{"searchId":"s-1","listingId":3,"action":"click"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/v1/feedback", `{"searchId":"s-1","listingId":3,"action":"teleport"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/v1/feedback", `{"listingId":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
