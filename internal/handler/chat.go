package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
	"github.com/nossumusTM/vinvinio-sub003/internal/service"
	"github.com/nossumusTM/vinvinio-sub003/internal/session"
)

// ChatHandler handles the concierge HTTP surface.
type ChatHandler struct {
	chat     *service.ChatService
	sessions session.Store
	logger   *zap.SugaredLogger
}

// NewChatHandler creates a new chat handler; sessions may be nil when only
// explicit memory round-tripping is wanted.
func NewChatHandler(chat *service.ChatService, sessions session.Store, logger *zap.SugaredLogger) *ChatHandler {
	return &ChatHandler{chat: chat, sessions: sessions, logger: logger}
}

// Chat handles POST /api/v1/concierge/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()

	// sessionId is an alternative to echoing the memory snapshot; explicit
	// memory wins when both are present
	sessionID := req.SessionID
	if h.sessions != nil {
		if sessionID == "" {
			sessionID = uuid.NewString()
		} else if req.Memory == nil {
			snap, err := h.sessions.Load(ctx, sessionID)
			if err != nil {
				h.logger.Warnw("session load failed", "session_id", sessionID, "error", err)
			} else {
				req.Memory = snap
			}
		}
	}

	resp, err := h.chat.Respond(ctx, &req, c.GetString("userID"))
	if err != nil {
		h.logger.Errorw("chat turn failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	if h.sessions != nil {
		resp.SessionID = sessionID
		if err := h.sessions.Save(ctx, sessionID, resp.Memory); err != nil {
			h.logger.Warnw("session save failed", "session_id", sessionID, "error", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetListing handles GET /api/v1/listings/:slug.
func (h *ChatHandler) GetListing(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing listing slug"})
		return
	}

	listing, err := h.chat.GetListing(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing: " + err.Error()})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}
