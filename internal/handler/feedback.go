package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
	"github.com/nossumusTM/vinvinio-sub003/internal/service"
)

// FeedbackHandler records user actions against earlier searches.
type FeedbackHandler struct {
	chat *service.ChatService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(chat *service.ChatService) *FeedbackHandler {
	return &FeedbackHandler{chat: chat}
}

var validActions = map[string]bool{
	"click": true,
	"save":  true,
	"book":  true,
}

// Submit handles POST /api/v1/feedback.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !validActions[req.Action] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be one of: click, save, book"})
		return
	}

	if err := h.chat.LogFeedback(c.Request.Context(), req.SearchID, req.ListingID, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log feedback: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
