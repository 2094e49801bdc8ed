package handlers

import (
	"net/http"

	"practice-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

type toggleFavoriteRequest struct {
	TopicID    string `json:"topic_id" binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
}

func (h *ProgressHandler) ToggleFavorite(c *gin.Context) {
	var req toggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	isFavorite, err := h.Service.ToggleFavorite(c.Request.Context(), userID(c), req.TopicID, req.QuestionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "is_favorite": isFavorite})
}

func (h *ProgressHandler) GetFavorites(c *gin.Context) {
	favorites, err := h.Service.Favorites(c.Request.Context(), userID(c), c.Param("topicId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *ProgressHandler) ClearFavorites(c *gin.Context) {
	if err := h.Service.ClearFavorites(c.Request.Context(), userID(c), c.Param("topicId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All favorites cleared"})
}

// ResetTopicProgress clears mastery state for one topic, keeping favorites.
func (h *ProgressHandler) ResetTopicProgress(c *gin.Context) {
	if err := h.Service.ResetTopic(c.Request.Context(), userID(c), c.Param("topicId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Progress reset successfully"})
}

// ResetAllProgress clears mastery state across every topic.
func (h *ProgressHandler) ResetAllProgress(c *gin.Context) {
	if err := h.Service.ResetAll(c.Request.Context(), userID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All progress reset successfully"})
}

func (h *ProgressHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
