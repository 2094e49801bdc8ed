package handlers

import (
	"net/http"

	"practice-service/internal/mastery"
	"practice-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

type submitQuizRequest struct {
	TopicID string            `json:"topic_id" binding:"required"`
	Mode    string            `json:"mode" binding:"required"`
	Results []mastery.Outcome `json:"results" binding:"required"`
}

// GetQuiz builds a quiz for /quiz/:topicId/:mode.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	mode, err := mastery.ParseMode(c.Param("mode"))
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.Service.GetQuiz(c.Request.Context(), userID(c), c.Param("topicId"), mode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitQuiz applies a completed quiz's outcomes to the user's progress.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	mode, err := mastery.ParseMode(req.Mode)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Service.SubmitResults(c.Request.Context(), userID(c), req.TopicID, mode, req.Results); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
