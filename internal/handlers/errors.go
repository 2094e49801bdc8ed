package handlers

import (
	"errors"
	"net/http"

	"practice-service/internal/mastery"
	"practice-service/internal/repository"
	"practice-service/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mastery.ErrInvalidMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz mode"})
	case errors.Is(err, service.ErrTopicNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Progress was updated concurrently, retry the submission"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func userID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
