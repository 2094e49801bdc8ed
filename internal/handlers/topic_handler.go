package handlers

import (
	"net/http"

	"practice-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	Service *service.TopicService
}

func NewTopicHandler(s *service.TopicService) *TopicHandler {
	return &TopicHandler{Service: s}
}

// ListPublicTopics returns the catalog without any user state.
func (h *TopicHandler) ListPublicTopics(c *gin.Context) {
	topics, err := h.Service.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *TopicHandler) GetPublicTopic(c *gin.Context) {
	topic, err := h.Service.GetPublic(c.Request.Context(), c.Param("topicId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// ListTopics returns every topic annotated with the caller's bucket counts.
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.Service.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}
