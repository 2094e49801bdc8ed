package service

import (
	"context"
	"errors"
	"time"

	"practice-service/internal/models"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrUserNotFound  = errors.New("user not found")
)

// Store calls never block indefinitely; a failed submission is retried
// wholesale by the caller.
const storeTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// TopicStore is the slice of the topic repository the services consume.
type TopicStore interface {
	FindAll(ctx context.Context) ([]models.Topic, error)
	FindByID(ctx context.Context, id string) (*models.Topic, error)
}

// QuestionIndex is the read-only view of the question bank: ids per topic,
// plus payload lookup for the ids a quiz actually selected.
type QuestionIndex interface {
	IDsByTopic(ctx context.Context, topicID string) ([]string, error)
	ByIDs(ctx context.Context, topicID string, ids []string) ([]models.Question, error)
	CountByTopic(ctx context.Context, topicID string) (int64, error)
}

// ProgressStore is the durable per-(user, topic) record store. Find returns
// nil for a record that does not exist yet; Save must reject a write that
// lost a race with repository.ErrConflict.
type ProgressStore interface {
	Find(ctx context.Context, userID, topicID string) (*models.TopicProgress, error)
	Save(ctx context.Context, p *models.TopicProgress) error
	FindAllForUser(ctx context.Context, userID string) ([]models.TopicProgress, error)
	ResetTopic(ctx context.Context, userID, topicID string) error
	ResetAllForUser(ctx context.Context, userID string) error
	ClearFavorites(ctx context.Context, userID, topicID string) error
	DeleteAllForUser(ctx context.Context, userID string) error
}
