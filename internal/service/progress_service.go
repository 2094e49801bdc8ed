package service

import (
	"context"
	"errors"
	"fmt"

	"practice-service/internal/mastery"
	"practice-service/internal/models"
	"practice-service/internal/repository"
)

// ProgressService covers the progress operations outside quiz flow:
// favorites, resets and aggregate stats.
type ProgressService struct {
	Topics    TopicStore
	Questions QuestionIndex
	Progress  ProgressStore
}

func NewProgressService(topics TopicStore, questions QuestionIndex, progress ProgressStore) *ProgressService {
	return &ProgressService{Topics: topics, Questions: questions, Progress: progress}
}

// ToggleFavorite flips the favorite state of a question and reports the new
// state. It runs the same optimistic read-modify-write loop as quiz
// submission; on a lost race the toggle is recomputed from the fresh read.
func (s *ProgressService) ToggleFavorite(ctx context.Context, userID, topicID, questionID string) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := s.requireTopic(ctx, topicID); err != nil {
		return false, err
	}

	for attempt := 0; ; attempt++ {
		record, err := s.Progress.Find(ctx, userID, topicID)
		if err != nil {
			return false, fmt.Errorf("load progress: %w", err)
		}
		if record == nil {
			record = models.NewTopicProgress(userID, topicID)
		}

		state := stateOf(record)
		isFavorite := mastery.ToggleFavorite(state, questionID)
		storeState(record, state)

		err = s.Progress.Save(ctx, record)
		if err == nil {
			return isFavorite, nil
		}
		if !errors.Is(err, repository.ErrConflict) || attempt > 0 {
			return false, err
		}
	}
}

// Favorites returns the question payloads the user has favorited in a topic.
func (s *ProgressService) Favorites(ctx context.Context, userID, topicID string) ([]models.Question, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := s.requireTopic(ctx, topicID); err != nil {
		return nil, err
	}

	record, err := s.Progress.Find(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if record == nil || len(record.FavoriteIDs) == 0 {
		return []models.Question{}, nil
	}
	return s.Questions.ByIDs(ctx, topicID, record.FavoriteIDs)
}

func (s *ProgressService) ClearFavorites(ctx context.Context, userID, topicID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := s.requireTopic(ctx, topicID); err != nil {
		return err
	}
	return s.Progress.ClearFavorites(ctx, userID, topicID)
}

// ResetTopic clears the mistake and mastered sets for one topic; favorites
// are kept.
func (s *ProgressService) ResetTopic(ctx context.Context, userID, topicID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := s.requireTopic(ctx, topicID); err != nil {
		return err
	}
	return s.Progress.ResetTopic(ctx, userID, topicID)
}

// ResetAll clears mastery state across every topic the user has touched.
func (s *ProgressService) ResetAll(ctx context.Context, userID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.Progress.ResetAllForUser(ctx, userID)
}

// Stats aggregates raw set sizes across the user's progress records.
func (s *ProgressService) Stats(ctx context.Context, userID string) (*models.UserStats, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	records, err := s.Progress.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	stats := &models.UserStats{TopicsStarted: len(records)}
	for _, record := range records {
		stats.TotalMastered += len(record.MasteredIDs)
		stats.TotalMistakes += len(record.MistakeIDs)
	}
	return stats, nil
}

func (s *ProgressService) requireTopic(ctx context.Context, topicID string) error {
	topic, err := s.Topics.FindByID(ctx, topicID)
	if err != nil {
		return fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return ErrTopicNotFound
	}
	return nil
}
