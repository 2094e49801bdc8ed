package service

import (
	"context"
	"fmt"

	"practice-service/internal/mastery"
	"practice-service/internal/models"
)

type TopicService struct {
	Topics    TopicStore
	Questions QuestionIndex
	Progress  ProgressStore
}

func NewTopicService(topics TopicStore, questions QuestionIndex, progress ProgressStore) *TopicService {
	return &TopicService{Topics: topics, Questions: questions, Progress: progress}
}

// ListPublic returns the topic catalog with question counts, no user state.
func (s *TopicService) ListPublic(ctx context.Context) ([]models.TopicSummary, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	topics, err := s.Topics.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}

	summaries := make([]models.TopicSummary, 0, len(topics))
	for _, topic := range topics {
		count, err := s.Questions.CountByTopic(ctx, topic.ID)
		if err != nil {
			return nil, fmt.Errorf("count questions for %s: %w", topic.ID, err)
		}
		summaries = append(summaries, models.TopicSummary{
			ID:            topic.ID,
			Name:          topic.Name,
			QuestionCount: int(count),
		})
	}
	return summaries, nil
}

// GetPublic returns one catalog entry.
func (s *TopicService) GetPublic(ctx context.Context, topicID string) (*models.TopicSummary, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	topic, err := s.Topics.FindByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	count, err := s.Questions.CountByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	return &models.TopicSummary{ID: topic.ID, Name: topic.Name, QuestionCount: int(count)}, nil
}

// ListForUser annotates every topic with the user's bucket counts. Counts
// come from the classifier, so progress entries for retired questions do
// not inflate them.
func (s *TopicService) ListForUser(ctx context.Context, userID string) ([]models.TopicProgressSummary, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	topics, err := s.Topics.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}

	records, err := s.Progress.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	byTopic := make(map[string]*models.TopicProgress, len(records))
	for i := range records {
		byTopic[records[i].TopicID] = &records[i]
	}

	summaries := make([]models.TopicProgressSummary, 0, len(topics))
	for _, topic := range topics {
		ids, err := s.Questions.IDsByTopic(ctx, topic.ID)
		if err != nil {
			return nil, fmt.Errorf("load question ids for %s: %w", topic.ID, err)
		}

		record := byTopic[topic.ID]
		classification := mastery.Classify(ids, stateOf(record))

		summary := models.TopicProgressSummary{
			ID:             topic.ID,
			Name:           topic.Name,
			TotalQuestions: len(ids),
			Remaining:      classification.Remaining.Len(),
			Mistakes:       classification.Mistakes.Len(),
			Mastered:       classification.Mastered.Len(),
		}
		if record != nil {
			summary.FavoriteCount = len(record.FavoriteIDs)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
