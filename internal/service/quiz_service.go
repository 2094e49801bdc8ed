package service

import (
	"context"
	"errors"
	"fmt"

	"practice-service/internal/mastery"
	"practice-service/internal/models"
	"practice-service/internal/repository"
	"practice-service/internal/selection"
)

type QuizService struct {
	Topics    TopicStore
	Questions QuestionIndex
	Progress  ProgressStore

	selector      *selection.Selector
	questionCount int
}

func NewQuizService(topics TopicStore, questions QuestionIndex, progress ProgressStore, questionCount int) *QuizService {
	if questionCount < 1 {
		questionCount = selection.DefaultQuestionCount
	}
	return &QuizService{
		Topics:        topics,
		Questions:     questions,
		Progress:      progress,
		selector:      selection.NewSelector(),
		questionCount: questionCount,
	}
}

// GetQuiz classifies the topic for the user, samples a quiz from the
// requested bucket and joins the sampled ids against the question bank.
// An exhausted bucket yields an empty question list, not an error.
func (s *QuizService) GetQuiz(ctx context.Context, userID, topicID string, mode mastery.Mode) (*models.QuizView, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	topic, err := s.Topics.FindByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	ids, err := s.Questions.IDsByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("load question ids: %w", err)
	}

	record, err := s.Progress.Find(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	classification := mastery.Classify(ids, stateOf(record))
	sample, err := s.selector.Select(mode, classification, s.questionCount)
	if err != nil {
		return nil, err
	}

	questions, err := s.Questions.ByIDs(ctx, topicID, sample.QuestionIDs)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	return &models.QuizView{
		TopicID:        topic.ID,
		TopicName:      topic.Name,
		Mode:           string(mode),
		Questions:      orderedBySample(questions, sample.QuestionIDs),
		TotalAvailable: sample.TotalAvailable,
	}, nil
}

// SubmitResults applies a completed quiz's outcomes to the user's progress
// record. The read-apply-write cycle runs under optimistic concurrency: a
// write that lost a race is retried once against a fresh read. The whole
// batch lands in a single document write, so it commits entirely or not at
// all, and replaying it is harmless.
func (s *QuizService) SubmitResults(ctx context.Context, userID, topicID string, mode mastery.Mode, outcomes []mastery.Outcome) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	topic, err := s.Topics.FindByID(ctx, topicID)
	if err != nil {
		return fmt.Errorf("load topic: %w", err)
	}
	if topic == nil {
		return ErrTopicNotFound
	}

	for attempt := 0; ; attempt++ {
		record, err := s.Progress.Find(ctx, userID, topicID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if record == nil {
			record = models.NewTopicProgress(userID, topicID)
		}

		state := stateOf(record)
		if err := mastery.Apply(mode, state, outcomes); err != nil {
			return err
		}
		storeState(record, state)

		err = s.Progress.Save(ctx, record)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrConflict) || attempt > 0 {
			return err
		}
	}
}

// orderedBySample restores the random sample order the store query lost.
func orderedBySample(questions []models.Question, sampleIDs []string) []models.Question {
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]models.Question, 0, len(sampleIDs))
	for _, id := range sampleIDs {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered
}
