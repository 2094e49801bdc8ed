package service

import (
	"context"
	"errors"
	"testing"

	"practice-service/internal/mastery"
	"practice-service/internal/models"
)

func newProgressFixture() (*ProgressService, *fakeProgressStore) {
	topics := &fakeTopicStore{topics: map[string]models.Topic{
		"go-basics": {ID: "go-basics", Name: "Go Basics"},
	}}
	index := &fakeQuestionIndex{byTopic: map[string][]models.Question{
		"go-basics": {
			{ID: "q1", TopicID: "go-basics", Content: "one"},
			{ID: "q2", TopicID: "go-basics", Content: "two"},
		},
	}}
	progress := newFakeProgressStore()
	return NewProgressService(topics, index, progress), progress
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	svc, _ := newProgressFixture()
	ctx := context.Background()

	isFavorite, err := svc.ToggleFavorite(ctx, "u1", "go-basics", "q1")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !isFavorite {
		t.Error("first toggle: expected true")
	}

	favorites, err := svc.Favorites(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].ID != "q1" {
		t.Errorf("expected [q1], got %v", favorites)
	}

	isFavorite, err = svc.ToggleFavorite(ctx, "u1", "go-basics", "q1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if isFavorite {
		t.Error("second toggle: expected false")
	}

	favorites, err = svc.Favorites(ctx, "u1", "go-basics")
	if err != nil {
		t.Fatalf("favorites after untoggle: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("expected no favorites, got %v", favorites)
	}
}

func TestToggleFavorite_TopicNotFound(t *testing.T) {
	svc, _ := newProgressFixture()

	_, err := svc.ToggleFavorite(context.Background(), "u1", "missing", "q1")
	if !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestResetTopic_KeepsFavorites(t *testing.T) {
	svc, store := newProgressFixture()
	ctx := context.Background()

	record := models.NewTopicProgress("u1", "go-basics")
	record.MistakeIDs = []string{"q1"}
	record.MasteredIDs = []string{"q2"}
	record.FavoriteIDs = []string{"q1"}
	record.Version = 1
	store.records[progressKey("u1", "go-basics")] = record

	if err := svc.ResetTopic(ctx, "u1", "go-basics"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	after, _ := store.Find(ctx, "u1", "go-basics")
	if len(after.MistakeIDs) != 0 || len(after.MasteredIDs) != 0 {
		t.Errorf("expected cleared mastery state, got mistakes=%v mastered=%v",
			after.MistakeIDs, after.MasteredIDs)
	}
	if len(after.FavoriteIDs) != 1 {
		t.Errorf("reset must keep favorites, got %v", after.FavoriteIDs)
	}
}

func TestStats_AggregatesAcrossTopics(t *testing.T) {
	svc, store := newProgressFixture()
	ctx := context.Background()

	first := models.NewTopicProgress("u1", "go-basics")
	first.MasteredIDs = []string{"q1", "q2"}
	first.MistakeIDs = []string{"q3"}
	first.Version = 1
	store.records[progressKey("u1", "go-basics")] = first

	second := models.NewTopicProgress("u1", "slices")
	second.MasteredIDs = []string{"s1"}
	second.Version = 1
	store.records[progressKey("u1", "slices")] = second

	stats, err := svc.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalMastered != 3 {
		t.Errorf("expected 3 mastered, got %d", stats.TotalMastered)
	}
	if stats.TotalMistakes != 1 {
		t.Errorf("expected 1 mistake, got %d", stats.TotalMistakes)
	}
	if stats.TopicsStarted != 2 {
		t.Errorf("expected 2 topics started, got %d", stats.TopicsStarted)
	}
}

// Favorite toggles and quiz submissions interleave on the same record
// without ever violating the mistake/mastered exclusivity.
func TestProgressAndQuizInterleave(t *testing.T) {
	topics := &fakeTopicStore{topics: map[string]models.Topic{
		"go-basics": {ID: "go-basics", Name: "Go Basics"},
	}}
	index := &fakeQuestionIndex{byTopic: map[string][]models.Question{
		"go-basics": {{ID: "q1", TopicID: "go-basics"}},
	}}
	store := newFakeProgressStore()
	quizSvc := NewQuizService(topics, index, store, 5)
	progSvc := NewProgressService(topics, index, store)
	ctx := context.Background()

	if _, err := progSvc.ToggleFavorite(ctx, "u1", "go-basics", "q1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := quizSvc.SubmitResults(ctx, "u1", "go-basics", mastery.ModeRemaining,
		[]mastery.Outcome{{QuestionID: "q1", IsCorrect: false}}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := quizSvc.SubmitResults(ctx, "u1", "go-basics", mastery.ModeMistakes,
		[]mastery.Outcome{{QuestionID: "q1", IsCorrect: true}}); err != nil {
		t.Fatalf("review: %v", err)
	}

	record, _ := store.Find(ctx, "u1", "go-basics")
	if len(record.MistakeIDs) != 0 || len(record.MasteredIDs) != 0 {
		t.Errorf("expected q1 back in remaining, got mistakes=%v mastered=%v",
			record.MistakeIDs, record.MasteredIDs)
	}
	if len(record.FavoriteIDs) != 1 {
		t.Errorf("favorite lost across submissions: %v", record.FavoriteIDs)
	}
}
