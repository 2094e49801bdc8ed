package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"practice-service/internal/mastery"
	"practice-service/internal/models"
	"practice-service/internal/repository"
)

type fakeTopicStore struct {
	topics map[string]models.Topic
}

func (f *fakeTopicStore) FindAll(ctx context.Context) ([]models.Topic, error) {
	var out []models.Topic
	for _, t := range f.topics {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTopicStore) FindByID(ctx context.Context, id string) (*models.Topic, error) {
	if t, ok := f.topics[id]; ok {
		return &t, nil
	}
	return nil, nil
}

type fakeQuestionIndex struct {
	byTopic map[string][]models.Question
}

func (f *fakeQuestionIndex) IDsByTopic(ctx context.Context, topicID string) ([]string, error) {
	var ids []string
	for _, q := range f.byTopic[topicID] {
		ids = append(ids, q.ID)
	}
	return ids, nil
}

func (f *fakeQuestionIndex) ByIDs(ctx context.Context, topicID string, ids []string) ([]models.Question, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Question
	for _, q := range f.byTopic[topicID] {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionIndex) CountByTopic(ctx context.Context, topicID string) (int64, error) {
	return int64(len(f.byTopic[topicID])), nil
}

type fakeProgressStore struct {
	records       map[string]*models.TopicProgress
	conflictsLeft int
	saves         int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]*models.TopicProgress{}}
}

func progressKey(userID, topicID string) string {
	return userID + "|" + topicID
}

func (f *fakeProgressStore) Find(ctx context.Context, userID, topicID string) (*models.TopicProgress, error) {
	record, ok := f.records[progressKey(userID, topicID)]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakeProgressStore) Save(ctx context.Context, p *models.TopicProgress) error {
	f.saves++
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return repository.ErrConflict
	}
	p.Version++
	copied := *p
	f.records[progressKey(p.UserID, p.TopicID)] = &copied
	return nil
}

func (f *fakeProgressStore) FindAllForUser(ctx context.Context, userID string) ([]models.TopicProgress, error) {
	var out []models.TopicProgress
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeProgressStore) ResetTopic(ctx context.Context, userID, topicID string) error {
	if record, ok := f.records[progressKey(userID, topicID)]; ok {
		record.MistakeIDs = []string{}
		record.MasteredIDs = []string{}
	}
	return nil
}

func (f *fakeProgressStore) ResetAllForUser(ctx context.Context, userID string) error {
	for _, record := range f.records {
		if record.UserID == userID {
			record.MistakeIDs = []string{}
			record.MasteredIDs = []string{}
		}
	}
	return nil
}

func (f *fakeProgressStore) ClearFavorites(ctx context.Context, userID, topicID string) error {
	if record, ok := f.records[progressKey(userID, topicID)]; ok {
		record.FavoriteIDs = []string{}
	}
	return nil
}

func (f *fakeProgressStore) DeleteAllForUser(ctx context.Context, userID string) error {
	for key, record := range f.records {
		if record.UserID == userID {
			delete(f.records, key)
		}
	}
	return nil
}

func newQuizFixture(questionCount int) (*QuizService, *fakeProgressStore) {
	questions := make([]models.Question, 0, 10)
	for i := 1; i <= 10; i++ {
		questions = append(questions, models.Question{
			ID:      fmt.Sprintf("q%d", i),
			TopicID: "go-basics",
			Content: fmt.Sprintf("question %d", i),
			Answer:  "42",
		})
	}

	topics := &fakeTopicStore{topics: map[string]models.Topic{
		"go-basics": {ID: "go-basics", Name: "Go Basics"},
	}}
	index := &fakeQuestionIndex{byTopic: map[string][]models.Question{"go-basics": questions}}
	progress := newFakeProgressStore()

	return NewQuizService(topics, index, progress, questionCount), progress
}

func TestGetQuiz_SamplesFromRemaining(t *testing.T) {
	svc, _ := newQuizFixture(5)

	view, err := svc.GetQuiz(context.Background(), "u1", "go-basics", mastery.ModeRemaining)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.TopicName != "Go Basics" {
		t.Errorf("expected topic name, got %q", view.TopicName)
	}
	if len(view.Questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(view.Questions))
	}
	if view.TotalAvailable != 10 {
		t.Errorf("expected 10 available, got %d", view.TotalAvailable)
	}
	seen := map[string]bool{}
	for _, q := range view.Questions {
		if seen[q.ID] {
			t.Errorf("duplicate question %q in quiz", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGetQuiz_EmptyBucketIsValid(t *testing.T) {
	svc, _ := newQuizFixture(5)

	view, err := svc.GetQuiz(context.Background(), "u1", "go-basics", mastery.ModeMistakes)
	if err != nil {
		t.Fatalf("expected empty quiz, got error: %v", err)
	}
	if len(view.Questions) != 0 || view.TotalAvailable != 0 {
		t.Errorf("expected empty quiz, got %d questions, %d available",
			len(view.Questions), view.TotalAvailable)
	}
}

func TestGetQuiz_TopicNotFound(t *testing.T) {
	svc, _ := newQuizFixture(5)

	_, err := svc.GetQuiz(context.Background(), "u1", "missing", mastery.ModeRemaining)
	if !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestSubmitResults_CreatesRecordLazily(t *testing.T) {
	svc, progress := newQuizFixture(5)

	err := svc.SubmitResults(context.Background(), "u1", "go-basics", mastery.ModeRemaining,
		[]mastery.Outcome{
			{QuestionID: "q1", IsCorrect: true},
			{QuestionID: "q2", IsCorrect: false},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, _ := progress.Find(context.Background(), "u1", "go-basics")
	if record == nil {
		t.Fatal("expected a progress record to be created")
	}
	if len(record.MasteredIDs) != 1 || record.MasteredIDs[0] != "q1" {
		t.Errorf("expected mastered [q1], got %v", record.MasteredIDs)
	}
	if len(record.MistakeIDs) != 1 || record.MistakeIDs[0] != "q2" {
		t.Errorf("expected mistakes [q2], got %v", record.MistakeIDs)
	}
}

func TestSubmitResults_RetriesOnceOnConflict(t *testing.T) {
	svc, progress := newQuizFixture(5)
	progress.conflictsLeft = 1

	err := svc.SubmitResults(context.Background(), "u1", "go-basics", mastery.ModeRemaining,
		[]mastery.Outcome{{QuestionID: "q1", IsCorrect: true}})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if progress.saves != 2 {
		t.Errorf("expected 2 save attempts, got %d", progress.saves)
	}
}

func TestSubmitResults_SurfacesRepeatedConflict(t *testing.T) {
	svc, progress := newQuizFixture(5)
	progress.conflictsLeft = 2

	err := svc.SubmitResults(context.Background(), "u1", "go-basics", mastery.ModeRemaining,
		[]mastery.Outcome{{QuestionID: "q1", IsCorrect: true}})
	if !errors.Is(err, repository.ErrConflict) {
		t.Errorf("expected ErrConflict after retry budget, got %v", err)
	}
	if progress.saves != 2 {
		t.Errorf("expected exactly 2 save attempts, got %d", progress.saves)
	}
}

func TestSubmitResults_ResubmissionIsIdempotent(t *testing.T) {
	svc, progress := newQuizFixture(5)
	outcomes := []mastery.Outcome{
		{QuestionID: "q1", IsCorrect: true},
		{QuestionID: "q2", IsCorrect: false},
	}

	for i := 0; i < 2; i++ {
		if err := svc.SubmitResults(context.Background(), "u1", "go-basics", mastery.ModeRemaining, outcomes); err != nil {
			t.Fatalf("submission %d: %v", i+1, err)
		}
	}

	record, _ := progress.Find(context.Background(), "u1", "go-basics")
	if len(record.MasteredIDs) != 1 || len(record.MistakeIDs) != 1 {
		t.Errorf("resubmission changed state: mastered=%v mistakes=%v",
			record.MasteredIDs, record.MistakeIDs)
	}
}

func TestSubmitResults_InvalidModeRejected(t *testing.T) {
	svc, progress := newQuizFixture(5)

	err := svc.SubmitResults(context.Background(), "u1", "go-basics", "cram",
		[]mastery.Outcome{{QuestionID: "q1", IsCorrect: true}})
	if !errors.Is(err, mastery.ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
	if progress.saves != 0 {
		t.Errorf("invalid mode must not reach the store, got %d saves", progress.saves)
	}
}
