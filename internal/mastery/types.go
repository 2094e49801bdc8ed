package mastery

import "errors"

// Mode identifies which bucket of a topic a quiz session draws from.
type Mode string

const (
	ModeRemaining Mode = "remaining"
	ModeMistakes  Mode = "mistakes"
	ModeMastered  Mode = "mastered"
)

// ErrInvalidMode is returned for any mode outside the three quiz modes.
// It is rejected before any storage access happens.
var ErrInvalidMode = errors.New("invalid quiz mode")

// ParseMode validates a raw mode string coming from a request path or body.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeRemaining, ModeMistakes, ModeMastered:
		return Mode(raw), nil
	}
	return "", ErrInvalidMode
}

// Outcome is a single observed answer from a completed quiz.
type Outcome struct {
	QuestionID string `json:"question_id"`
	IsCorrect  bool   `json:"is_correct"`
}

// Progress holds one user's mastery state for one topic.
// Mistakes and Mastered are kept mutually exclusive by Apply;
// Favorites is independent and may overlap either.
type Progress struct {
	Mistakes  Set
	Mastered  Set
	Favorites Set
}

// NewProgress returns an empty progress record, the lazy default for a
// (user, topic) pair that has never been interacted with.
func NewProgress() *Progress {
	return &Progress{
		Mistakes:  NewSet(),
		Mastered:  NewSet(),
		Favorites: NewSet(),
	}
}
