package selection

import (
	"math/rand"
	"time"

	"practice-service/internal/mastery"
)

// DefaultQuestionCount is the quiz size used when no limit is configured.
const DefaultQuestionCount = 5

// Result carries the sampled question ids together with the size of the
// bucket they were drawn from, so callers can show "5 of 23".
type Result struct {
	QuestionIDs    []string `json:"question_ids"`
	TotalAvailable int      `json:"total_available"`
}

// Selector draws uniformly random quiz samples from a classification bucket.
type Selector struct {
	rand *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select draws min(|bucket|, maxSize) distinct ids from the bucket the mode
// maps to, in random order. Each call is independently randomized. An empty
// bucket yields an empty result, not an error; the classification itself is
// never mutated. maxSize values below 1 fall back to DefaultQuestionCount.
func (s *Selector) Select(mode mastery.Mode, c *mastery.Classification, maxSize int) (*Result, error) {
	bucket, err := c.ForMode(mode)
	if err != nil {
		return nil, err
	}
	if maxSize < 1 {
		maxSize = DefaultQuestionCount
	}

	ids := bucket.IDs()
	s.rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	count := maxSize
	if count > len(ids) {
		count = len(ids)
	}

	return &Result{
		QuestionIDs:    ids[:count],
		TotalAvailable: bucket.Len(),
	}, nil
}
