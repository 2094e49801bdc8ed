package mastery

// Classification is the three-way partition of a topic's question ids for
// one user: every id is in exactly one of the three sets.
type Classification struct {
	Remaining Set
	Mistakes  Set
	Mastered  Set
}

// Classify partitions topicQuestionIDs against the given progress.
// Progress entries for ids no longer in the topic are silently dropped,
// so a retired question can never surface in a quiz. The inputs are not
// mutated.
func Classify(topicQuestionIDs []string, p *Progress) *Classification {
	c := &Classification{
		Remaining: NewSet(),
		Mistakes:  NewSet(),
		Mastered:  NewSet(),
	}
	for _, id := range topicQuestionIDs {
		switch {
		case p != nil && p.Mistakes.Has(id):
			c.Mistakes.Add(id)
		case p != nil && p.Mastered.Has(id):
			c.Mastered.Add(id)
		default:
			c.Remaining.Add(id)
		}
	}
	return c
}

// ForMode returns the bucket a quiz in the given mode draws from.
func (c *Classification) ForMode(mode Mode) (Set, error) {
	switch mode {
	case ModeRemaining:
		return c.Remaining, nil
	case ModeMistakes:
		return c.Mistakes, nil
	case ModeMastered:
		return c.Mastered, nil
	}
	return nil, ErrInvalidMode
}
