package mastery

// Apply runs the mode-specific transition for every outcome of a completed
// quiz, in order, against p.
//
// In remaining mode a correct answer promotes the question to mastered and
// an incorrect one demotes it to mistakes. Reviewing a mistake correctly
// only removes it from mistakes: mastery has to be re-earned through the
// remaining pool. Missing a mastered question likewise only drops it back
// to remaining, never straight into mistakes.
//
// Duplicate ids within a batch resolve last-write-wins. Every per-outcome
// step is a set add or remove, so re-applying an identical batch is a no-op
// and a retried submission is safe.
func Apply(mode Mode, p *Progress, outcomes []Outcome) error {
	switch mode {
	case ModeRemaining:
		for _, o := range outcomes {
			if o.IsCorrect {
				p.Mistakes.Remove(o.QuestionID)
				p.Mastered.Add(o.QuestionID)
			} else {
				p.Mastered.Remove(o.QuestionID)
				p.Mistakes.Add(o.QuestionID)
			}
		}
	case ModeMistakes:
		for _, o := range outcomes {
			if o.IsCorrect {
				p.Mistakes.Remove(o.QuestionID)
			}
		}
	case ModeMastered:
		for _, o := range outcomes {
			if !o.IsCorrect {
				p.Mastered.Remove(o.QuestionID)
			}
		}
	default:
		return ErrInvalidMode
	}
	return nil
}
