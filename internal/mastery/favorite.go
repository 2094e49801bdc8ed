package mastery

// ToggleFavorite flips the favorite state of a question and reports the new
// state: true when the id was just added, false when it was just removed.
// Favorites are independent of the mistake/mastered partition.
func ToggleFavorite(p *Progress, questionID string) bool {
	if p.Favorites.Has(questionID) {
		p.Favorites.Remove(questionID)
		return false
	}
	p.Favorites.Add(questionID)
	return true
}
