package service

import (
	"time"

	"practice-service/internal/mastery"
	"practice-service/internal/models"
)

// stateOf reconstructs the in-memory mastery state from a stored record.
// A nil record is the empty default for a pair never interacted with.
func stateOf(record *models.TopicProgress) *mastery.Progress {
	if record == nil {
		return mastery.NewProgress()
	}
	return &mastery.Progress{
		Mistakes:  mastery.NewSet(record.MistakeIDs...),
		Mastered:  mastery.NewSet(record.MasteredIDs...),
		Favorites: mastery.NewSet(record.FavoriteIDs...),
	}
}

// storeState writes the mastery state back onto the record for persistence.
func storeState(record *models.TopicProgress, state *mastery.Progress) {
	record.MistakeIDs = state.Mistakes.IDs()
	record.MasteredIDs = state.Mastered.IDs()
	record.FavoriteIDs = state.Favorites.IDs()
	record.UpdatedAt = time.Now().UTC()
}
