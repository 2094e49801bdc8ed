package models

import "time"

// TopicProgress is the persisted mastery record for one (user, topic) pair.
// The id sets are stored as arrays; a unique compound index on
// (user_id, topic_id) keeps the record singular per key. Version guards the
// read-modify-write cycle: writers bump it and a stale write is rejected.
type TopicProgress struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	TopicID     string    `bson:"topic_id" json:"topic_id"`
	MistakeIDs  []string  `bson:"mistake_ids" json:"mistake_ids"`
	MasteredIDs []string  `bson:"mastered_ids" json:"mastered_ids"`
	FavoriteIDs []string  `bson:"favorite_ids" json:"favorite_ids"`
	Version     int64     `bson:"version" json:"version"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// NewTopicProgress is the lazy default created on a user's first answer or
// favorite for a topic. Version zero marks a record not yet persisted.
func NewTopicProgress(userID, topicID string) *TopicProgress {
	return &TopicProgress{
		UserID:      userID,
		TopicID:     topicID,
		MistakeIDs:  []string{},
		MasteredIDs: []string{},
		FavoriteIDs: []string{},
	}
}

// QuizView is the response to a quiz request: the sampled questions joined
// against the question bank, plus how many were available in the bucket.
type QuizView struct {
	TopicID        string     `json:"topic_id"`
	TopicName      string     `json:"topic_name"`
	Mode           string     `json:"mode"`
	Questions      []Question `json:"questions"`
	TotalAvailable int        `json:"total_available"`
}
