package models

import "time"

// User is keyed by the externally verified identity id: token verification
// happens at the gateway, this service only ever sees the resulting id.
type User struct {
	ID          string    `bson:"_id" json:"id"`
	Email       string    `bson:"email" json:"email"`
	DisplayName string    `bson:"display_name" json:"display_name"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// UserStats are simple aggregate counts across all of a user's topics.
type UserStats struct {
	TotalMastered int `json:"total_mastered"`
	TotalMistakes int `json:"total_mistakes"`
	TopicsStarted int `json:"topics_started"`
}
