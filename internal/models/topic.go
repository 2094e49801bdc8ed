package models

type Topic struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}

// TopicSummary is the public catalog view of a topic.
type TopicSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

// TopicProgressSummary is a topic annotated with one user's bucket counts.
type TopicProgressSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TotalQuestions int    `json:"total_questions"`
	Remaining      int    `json:"remaining"`
	Mistakes       int    `json:"mistakes"`
	Mastered       int    `json:"mastered"`
	FavoriteCount  int    `json:"favorite_count"`
}
