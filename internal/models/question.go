package models

// Question payload is opaque to the progress core: it is fetched by id and
// passed through to the client untouched.
type Question struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	TopicID     string   `bson:"topic_id" json:"topic_id"`
	Content     string   `bson:"content" json:"content"`
	Options     []string `bson:"options,omitempty" json:"options,omitempty"`
	Answer      string   `bson:"answer" json:"answer"`
	Explanation string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
}
