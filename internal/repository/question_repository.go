package repository

import (
	"context"

	"practice-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// IDsByTopic returns every question id belonging to a topic. Only the _id
// field is projected; payloads stay in the database until a quiz is built.
func (r *QuestionRepository) IDsByTopic(ctx context.Context, topicID string) ([]string, error) {
	cur, err := r.Col.Find(ctx, bson.M{"topic_id": topicID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cur.Err()
}

// ByIDs fetches the full payloads for a set of question ids within a topic.
// Ids that no longer exist are simply absent from the result.
func (r *QuestionRepository) ByIDs(ctx context.Context, topicID string, ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return []models.Question{}, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{
		"topic_id": topicID,
		"_id":      bson.M{"$in": ids},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) CountByTopic(ctx context.Context, topicID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"topic_id": topicID})
}
