package repository

import (
	"context"
	"errors"

	"practice-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrConflict signals that another writer updated the same progress record
// between a Find and a Save. Callers retry the whole read-modify-write.
var ErrConflict = errors.New("progress record was updated concurrently")

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

// EnsureIndexes creates the unique (user_id, topic_id) index the optimistic
// write path relies on. Called once at startup.
func (r *ProgressRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "topic_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Find returns nil without error when no record exists yet; the caller
// treats that as the empty default.
func (r *ProgressRepository) Find(ctx context.Context, userID, topicID string) (*models.TopicProgress, error) {
	var p models.TopicProgress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "topic_id": topicID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Save writes the whole record in one document operation, so a submission
// batch commits atomically or not at all. Version zero inserts; a non-zero
// version replaces only if nobody else bumped it first. Either way a lost
// race surfaces as ErrConflict.
func (r *ProgressRepository) Save(ctx context.Context, p *models.TopicProgress) error {
	if p.Version == 0 {
		p.Version = 1
		_, err := r.Col.InsertOne(ctx, bson.M{
			"user_id":      p.UserID,
			"topic_id":     p.TopicID,
			"mistake_ids":  p.MistakeIDs,
			"mastered_ids": p.MasteredIDs,
			"favorite_ids": p.FavoriteIDs,
			"version":      p.Version,
			"updated_at":   p.UpdatedAt,
		})
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return err
	}

	prior := p.Version
	p.Version++
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": p.UserID, "topic_id": p.TopicID, "version": prior},
		bson.M{"$set": bson.M{
			"mistake_ids":  p.MistakeIDs,
			"mastered_ids": p.MasteredIDs,
			"favorite_ids": p.FavoriteIDs,
			"version":      p.Version,
			"updated_at":   p.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrConflict
	}
	return nil
}

func (r *ProgressRepository) FindAllForUser(ctx context.Context, userID string) ([]models.TopicProgress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.TopicProgress
	for cur.Next(ctx) {
		var p models.TopicProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}

// ResetTopic clears the mistake and mastered sets for one topic while
// keeping favorites. The version bump invalidates any in-flight writer.
func (r *ProgressRepository) ResetTopic(ctx context.Context, userID, topicID string) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": userID, "topic_id": topicID},
		bson.M{
			"$set": bson.M{"mistake_ids": []string{}, "mastered_ids": []string{}},
			"$inc": bson.M{"version": 1},
		},
	)
	return err
}

// ResetAllForUser clears mastery state across every topic, favorites kept.
func (r *ProgressRepository) ResetAllForUser(ctx context.Context, userID string) error {
	_, err := r.Col.UpdateMany(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$set": bson.M{"mistake_ids": []string{}, "mastered_ids": []string{}},
			"$inc": bson.M{"version": 1},
		},
	)
	return err
}

func (r *ProgressRepository) ClearFavorites(ctx context.Context, userID, topicID string) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"user_id": userID, "topic_id": topicID},
		bson.M{
			"$set": bson.M{"favorite_ids": []string{}},
			"$inc": bson.M{"version": 1},
		},
	)
	return err
}

func (r *ProgressRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
