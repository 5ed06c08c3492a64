package activityRepo

import (
	"context"
	"fmt"
	"time"

	"tourai/database"
	"tourai/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo creates a new instance of ActivityRepository using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	coll := database.Collection("activities")
	repo := &MongoActivityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoActivityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an activity by its unique ID.
func (r *MongoActivityRepo) GetByID(id string) (*models.Activity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var activity models.Activity
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&activity); err != nil {
		return nil, fmt.Errorf("failed to fetch activity with id %s: %w", id, err)
	}
	return &activity, nil
}

// GetManyByIDs retrieves the activities matching the given ids.
func (r *MongoActivityRepo) GetManyByIDs(ids []string) ([]models.Activity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

// ListVisible retrieves public activities plus those created by userID.
func (r *MongoActivityRepo) ListVisible(userID string) ([]models.Activity, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"public": true},
		bson.M{"creator_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}

// Create inserts a new activity document.
func (r *MongoActivityRepo) Create(activity *models.Activity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// Update modifies an existing activity document.
func (r *MongoActivityRepo) Update(activity *models.Activity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	activity.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": activity.ID}, bson.M{"$set": activity})
	if err != nil {
		return fmt.Errorf("failed to update activity with id %s: %w", activity.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("activity with id %s not found", activity.ID)
	}
	return nil
}

// Delete removes an activity document by its ID.
func (r *MongoActivityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete activity with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("activity with id %s not found", id)
	}
	return nil
}
