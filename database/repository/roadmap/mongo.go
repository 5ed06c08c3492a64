package roadmapRepo

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

// MongoRoadmapRepo implements RoadmapRepository using MongoDB.
type MongoRoadmapRepo struct {
	coll *mongo.Collection
}

// NewMongoRoadmapRepo creates a new instance of RoadmapRepository using MongoDB.
func NewMongoRoadmapRepo() RoadmapRepository {
	coll := database.Collection("roadmaps")
	repo := &MongoRoadmapRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRoadmapRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "visibility", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a roadmap by its unique ID.
func (r *MongoRoadmapRepo) GetByID(id string) (*models.Roadmap, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var roadmap models.Roadmap
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&roadmap); err != nil {
		return nil, fmt.Errorf("failed to fetch roadmap with id %s: %w", id, err)
	}
	return &roadmap, nil
}

// ListByOwner retrieves all roadmaps owned by userID.
func (r *MongoRoadmapRepo) ListByOwner(userID string) ([]models.Roadmap, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve roadmaps: %w", err)
	}
	defer cursor.Close(ctx)

	var roadmaps []models.Roadmap
	if err := cursor.All(ctx, &roadmaps); err != nil {
		return nil, fmt.Errorf("failed to decode roadmaps: %w", err)
	}
	return roadmaps, nil
}

// ListPublic retrieves public roadmaps, paginated.
func (r *MongoRoadmapRepo) ListPublic(page, size int) ([]models.Roadmap, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))
	cursor, err := r.coll.Find(ctx, bson.M{"visibility": models.VisibilityPublic}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve public roadmaps: %w", err)
	}
	defer cursor.Close(ctx)

	var roadmaps []models.Roadmap
	if err := cursor.All(ctx, &roadmaps); err != nil {
		return nil, fmt.Errorf("failed to decode roadmaps: %w", err)
	}
	return roadmaps, nil
}

// Create inserts a new roadmap document.
func (r *MongoRoadmapRepo) Create(roadmap *models.Roadmap) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	roadmap.CreatedAt = now
	roadmap.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, roadmap); err != nil {
		return fmt.Errorf("failed to create roadmap: %w", err)
	}
	return nil
}

// Update modifies an existing roadmap document.
func (r *MongoRoadmapRepo) Update(roadmap *models.Roadmap) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	roadmap.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": roadmap.ID}, bson.M{"$set": roadmap})
	if err != nil {
		return fmt.Errorf("failed to update roadmap with id %s: %w", roadmap.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("roadmap with id %s not found", roadmap.ID)
	}
	return nil
}

// Delete removes a roadmap document by its ID.
func (r *MongoRoadmapRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete roadmap with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("roadmap with id %s not found", id)
	}
	return nil
}

// AddActivity associates a catalog activity with the roadmap.
func (r *MongoRoadmapRepo) AddActivity(roadmapID, activityID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"activity_ids": activityID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": roadmapID}, update)
	if err != nil {
		return fmt.Errorf("failed to add activity %s to roadmap %s: %w", activityID, roadmapID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("roadmap with id %s not found", roadmapID)
	}
	return nil
}

// RemoveActivity dissociates a catalog activity from the roadmap.
func (r *MongoRoadmapRepo) RemoveActivity(roadmapID, activityID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"activity_ids": activityID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": roadmapID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove activity %s from roadmap %s: %w", activityID, roadmapID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("roadmap with id %s not found", roadmapID)
	}
	return nil
}
