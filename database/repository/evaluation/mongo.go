package evaluationRepo

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

// MongoEvaluationRepo implements EvaluationRepository using MongoDB.
type MongoEvaluationRepo struct {
	coll *mongo.Collection
}

// NewMongoEvaluationRepo creates a new instance of EvaluationRepository using MongoDB.
func NewMongoEvaluationRepo() EvaluationRepository {
	coll := database.Collection("evaluations")
	repo := &MongoEvaluationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEvaluationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "activity_id", Value: 1}}},
		{Keys: bson.D{{Key: "itinerary_id", Value: 1}, {Key: "activity_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new evaluation document.
func (r *MongoEvaluationRepo) Create(evaluation *models.Evaluation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if evaluation.CreatedAt.IsZero() {
		evaluation.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, evaluation); err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

// ListForItineraryActivity retrieves evaluations of one scheduled activity.
func (r *MongoEvaluationRepo) ListForItineraryActivity(itineraryID, activityID string) ([]models.Evaluation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"itinerary_id": itineraryID, "activity_id": activityID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve evaluations: %w", err)
	}
	defer cursor.Close(ctx)

	var evaluations []models.Evaluation
	if err := cursor.All(ctx, &evaluations); err != nil {
		return nil, fmt.Errorf("failed to decode evaluations: %w", err)
	}
	return evaluations, nil
}

// RatingForActivity aggregates all evaluations of a catalog activity.
func (r *MongoEvaluationRepo) RatingForActivity(activityID string) (*models.ActivityRating, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"activity_id": activityID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$activity_id",
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings for activity %s: %w", activityID, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
		Count   int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode rating aggregate: %w", err)
	}

	rating := &models.ActivityRating{ActivityID: activityID}
	if len(results) > 0 {
		rating.Average = results[0].Average
		rating.Count = results[0].Count
	}
	return rating, nil
}
