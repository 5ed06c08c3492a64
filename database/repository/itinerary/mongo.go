package itineraryRepo

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

// MongoItineraryRepo implements ItineraryRepository using MongoDB.
type MongoItineraryRepo struct {
	coll *mongo.Collection
}

// NewMongoItineraryRepo creates a new instance of ItineraryRepository using MongoDB.
func NewMongoItineraryRepo() ItineraryRepository {
	coll := database.Collection("itineraries")
	repo := &MongoItineraryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoItineraryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "participants", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an itinerary by its unique ID.
func (r *MongoItineraryRepo) GetByID(id string) (*models.Itinerary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var itinerary models.Itinerary
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&itinerary); err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary with id %s: %w", id, err)
	}
	return &itinerary, nil
}

// ListByUser retrieves itineraries where userID is the owner or a participant.
func (r *MongoItineraryRepo) ListByUser(userID string) ([]models.Itinerary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"owner_id": userID},
		bson.M{"participants": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve itineraries: %w", err)
	}
	defer cursor.Close(ctx)

	var itineraries []models.Itinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, fmt.Errorf("failed to decode itineraries: %w", err)
	}
	return itineraries, nil
}

// Create inserts a new itinerary with its full activity snapshot. The aggregate is
// never partially created; the caller passes a fully validated schedule.
func (r *MongoItineraryRepo) Create(itinerary *models.Itinerary) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	itinerary.CreatedAt = now
	itinerary.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, itinerary); err != nil {
		return fmt.Errorf("failed to create itinerary: %w", err)
	}
	return nil
}

// SetActivityFields patches completion and/or time of one scheduled activity using
// a positional update on the embedded array.
func (r *MongoItineraryRepo) SetActivityFields(itineraryID, activityID string, completed *bool, t *time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if completed != nil {
		set["activities.$.completed"] = *completed
	}
	if t != nil {
		set["activities.$.time"] = *t
	}

	filter := bson.M{"id": itineraryID, "activities.activity_id": activityID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update activity %s of itinerary %s: %w", activityID, itineraryID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("activity %s not found in itinerary %s", activityID, itineraryID)
	}
	return nil
}

// AddParticipant records an accepted invitee on the itinerary.
func (r *MongoItineraryRepo) AddParticipant(itineraryID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"participants": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": itineraryID}, update)
	if err != nil {
		return fmt.Errorf("failed to add participant %s to itinerary %s: %w", userID, itineraryID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("itinerary with id %s not found", itineraryID)
	}
	return nil
}

// Delete removes the whole aggregate.
func (r *MongoItineraryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete itinerary with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("itinerary with id %s not found", id)
	}
	return nil
}
