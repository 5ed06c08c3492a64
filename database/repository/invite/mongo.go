package inviteRepo

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

// MongoInviteRepo implements InviteRepository using MongoDB.
type MongoInviteRepo struct {
	coll *mongo.Collection
}

// NewMongoInviteRepo creates a new instance of InviteRepository using MongoDB.
func NewMongoInviteRepo() InviteRepository {
	coll := database.Collection("invites")
	repo := &MongoInviteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInviteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "itinerary_id", Value: 1}, {Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an invite by its unique ID.
func (r *MongoInviteRepo) GetByID(id string) (*models.Invite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var invite models.Invite
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&invite); err != nil {
		return nil, fmt.Errorf("failed to fetch invite with id %s: %w", id, err)
	}
	return &invite, nil
}

// Create inserts a new invite document.
func (r *MongoInviteRepo) Create(invite *models.Invite) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, invite); err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	return nil
}

// UpdateStatus records the invitee's response.
func (r *MongoInviteRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "responded_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update invite %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invite with id %s not found", id)
	}
	return nil
}

// FindPending returns the pending invite for (itineraryID, userID); nil if none.
func (r *MongoInviteRepo) FindPending(itineraryID, userID string) (*models.Invite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"itinerary_id": itineraryID, "user_id": userID, "status": models.InvitePending}
	var invite models.Invite
	if err := r.coll.FindOne(ctx, filter).Decode(&invite); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up pending invite: %w", err)
	}
	return &invite, nil
}
