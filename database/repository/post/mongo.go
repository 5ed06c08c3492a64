package postRepo

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

// MongoPostRepo implements PostRepository using MongoDB.
type MongoPostRepo struct {
	posts    *mongo.Collection
	comments *mongo.Collection
}

// NewMongoPostRepo creates a new instance of PostRepository using MongoDB.
func NewMongoPostRepo() PostRepository {
	repo := &MongoPostRepo{
		posts:    database.Collection("posts"),
		comments: database.Collection("comments"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPostRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "post_date", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	if _, err := r.comments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its unique ID.
func (r *MongoPostRepo) GetByID(id string) (*models.Post, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.Post
	if err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to fetch post with id %s: %w", id, err)
	}
	return &post, nil
}

// ListNewest retrieves the most recent posts, newest first.
func (r *MongoPostRepo) ListNewest(quantity int) ([]models.Post, error) {
	return r.list(bson.M{}, quantity)
}

// ListOlder retrieves posts strictly older than the cursor, newest first.
func (r *MongoPostRepo) ListOlder(before time.Time, quantity int) ([]models.Post, error) {
	return r.list(bson.M{"post_date": bson.M{"$lt": before}}, quantity)
}

func (r *MongoPostRepo) list(filter bson.M, quantity int) ([]models.Post, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "post_date", Value: -1}}).
		SetLimit(int64(quantity))
	cursor, err := r.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// Create inserts a new post document.
func (r *MongoPostRepo) Create(post *models.Post) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if post.PostDate.IsZero() {
		post.PostDate = time.Now()
	}
	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Delete removes a post and its comments.
func (r *MongoPostRepo) Delete(id string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post with id %s not found", id)
	}
	if _, err := r.comments.DeleteMany(ctx, bson.M{"post_id": id}); err != nil {
		return fmt.Errorf("failed to delete comments of post %s: %w", id, err)
	}
	return nil
}

// AddLike records userID liking the post; idempotent.
func (r *MongoPostRepo) AddLike(postID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.posts.UpdateOne(ctx, bson.M{"id": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}})
	if err != nil {
		return fmt.Errorf("failed to like post %s: %w", postID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post with id %s not found", postID)
	}
	return nil
}

// RemoveLike removes userID's like from the post; idempotent.
func (r *MongoPostRepo) RemoveLike(postID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.posts.UpdateOne(ctx, bson.M{"id": postID},
		bson.M{"$pull": bson.M{"likes": userID}})
	if err != nil {
		return fmt.Errorf("failed to unlike post %s: %w", postID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post with id %s not found", postID)
	}
	return nil
}

// CreateComment inserts a comment on a post.
func (r *MongoPostRepo) CreateComment(comment *models.Comment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListComments retrieves a post's comments, oldest first.
func (r *MongoPostRepo) ListComments(postID string) ([]models.Comment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// CountComments counts a post's comments.
func (r *MongoPostRepo) CountComments(postID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.comments.CountDocuments(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments of post %s: %w", postID, err)
	}
	return int(count), nil
}
