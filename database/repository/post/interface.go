package postRepo

import (
	"time"

	"tourai/models"
)

// PostRepository defines methods for feed post data access.
type PostRepository interface {
	// GetByID retrieves a post by its unique ID.
	GetByID(id string) (*models.Post, error)
	// ListNewest retrieves the most recent posts, newest first.
	ListNewest(quantity int) ([]models.Post, error)
	// ListOlder retrieves posts strictly older than the cursor, newest first.
	ListOlder(before time.Time, quantity int) ([]models.Post, error)
	// Create inserts a new post record.
	Create(post *models.Post) error
	// Delete removes a post and its comments.
	Delete(id string) error
	// AddLike records userID liking the post; idempotent.
	AddLike(postID, userID string) error
	// RemoveLike removes userID's like from the post; idempotent.
	RemoveLike(postID, userID string) error
	// CreateComment inserts a comment on a post.
	CreateComment(comment *models.Comment) error
	// ListComments retrieves a post's comments, oldest first.
	ListComments(postID string) ([]models.Comment, error)
	// CountComments counts a post's comments.
	CountComments(postID string) (int, error)
}
