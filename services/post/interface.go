package post

import (
	"time"

	postRepo "tourai/database/repository/post"
	userRepo "tourai/database/repository/user"
	"tourai/models"
	"tourai/services/notification"
)

// PostService powers the social feed. Pagination is cursor-based on post date so
// a feed page stays stable while new posts arrive.
type PostService interface {
	Create(userID string, req models.CreatePostRequest) (*models.PostResponse, error)
	// ListNew returns the newest posts, newest first.
	ListNew(viewerID string, quantity int) ([]models.PostResponse, error)
	// ListOlder returns posts strictly older than the cursor, newest first.
	ListOlder(viewerID string, before time.Time, quantity int) ([]models.PostResponse, error)
	Delete(postID, requesterID string) error
	// Like records the viewer liking the post; idempotent. Notifies the author.
	Like(postID, userID string) error
	Unlike(postID, userID string) error
	// Comment adds a reply to the post. Notifies the author.
	Comment(postID, userID string, req models.CreateCommentRequest) (*models.CommentResponse, error)
	ListComments(postID string) ([]models.CommentResponse, error)
}

// DefaultPostService is the production implementation.
type DefaultPostService struct {
	Repo     postRepo.PostRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
}
