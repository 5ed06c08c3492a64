package userRepo

import (
	"tourai/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; nil if not found.
	GetByEmail(email string) (*models.User, error)
	// GetManyByIDs retrieves the users matching the given ids.
	GetManyByIDs(ids []string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// Search finds users by name or email fragment, paginated.
	Search(query string, page, size int) ([]models.User, error)
	// Follow records follower following target.
	Follow(followerID, targetID string) error
	// Unfollow removes the follow relationship.
	Unfollow(followerID, targetID string) error
	// FollowStats returns follower/following counts for target and whether
	// currentID follows it.
	FollowStats(targetID, currentID string) (*models.FollowStats, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
