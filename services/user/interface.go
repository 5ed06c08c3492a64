package user

import (
	userRepo "tourai/database/repository/user"
	"tourai/models"
	"tourai/services/notification"
)

type UserService interface {
	// Registration & authentication
	Register(req models.RegisterUserRequest) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	SignOut(userID string) error

	// User management
	GetByID(userID string) (*models.User, error)
	GetProfile(userID string) (*models.PublicProfile, error)
	Update(userID string, name, bio, avatarURL *string) (*models.User, error)
	Delete(userID string) error
	Search(query string, page, size int) ([]models.PublicProfile, error)

	// Social graph
	Follow(followerID, targetID string) error
	Unfollow(followerID, targetID string) error
	FollowStats(targetID, currentID string) (*models.FollowStats, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Notifier notification.NotificationService
}
