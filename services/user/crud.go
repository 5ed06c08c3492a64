package user

import (
	"fmt"
	"time"

	"tourai/models"
)

// GetByID retrieves the full user record.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return userRec, nil
}

// GetProfile retrieves the public projection of a user.
func (s *DefaultUserService) GetProfile(userID string) (*models.PublicProfile, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return &models.PublicProfile{
		ID:        userRec.ID,
		Name:      userRec.Name,
		Email:     userRec.Email,
		Bio:       userRec.Bio,
		AvatarURL: userRec.AvatarURL,
	}, nil
}

// Update modifies the caller's editable fields. Nil fields are left untouched.
func (s *DefaultUserService) Update(userID string, name, bio, avatarURL *string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	if name != nil {
		userRec.Name = *name
	}
	if bio != nil {
		userRec.Bio = *bio
	}
	if avatarURL != nil {
		userRec.AvatarURL = *avatarURL
	}
	userRec.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return userRec, nil
}

// Delete removes the account and revokes its session.
func (s *DefaultUserService) Delete(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return s.SignOut(userID)
}

// Search finds users by name or email fragment, paginated.
func (s *DefaultUserService) Search(query string, page, size int) ([]models.PublicProfile, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	users, err := s.Repo.Search(query, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	profiles := make([]models.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, models.PublicProfile{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Bio:       u.Bio,
			AvatarURL: u.AvatarURL,
		})
	}
	return profiles, nil
}
