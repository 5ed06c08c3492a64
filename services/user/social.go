package user

import (
	"fmt"

	"tourai/models"
	"tourai/utils"

	"go.uber.org/zap"
)

// Follow records followerID following targetID and notifies the target.
func (s *DefaultUserService) Follow(followerID, targetID string) error {
	if followerID == targetID {
		return fmt.Errorf("cannot follow yourself")
	}
	if _, err := s.Repo.GetByID(targetID); err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", targetID, err)
	}
	if err := s.Repo.Follow(followerID, targetID); err != nil {
		return fmt.Errorf("failed to follow user %s: %w", targetID, err)
	}

	if err := s.Notifier.Notify(models.NotificationFollow, followerID, targetID, followerID, ""); err != nil {
		utils.GetLogger().Warn("Follow: failed to notify target", zap.Error(err))
	}
	return nil
}

// Unfollow removes the follow relationship.
func (s *DefaultUserService) Unfollow(followerID, targetID string) error {
	if err := s.Repo.Unfollow(followerID, targetID); err != nil {
		return fmt.Errorf("failed to unfollow user %s: %w", targetID, err)
	}
	return nil
}

// FollowStats returns follower/following counts for targetID and whether
// currentID follows it.
func (s *DefaultUserService) FollowStats(targetID, currentID string) (*models.FollowStats, error) {
	stats, err := s.Repo.FollowStats(targetID, currentID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute follow stats for %s: %w", targetID, err)
	}
	return stats, nil
}
