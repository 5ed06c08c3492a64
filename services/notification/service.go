package notification

import (
	"fmt"
	"time"

	"tourai/models"
	"tourai/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notify enqueues a notification event for asynchronous dispatch. Users never
// notify themselves: self-directed events are dropped silently.
func (s *DefaultNotificationService) Notify(notifType, sourceID, destinationID, entityID, payload string) error {
	if sourceID == destinationID {
		return nil
	}

	n := models.Notification{
		ID:            uuid.NewString(),
		Type:          notifType,
		SourceID:      sourceID,
		DestinationID: destinationID,
		EntityID:      entityID,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}

	task, err := NewDispatchTask(n)
	if err != nil {
		return fmt.Errorf("failed to build dispatch task: %w", err)
	}
	if _, err := s.Client.Enqueue(task); err != nil {
		// Queue is down: persist directly so the event is not lost.
		utils.GetLogger().Warn("Notify: enqueue failed, storing directly", zap.Error(err))
		return s.Store(&n)
	}
	return nil
}

// Store persists a dispatched notification.
func (s *DefaultNotificationService) Store(notification *models.Notification) error {
	if err := s.Repo.Create(notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// Recent returns the destination user's notifications joined with their source
// profiles, newest first.
func (s *DefaultNotificationService) Recent(destinationID string, page, size int, typeFilter string) ([]models.NotificationResponse, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}

	notifications, err := s.Repo.ListRecent(destinationID, page, size, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	sourceIDs := make([]string, 0, len(notifications))
	seen := make(map[string]bool, len(notifications))
	for _, n := range notifications {
		if !seen[n.SourceID] {
			seen[n.SourceID] = true
			sourceIDs = append(sourceIDs, n.SourceID)
		}
	}

	sources, err := s.Users.GetManyByIDs(sourceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notification sources: %w", err)
	}
	profiles := make(map[string]models.PublicProfile, len(sources))
	for _, u := range sources {
		profiles[u.ID] = models.PublicProfile{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Bio:       u.Bio,
			AvatarURL: u.AvatarURL,
		}
	}

	responses := make([]models.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, models.NotificationResponse{
			Notification: n,
			Source:       profiles[n.SourceID],
		})
	}
	return responses, nil
}

// MarkRead flags one of userID's notifications as received by the client.
func (s *DefaultNotificationService) MarkRead(id, userID string) error {
	return s.Repo.MarkRead(id, userID)
}

// MarkActionCompleted flags the pending action of one of userID's
// notifications as handled.
func (s *DefaultNotificationService) MarkActionCompleted(id, userID string) error {
	return s.Repo.MarkActionCompleted(id, userID)
}
