package notification

import (
	notificationRepo "tourai/database/repository/notification"
	userRepo "tourai/database/repository/user"
	"tourai/models"

	"github.com/hibiken/asynq"
)

// NotificationService fans events out to users. Delivery is asynchronous: Notify
// enqueues a dispatch task and the background worker persists it; clients poll
// for recent notifications.
type NotificationService interface {
	// Notify enqueues a notification event for asynchronous dispatch.
	Notify(notifType, sourceID, destinationID, entityID, payload string) error
	// Store persists a dispatched notification. Called by the worker.
	Store(notification *models.Notification) error
	// Recent returns the destination user's notifications joined with their
	// source profiles, newest first. typeFilter narrows to one type when set.
	Recent(destinationID string, page, size int, typeFilter string) ([]models.NotificationResponse, error)
	// MarkRead flags one of userID's notifications as received by the client.
	MarkRead(id, userID string) error
	// MarkActionCompleted flags the pending action of one of userID's
	// notifications as handled.
	MarkActionCompleted(id, userID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Users  userRepo.UserRepository
	Client *asynq.Client
}
