package notificationRepo

import "tourai/models"

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(notification *models.Notification) error
	// ListRecent retrieves notifications for a destination user, newest first,
	// optionally filtered by type.
	ListRecent(destinationID string, page, size int, notifType string) ([]models.Notification, error)
	// MarkRead flags a notification as received. The update only applies when
	// the notification is addressed to destinationID.
	MarkRead(id, destinationID string) error
	// MarkActionCompleted flags the notification's pending action as handled,
	// scoped to destinationID like MarkRead.
	MarkActionCompleted(id, destinationID string) error
}
