package activityRepo

import "tourai/models"

// ActivityRepository defines methods for catalog activity data access.
type ActivityRepository interface {
	// GetByID retrieves an activity by its unique ID.
	GetByID(id string) (*models.Activity, error)
	// GetManyByIDs retrieves the activities matching the given ids.
	GetManyByIDs(ids []string) ([]models.Activity, error)
	// ListVisible retrieves public activities plus those created by userID.
	ListVisible(userID string) ([]models.Activity, error)
	// Create inserts a new activity record.
	Create(activity *models.Activity) error
	// Update modifies an existing activity record.
	Update(activity *models.Activity) error
	// Delete removes an activity record by its ID.
	Delete(id string) error
}
