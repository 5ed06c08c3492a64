package inviteRepo

import "tourai/models"

// InviteRepository defines methods for invite data access.
type InviteRepository interface {
	// GetByID retrieves an invite by its unique ID.
	GetByID(id string) (*models.Invite, error)
	// Create inserts a new invite record.
	Create(invite *models.Invite) error
	// UpdateStatus records the invitee's response.
	UpdateStatus(id, status string) error
	// FindPending returns the pending invite for (itineraryID, userID); nil if none.
	FindPending(itineraryID, userID string) (*models.Invite, error)
}
