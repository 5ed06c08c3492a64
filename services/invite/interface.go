package invite

import (
	inviteRepo "tourai/database/repository/invite"
	itineraryRepo "tourai/database/repository/itinerary"
	"tourai/models"
	"tourai/services/notification"
)

// InviteService manages itinerary participation invites. Accepting an invite adds
// the invitee to the itinerary's participants; the underlying notification's
// pending action is closed either way.
type InviteService interface {
	Create(inviterID string, req models.CreateInviteRequest) (*models.Invite, error)
	Accept(inviteID, userID string) (*models.Invite, error)
	Decline(inviteID, userID string) (*models.Invite, error)
}

// DefaultInviteService is the production implementation.
type DefaultInviteService struct {
	Repo        inviteRepo.InviteRepository
	Itineraries itineraryRepo.ItineraryRepository
	Notifier    notification.NotificationService
}
