package invite

import (
	"fmt"
	"time"

	"tourai/models"
	"tourai/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create invites a user to join an itinerary. Owner only; duplicate pending
// invites are rejected.
func (s *DefaultInviteService) Create(inviterID string, req models.CreateInviteRequest) (*models.Invite, error) {
	it, err := s.Itineraries.GetByID(req.ItineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary %s: %w", req.ItineraryID, err)
	}
	if it.OwnerID != inviterID {
		return nil, fmt.Errorf("only the owner may invite to itinerary %s", req.ItineraryID)
	}
	if req.UserID == inviterID {
		return nil, fmt.Errorf("cannot invite yourself")
	}
	for _, p := range it.Participants {
		if p == req.UserID {
			return nil, fmt.Errorf("user %s already participates in itinerary %s", req.UserID, req.ItineraryID)
		}
	}

	pending, err := s.Repo.FindPending(req.ItineraryID, req.UserID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("user %s already has a pending invite to itinerary %s", req.UserID, req.ItineraryID)
	}

	inv := &models.Invite{
		ID:          uuid.NewString(),
		ItineraryID: req.ItineraryID,
		UserID:      req.UserID,
		InviterID:   inviterID,
		Status:      models.InvitePending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(inv); err != nil {
		return nil, err
	}

	if err := s.Notifier.Notify(models.NotificationInvitation, inviterID, req.UserID, inv.ID, it.Title); err != nil {
		utils.GetLogger().Warn("Create invite: failed to notify invitee", zap.Error(err))
	}
	return inv, nil
}

// Accept marks the invite accepted and adds the invitee to the itinerary.
func (s *DefaultInviteService) Accept(inviteID, userID string) (*models.Invite, error) {
	inv, err := s.respondable(inviteID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.Itineraries.AddParticipant(inv.ItineraryID, userID); err != nil {
		return nil, fmt.Errorf("failed to join itinerary %s: %w", inv.ItineraryID, err)
	}
	if err := s.Repo.UpdateStatus(inviteID, models.InviteAccepted); err != nil {
		return nil, err
	}
	inv.Status = models.InviteAccepted
	inv.RespondedAt = time.Now().UTC()
	return inv, nil
}

// Decline marks the invite declined.
func (s *DefaultInviteService) Decline(inviteID, userID string) (*models.Invite, error) {
	inv, err := s.respondable(inviteID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(inviteID, models.InviteDeclined); err != nil {
		return nil, err
	}
	inv.Status = models.InviteDeclined
	inv.RespondedAt = time.Now().UTC()
	return inv, nil
}

func (s *DefaultInviteService) respondable(inviteID, userID string) (*models.Invite, error) {
	inv, err := s.Repo.GetByID(inviteID)
	if err != nil {
		return nil, err
	}
	if inv.UserID != userID {
		return nil, fmt.Errorf("invite %s is not addressed to user %s", inviteID, userID)
	}
	if inv.Status != models.InvitePending {
		return nil, fmt.Errorf("invite %s has already been %s", inviteID, inv.Status)
	}
	return inv, nil
}
