package handlers

import (
	"tourai/services/activity"
	"tourai/services/evaluation"
	"tourai/services/intelligence"
	"tourai/services/invite"
	"tourai/services/itinerary"
	"tourai/services/notification"
	"tourai/services/post"
	"tourai/services/roadmap"
	"tourai/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Users         *UserHandler
	Itineraries   *ItineraryHandler
	Roadmaps      *RoadmapHandler
	Activities    *ActivityHandler
	Posts         *PostHandler
	Evaluations   *EvaluationHandler
	Invites       *InviteHandler
	Notifications *NotificationHandler
	Intelligence  *IntelligenceHandler
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	userSvc user.UserService,
	itinerarySvc itinerary.ItineraryService,
	roadmapSvc roadmap.RoadmapService,
	activitySvc activity.ActivityService,
	postSvc post.PostService,
	evaluationSvc evaluation.EvaluationService,
	inviteSvc invite.InviteService,
	notificationSvc notification.NotificationService,
	intelligenceSvc intelligence.IntelligenceService,
) *HandlerBundle {
	return &HandlerBundle{
		Users:         &UserHandler{Service: userSvc},
		Itineraries:   &ItineraryHandler{Service: itinerarySvc},
		Roadmaps:      &RoadmapHandler{Service: roadmapSvc},
		Activities:    &ActivityHandler{Service: activitySvc},
		Posts:         &PostHandler{Service: postSvc},
		Evaluations:   &EvaluationHandler{Service: evaluationSvc},
		Invites:       &InviteHandler{Service: inviteSvc},
		Notifications: &NotificationHandler{Service: notificationSvc},
		Intelligence:  &IntelligenceHandler{Service: intelligenceSvc},
	}
}
