package notification

import (
	"testing"
	"time"

	"tourai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubNotificationRepo struct {
	stored []models.Notification
	read   []string
	acted  []string
}

func (r *stubNotificationRepo) Create(n *models.Notification) error {
	r.stored = append(r.stored, *n)
	return nil
}

func (r *stubNotificationRepo) ListRecent(destinationID string, page, size int, notifType string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.stored {
		if n.DestinationID != destinationID {
			continue
		}
		if notifType != "" && n.Type != notifType {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(id, destinationID string) error {
	if !r.owns(id, destinationID) {
		return assert.AnError
	}
	r.read = append(r.read, id)
	return nil
}

func (r *stubNotificationRepo) MarkActionCompleted(id, destinationID string) error {
	if !r.owns(id, destinationID) {
		return assert.AnError
	}
	r.acted = append(r.acted, id)
	return nil
}

func (r *stubNotificationRepo) owns(id, destinationID string) bool {
	for _, n := range r.stored {
		if n.ID == id && n.DestinationID == destinationID {
			return true
		}
	}
	return false
}

type stubUserRepo struct {
	users map[string]models.User
}

func (r *stubUserRepo) GetByID(id string) (*models.User, error)       { u := r.users[id]; return &u, nil }
func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *stubUserRepo) GetManyByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *stubUserRepo) Create(u *models.User) error { return nil }
func (r *stubUserRepo) Update(u *models.User) error { return nil }
func (r *stubUserRepo) Delete(id string) error      { return nil }
func (r *stubUserRepo) Search(query string, page, size int) ([]models.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Follow(followerID, targetID string) error   { return nil }
func (r *stubUserRepo) Unfollow(followerID, targetID string) error { return nil }
func (r *stubUserRepo) FollowStats(targetID, currentID string) (*models.FollowStats, error) {
	return &models.FollowStats{}, nil
}
func (r *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	u := r.users[id]
	return &u, nil
}

func TestNotifySelfIsDropped(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	err := svc.Notify(models.NotificationLike, "u1", "u1", "post-1", "")
	require.NoError(t, err)
	assert.Empty(t, repo.stored)
}

func TestRecentJoinsSourceProfiles(t *testing.T) {
	repo := &stubNotificationRepo{stored: []models.Notification{
		{ID: "n1", Type: models.NotificationFollow, SourceID: "u2", DestinationID: "u1", CreatedAt: time.Now()},
		{ID: "n2", Type: models.NotificationLike, SourceID: "u3", DestinationID: "u1", EntityID: "post-9", CreatedAt: time.Now()},
		{ID: "n3", Type: models.NotificationLike, SourceID: "u3", DestinationID: "someone-else", CreatedAt: time.Now()},
	}}
	users := &stubUserRepo{users: map[string]models.User{
		"u2": {ID: "u2", Name: "Ana", Email: "ana@example.com"},
		"u3": {ID: "u3", Name: "Bruno", Email: "bruno@example.com"},
	}}
	svc := &DefaultNotificationService{Repo: repo, Users: users}

	responses, err := svc.Recent("u1", 0, 20, "")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "Ana", responses[0].Source.Name)
	assert.Equal(t, "Bruno", responses[1].Source.Name)
}

func TestRecentFiltersByType(t *testing.T) {
	repo := &stubNotificationRepo{stored: []models.Notification{
		{ID: "n1", Type: models.NotificationFollow, SourceID: "u2", DestinationID: "u1"},
		{ID: "n2", Type: models.NotificationComment, SourceID: "u2", DestinationID: "u1"},
	}}
	users := &stubUserRepo{users: map[string]models.User{"u2": {ID: "u2", Name: "Ana"}}}
	svc := &DefaultNotificationService{Repo: repo, Users: users}

	responses, err := svc.Recent("u1", 0, 20, models.NotificationComment)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, models.NotificationComment, responses[0].Type)
}

func TestMarkReadAndActionCompleted(t *testing.T) {
	repo := &stubNotificationRepo{stored: []models.Notification{
		{ID: "n1", DestinationID: "u1"},
		{ID: "n2", DestinationID: "u1"},
	}}
	svc := &DefaultNotificationService{Repo: repo}

	require.NoError(t, svc.MarkRead("n1", "u1"))
	require.NoError(t, svc.MarkActionCompleted("n2", "u1"))
	assert.Equal(t, []string{"n1"}, repo.read)
	assert.Equal(t, []string{"n2"}, repo.acted)
}

func TestMarkReadIsDestinationScoped(t *testing.T) {
	repo := &stubNotificationRepo{stored: []models.Notification{
		{ID: "n1", DestinationID: "u1"},
	}}
	svc := &DefaultNotificationService{Repo: repo}

	assert.Error(t, svc.MarkRead("n1", "u2"), "another user's notification must not be flaggable")
	assert.Error(t, svc.MarkActionCompleted("n1", "u2"))
	assert.Empty(t, repo.read)
	assert.Empty(t, repo.acted)
}
