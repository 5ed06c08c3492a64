package post

import (
	"fmt"
	"time"

	"tourai/models"
	"tourai/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultFeedQuantity = 10

// Create publishes a post to the feed.
func (s *DefaultPostService) Create(userID string, req models.CreatePostRequest) (*models.PostResponse, error) {
	p := &models.Post{
		ID:       uuid.NewString(),
		UserID:   userID,
		Content:  req.Content,
		MediaURL: req.MediaURL,
		PostDate: time.Now().UTC(),
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	responses, err := s.assemble([]models.Post{*p}, userID)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// ListNew returns the newest posts, newest first.
func (s *DefaultPostService) ListNew(viewerID string, quantity int) ([]models.PostResponse, error) {
	if quantity <= 0 {
		quantity = defaultFeedQuantity
	}
	posts, err := s.Repo.ListNewest(quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return s.assemble(posts, viewerID)
}

// ListOlder returns posts strictly older than the cursor, newest first.
func (s *DefaultPostService) ListOlder(viewerID string, before time.Time, quantity int) ([]models.PostResponse, error) {
	if quantity <= 0 {
		quantity = defaultFeedQuantity
	}
	posts, err := s.Repo.ListOlder(before, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to list older posts: %w", err)
	}
	return s.assemble(posts, viewerID)
}

// Delete removes a post and its comments. Author only.
func (s *DefaultPostService) Delete(postID, requesterID string) error {
	p, err := s.Repo.GetByID(postID)
	if err != nil {
		return fmt.Errorf("failed to fetch post %s: %w", postID, err)
	}
	if p.UserID != requesterID {
		return fmt.Errorf("only the author may delete post %s", postID)
	}
	if err := s.Repo.Delete(postID); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", postID, err)
	}
	return nil
}

// Like records the viewer liking the post and notifies the author.
func (s *DefaultPostService) Like(postID, userID string) error {
	p, err := s.Repo.GetByID(postID)
	if err != nil {
		return fmt.Errorf("failed to fetch post %s: %w", postID, err)
	}
	if err := s.Repo.AddLike(postID, userID); err != nil {
		return fmt.Errorf("failed to like post %s: %w", postID, err)
	}

	if err := s.Notifier.Notify(models.NotificationLike, userID, p.UserID, postID, ""); err != nil {
		utils.GetLogger().Warn("Like: failed to notify author", zap.Error(err))
	}
	return nil
}

// Unlike removes the viewer's like from the post.
func (s *DefaultPostService) Unlike(postID, userID string) error {
	if err := s.Repo.RemoveLike(postID, userID); err != nil {
		return fmt.Errorf("failed to unlike post %s: %w", postID, err)
	}
	return nil
}

// Comment adds a reply to the post and notifies the author.
func (s *DefaultPostService) Comment(postID, userID string, req models.CreateCommentRequest) (*models.CommentResponse, error) {
	p, err := s.Repo.GetByID(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post %s: %w", postID, err)
	}

	c := &models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateComment(c); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := s.Notifier.Notify(models.NotificationComment, userID, p.UserID, postID, req.Content); err != nil {
		utils.GetLogger().Warn("Comment: failed to notify author", zap.Error(err))
	}

	author, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment author: %w", err)
	}
	return &models.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      publicProfile(author),
	}, nil
}

// ListComments retrieves a post's comments joined with their authors, oldest first.
func (s *DefaultPostService) ListComments(postID string) ([]models.CommentResponse, error) {
	comments, err := s.Repo.ListComments(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	profiles, err := s.profilesFor(commentAuthorIDs(comments))
	if err != nil {
		return nil, err
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, models.CommentResponse{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			User:      profiles[c.UserID],
		})
	}
	return responses, nil
}

// assemble joins posts with their authors and counters into feed entries.
func (s *DefaultPostService) assemble(posts []models.Post, viewerID string) ([]models.PostResponse, error) {
	authorIDs := make([]string, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			authorIDs = append(authorIDs, p.UserID)
		}
	}
	profiles, err := s.profilesFor(authorIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]models.PostResponse, 0, len(posts))
	for _, p := range posts {
		count, err := s.Repo.CountComments(p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count comments for post %s: %w", p.ID, err)
		}
		likedByMe := false
		for _, id := range p.Likes {
			if id == viewerID {
				likedByMe = true
				break
			}
		}
		responses = append(responses, models.PostResponse{
			ID:            p.ID,
			Content:       p.Content,
			MediaURL:      p.MediaURL,
			PostDate:      p.PostDate,
			User:          profiles[p.UserID],
			PostLikes:     len(p.Likes),
			CommentsCount: count,
			LikedByMe:     likedByMe,
		})
	}
	return responses, nil
}

func (s *DefaultPostService) profilesFor(ids []string) (map[string]models.PublicProfile, error) {
	users, err := s.Users.GetManyByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %w", err)
	}
	profiles := make(map[string]models.PublicProfile, len(users))
	for i := range users {
		profiles[users[i].ID] = publicProfile(&users[i])
	}
	return profiles, nil
}

func commentAuthorIDs(comments []models.Comment) []string {
	ids := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			ids = append(ids, c.UserID)
		}
	}
	return ids
}

func publicProfile(u *models.User) models.PublicProfile {
	return models.PublicProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}
}
