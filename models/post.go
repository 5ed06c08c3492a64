package models

import "time"

// Post is a social feed entry.
type Post struct {
	ID       string    `bson:"id" json:"id"`
	UserID   string    `bson:"user_id" json:"user_id"`
	Content  string    `bson:"content" json:"content"`
	MediaURL string    `bson:"media_url,omitempty" json:"mediaUrl,omitempty"`
	PostDate time.Time `bson:"post_date" json:"postDate"`
	// Likes holds the ids of users that liked the post; the response exposes the count.
	Likes []string `bson:"likes,omitempty" json:"-"`
}

// PostResponse is a post joined with its author and counters.
type PostResponse struct {
	ID            string        `json:"id"`
	Content       string        `json:"content"`
	MediaURL      string        `json:"mediaUrl,omitempty"`
	PostDate      time.Time     `json:"postDate"`
	User          PublicProfile `json:"user"`
	PostLikes     int           `json:"postLikes"`
	CommentsCount int           `json:"commentsCount"`
	LikedByMe     bool          `json:"likedByMe"`
}

// Comment is a reply on a post.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	PostID    string    `bson:"post_id" json:"post_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CommentResponse is a comment joined with its author.
type CommentResponse struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	User      PublicProfile `json:"user"`
}

// CreatePostRequest is the payload for publishing a post.
type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	MediaURL string `json:"mediaUrl"`
}

// CreateCommentRequest is the payload for commenting on a post.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
