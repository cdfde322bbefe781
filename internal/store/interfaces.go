package store

import (
	"context"

	"github.com/ashabalin/themeboard/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrUserAlreadyExists on a username or email
	// collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks an account up by its unique username.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SessionRepository persists opaque bearer sessions.
//
// A stored session disappears in exactly two ways: explicit Delete (logout)
// or passive expiry at its ExpiredBy instant. Get never returns an expired
// session.
type SessionRepository interface {
	// Create stores a fresh session for the user and returns it.
	Create(ctx context.Context, userID int64) (models.Session, error)

	// Get resolves a token to its session.
	// Returns ErrSessionNotFound for unknown, revoked, or expired tokens.
	Get(ctx context.Context, token string) (models.Session, error)

	// Delete revokes a session. Returns ErrSessionNotFound when the token
	// does not resolve to an active session.
	Delete(ctx context.Context, token string) error
}

// PostRepository persists posts and their like relations.
type PostRepository interface {
	// CreatePost inserts a new post authored by post.AuthorID.
	// Returns ErrThemeNotFound when post.ThemeID references no theme.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// GetPost fetches one post with its like count. When viewerID is
	// non-nil the LikedByMe field is populated for that viewer.
	// Returns ErrPostNotFound when the post does not exist.
	GetPost(ctx context.Context, postID int64, viewerID *int64) (models.Post, error)

	// GetAllPosts returns one page of the feed, newest first. When viewerID
	// is non-nil each post's LikedByMe field is populated.
	GetAllPosts(ctx context.Context, offset, limit int, viewerID *int64) ([]models.Post, error)

	// UpdatePost applies the non-nil fields of upd to the post.
	// Returns ErrPostNotFound when the post does not exist.
	UpdatePost(ctx context.Context, postID int64, upd models.UpdatePostRequest) (models.Post, error)

	// DeletePost removes the post and, transitively, its comments and likes.
	// Returns ErrPostNotFound when the post does not exist.
	DeletePost(ctx context.Context, postID int64) error

	// SetPostLike records (like=true) or removes (like=false) the viewer's
	// like of the post. Both directions are idempotent: repeating the same
	// call never changes the count a second time.
	SetPostLike(ctx context.Context, postID, userID int64, like bool) error
}

// CommentRepository persists comments and their like relations.
type CommentRepository interface {
	// CreateComment inserts a new comment under comment.PostID.
	// Returns ErrPostNotFound when the post does not exist.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// GetComment fetches one comment with its like count.
	// Returns ErrCommentNotFound when the comment does not exist.
	GetComment(ctx context.Context, commentID int64) (models.Comment, error)

	// GetPostComments returns all comments of a post, oldest first. When
	// viewerID is non-nil each comment's LikedByMe field is populated.
	GetPostComments(ctx context.Context, postID int64, viewerID *int64) ([]models.Comment, error)

	// UpdateComment applies the non-nil fields of upd to the comment.
	// Returns ErrCommentNotFound when the comment does not exist.
	UpdateComment(ctx context.Context, commentID int64, upd models.EditCommentRequest) (models.Comment, error)

	// DeleteComment removes the comment and its likes.
	// Returns ErrCommentNotFound when the comment does not exist.
	DeleteComment(ctx context.Context, commentID int64) error

	// SetCommentLike records or removes the viewer's like of the comment
	// with the same idempotence guarantee as PostRepository.SetPostLike.
	SetCommentLike(ctx context.Context, commentID, userID int64, like bool) error
}

// ThemeRepository reads the theme catalogue. Themes are seeded by migrations
// and never mutated through the API.
type ThemeRepository interface {
	GetAllThemes(ctx context.Context) ([]models.Theme, error)
}
