package service

import (
	"context"

	"github.com/ashabalin/themeboard/models"
)

// AuthService owns the account and session lifecycle.
//
// Register and Login both end in a fresh session so that a successful call
// is immediately usable as a bearer credential. VerifySession is the single
// path by which any other layer turns a raw token into a trusted user ID.
type AuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates by username/password and opens a session.
	// Fails with ErrWrongCredentials for unknown users and wrong passwords
	// alike; the two cases are deliberately indistinguishable.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout revokes the session behind the token.
	Logout(ctx context.Context, token string) error

	// VerifySession resolves a bearer token to the bound user ID.
	// Any failure is normalised to ErrSessionIsExpiredOrInvalid.
	VerifySession(ctx context.Context, token string) (int64, error)
}

// PostService owns post reads, mutations, and like toggles. Every mutating
// method takes the verified caller ID and enforces ownership before touching
// the store.
type PostService interface {
	CreatePost(ctx context.Context, userID int64, req models.CreatePostRequest) (models.Post, error)

	// GetPost returns the post with its comments. Publicly readable.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// GetAllPosts returns one feed page. A non-nil viewerID personalizes
	// the page (LikedByMe populated); nil serves the anonymous feed.
	GetAllPosts(ctx context.Context, offset int, viewerID *int64) ([]models.Post, error)

	UpdatePost(ctx context.Context, userID, postID int64, req models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, userID, postID int64) error

	// LikePost applies the like boolean as-is: true likes, false unlikes.
	LikePost(ctx context.Context, userID, postID int64, like bool) error
}

// CommentService owns comment mutations and like toggles with the same
// ownership rules as PostService.
type CommentService interface {
	CreateComment(ctx context.Context, userID, postID int64, req models.CreateCommentRequest) (models.Comment, error)
	EditComment(ctx context.Context, userID, commentID int64, req models.EditCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID int64) error
	LikeComment(ctx context.Context, userID, commentID int64, like bool) error
}

// ThemeService reads the theme catalogue.
type ThemeService interface {
	GetAllThemes(ctx context.Context) ([]models.Theme, error)
}
