package models

import "time"

// Comment is a user-authored reply attached to a post.
// The ownership and anonymity rules are the same as for [Post].
type Comment struct {
	// ID is the internal unique identifier of the comment.
	ID int64 `json:"id"`

	// PostID is the identifier of the post the comment belongs to.
	PostID int64 `json:"postId"`

	// Message is the comment body text.
	Message string `json:"message"`

	// Images holds URLs of images attached to the comment.
	Images []string `json:"images"`

	// Anonymous hides the author's identity when the comment is rendered.
	Anonymous bool `json:"anonymous"`

	// AuthorID is the identifier of the user who created the comment.
	AuthorID int64 `json:"authorId,omitempty"`

	// Likes is the current number of users who like this comment.
	Likes int64 `json:"likes"`

	// LikedByMe reports whether the requesting user likes this comment.
	// Nil when the request carried no confirmed identity.
	LikedByMe *bool `json:"likedByMe,omitempty"`

	// CreatedAt is the timestamp when the comment was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// Render returns a copy of the comment prepared for client output:
// an anonymous comment has its author identity removed.
func (c Comment) Render() Comment {
	if c.Anonymous {
		c.AuthorID = 0
	}
	return c
}
