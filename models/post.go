package models

import "time"

// Post is a user-authored message published under a theme.
//
// Ownership: only the original author may edit or delete a post. The
// Anonymous flag suppresses author display in feeds, it does not affect
// authorization.
type Post struct {
	// ID is the internal unique identifier of the post.
	ID int64 `json:"id"`

	// Message is the post body text.
	Message string `json:"message"`

	// Images holds URLs of images attached to the post.
	Images []string `json:"images"`

	// Anonymous hides the author's identity when the post is rendered.
	Anonymous bool `json:"anonymous"`

	// ThemeID is the identifier of the theme the post belongs to.
	ThemeID int64 `json:"themeId"`

	// AuthorID is the identifier of the user who created the post.
	// Zeroed in JSON output when Anonymous is set; always populated at the
	// persistence layer for ownership checks.
	AuthorID int64 `json:"authorId,omitempty"`

	// Likes is the current number of users who like this post.
	Likes int64 `json:"likes"`

	// LikedByMe reports whether the requesting user likes this post.
	// Nil when the request carried no confirmed identity.
	LikedByMe *bool `json:"likedByMe,omitempty"`

	// Comments holds the post's comments. Populated only on single-post
	// reads; nil in feed listings.
	Comments []Comment `json:"comments,omitempty"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Render returns a copy of the post prepared for client output:
// an anonymous post has its author identity removed.
func (p Post) Render() Post {
	if p.Anonymous {
		p.AuthorID = 0
	}
	for i := range p.Comments {
		p.Comments[i] = p.Comments[i].Render()
	}
	return p
}
