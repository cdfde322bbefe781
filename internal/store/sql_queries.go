package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createPost = `INSERT INTO posts (message, images, anonymous, theme_id, author_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING post_id, message, images, anonymous, theme_id, author_id, created_at;`

	deletePost = `DELETE FROM posts WHERE post_id = $1;`

	likePost   = `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`
	unlikePost = `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2;`

	createComment = `INSERT INTO comments (post_id, message, images, anonymous, author_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING comment_id, post_id, message, images, anonymous, author_id, created_at;`

	deleteComment = `DELETE FROM comments WHERE comment_id = $1;`

	likeComment   = `INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`
	unlikeComment = `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2;`

	getAllThemes = `SELECT theme_id, name FROM themes ORDER BY theme_id;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectPosts builds the feed/single-post SELECT with an aggregated like
// count. When viewerID is non-nil an extra liked_by_me column is added so
// the personalized and anonymous feeds come from one builder.
func selectPosts(viewerID *int64) sq.SelectBuilder {
	qb := psql.
		Select(
			"p.post_id",
			"p.message",
			"p.images",
			"p.anonymous",
			"p.theme_id",
			"p.author_id",
			"p.created_at",
			"COUNT(pl.user_id) AS likes",
		).
		From("posts p").
		LeftJoin("post_likes pl ON pl.post_id = p.post_id").
		GroupBy("p.post_id")

	if viewerID != nil {
		qb = qb.Column(sq.Expr("BOOL_OR(pl.user_id = ?) AS liked_by_me", *viewerID))
	}

	return qb
}

// selectComments mirrors selectPosts for the comments table.
func selectComments(viewerID *int64) sq.SelectBuilder {
	qb := psql.
		Select(
			"c.comment_id",
			"c.post_id",
			"c.message",
			"c.images",
			"c.anonymous",
			"c.author_id",
			"c.created_at",
			"COUNT(cl.user_id) AS likes",
		).
		From("comments c").
		LeftJoin("comment_likes cl ON cl.comment_id = c.comment_id").
		GroupBy("c.comment_id")

	if viewerID != nil {
		qb = qb.Column(sq.Expr("BOOL_OR(cl.user_id = ?) AS liked_by_me", *viewerID))
	}

	return qb
}
