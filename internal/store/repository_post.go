// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/models"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
//
// Like counts are aggregated from the post_likes relation at read time;
// like/unlike writes are single idempotent statements (ON CONFLICT DO
// NOTHING / DELETE), so concurrent toggles from the same user can never
// double-count.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	images, err := encodeImages(post.Images)
	if err != nil {
		return models.Post{}, err
	}

	row := r.db.QueryRowContext(ctx, createPost, post.Message, images, post.Anonymous, post.ThemeID, post.AuthorID)

	created, err := scanPostRow(row.Scan, false, false)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Post{}, ErrThemeNotFound
		default:
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: inserting post failed")
			return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *postRepository) GetPost(ctx context.Context, postID int64, viewerID *int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPosts(viewerID).Where("p.post_id = ?", postID).ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	post, err := scanPostRow(row.Scan, true, viewerID != nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: scanning post failed")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) GetAllPosts(ctx context.Context, offset, limit int, viewerID *int64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPosts(viewerID).
		OrderBy("p.created_at DESC", "p.post_id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetAllPosts").Msg("error: feed query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, limit)
	for rows.Next() {
		post, err := scanPostRow(rows.Scan, true, viewerID != nil)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.GetAllPosts").Msg("error: scanning feed row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, postID int64, upd models.UpdatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	qb := psql.Update("posts").Where("post_id = ?", postID).
		Suffix("RETURNING post_id, message, images, anonymous, theme_id, author_id, created_at")

	changed := false
	if upd.Message != nil {
		qb = qb.Set("message", *upd.Message)
		changed = true
	}
	if upd.Images != nil {
		images, err := encodeImages(upd.Images)
		if err != nil {
			return models.Post{}, err
		}
		qb = qb.Set("images", images)
		changed = true
	}
	if upd.Anonymous != nil {
		qb = qb.Set("anonymous", *upd.Anonymous)
		changed = true
	}

	// nothing to change: read the current state instead of issuing an
	// empty UPDATE, which postgres rejects
	if !changed {
		return r.GetPost(ctx, postID, nil)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanPostRow(row.Scan, false, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: updating post failed")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: deleting post failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *postRepository) SetPostLike(ctx context.Context, postID, userID int64, like bool) error {
	log := logger.FromContext(ctx)

	query := likePost
	if !like {
		query = unlikePost
	}

	if _, err := r.db.ExecContext(ctx, query, postID, userID); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrPostNotFound
		default:
			log.Err(err).Str("func", "*postRepository.SetPostLike").Bool("like", like).Msg("error: toggling like failed")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// scanPostRow scans one post row. withLikes and withViewer must match the
// query's column list: SELECTs built by [selectPosts] carry a likes column
// and, for a non-nil viewer, a liked_by_me column; RETURNING rows of INSERT
// and UPDATE statements carry neither.
func scanPostRow(scan func(dest ...any) error, withLikes, withViewer bool) (models.Post, error) {
	var (
		post      models.Post
		rawImages []byte
		likes     sql.NullInt64
		likedByMe sql.NullBool
	)

	dest := []any{&post.ID, &post.Message, &rawImages, &post.Anonymous, &post.ThemeID, &post.AuthorID, &post.CreatedAt}
	if withLikes {
		dest = append(dest, &likes)
	}
	if withViewer {
		dest = append(dest, &likedByMe)
	}

	if err := scan(dest...); err != nil {
		return models.Post{}, err
	}

	images, err := decodeImages(rawImages)
	if err != nil {
		return models.Post{}, err
	}
	post.Images = images

	post.Likes = likes.Int64
	if withViewer {
		liked := likedByMe.Valid && likedByMe.Bool
		post.LikedByMe = &liked
	}

	return post, nil
}
