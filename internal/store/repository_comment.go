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

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. It mirrors postRepository's idempotent like semantics
// for the comment_likes relation.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	images, err := encodeImages(comment.Images)
	if err != nil {
		return models.Comment{}, err
	}

	row := r.db.QueryRowContext(ctx, createComment, comment.PostID, comment.Message, images, comment.Anonymous, comment.AuthorID)

	created, err := scanCommentRow(row.Scan, false, false)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Comment{}, ErrPostNotFound
		default:
			log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: inserting comment failed")
			return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

func (r *commentRepository) GetComment(ctx context.Context, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectComments(nil).Where("c.comment_id = ?", commentID).ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	comment, err := scanCommentRow(row.Scan, true, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error: scanning comment failed")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return comment, nil
}

func (r *commentRepository) GetPostComments(ctx context.Context, postID int64, viewerID *int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectComments(viewerID).
		Where("c.post_id = ?", postID).
		OrderBy("c.created_at ASC", "c.comment_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetPostComments").Msg("error: comments query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanCommentRow(rows.Scan, true, viewerID != nil)
		if err != nil {
			log.Err(err).Str("func", "*commentRepository.GetPostComments").Msg("error: scanning comment row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, commentID int64, upd models.EditCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	qb := psql.Update("comments").Where("comment_id = ?", commentID).
		Suffix("RETURNING comment_id, post_id, message, images, anonymous, author_id, created_at")

	changed := false
	if upd.Message != nil {
		qb = qb.Set("message", *upd.Message)
		changed = true
	}
	if upd.Images != nil {
		images, err := encodeImages(upd.Images)
		if err != nil {
			return models.Comment{}, err
		}
		qb = qb.Set("images", images)
		changed = true
	}
	if upd.Anonymous != nil {
		qb = qb.Set("anonymous", *upd.Anonymous)
		changed = true
	}

	if !changed {
		return r.GetComment(ctx, commentID)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanCommentRow(row.Scan, false, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}

		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error: updating comment failed")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error: deleting comment failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func (r *commentRepository) SetCommentLike(ctx context.Context, commentID, userID int64, like bool) error {
	log := logger.FromContext(ctx)

	query := likeComment
	if !like {
		query = unlikeComment
	}

	if _, err := r.db.ExecContext(ctx, query, commentID, userID); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrCommentNotFound
		default:
			log.Err(err).Str("func", "*commentRepository.SetCommentLike").Bool("like", like).Msg("error: toggling like failed")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// scanCommentRow scans one comment row with the same column conventions as
// scanPostRow.
func scanCommentRow(scan func(dest ...any) error, withLikes, withViewer bool) (models.Comment, error) {
	var (
		comment   models.Comment
		rawImages []byte
		likes     sql.NullInt64
		likedByMe sql.NullBool
	)

	dest := []any{&comment.ID, &comment.PostID, &comment.Message, &rawImages, &comment.Anonymous, &comment.AuthorID, &comment.CreatedAt}
	if withLikes {
		dest = append(dest, &likes)
	}
	if withViewer {
		dest = append(dest, &likedByMe)
	}

	if err := scan(dest...); err != nil {
		return models.Comment{}, err
	}

	images, err := decodeImages(rawImages)
	if err != nil {
		return models.Comment{}, err
	}
	comment.Images = images

	comment.Likes = likes.Int64
	if withViewer {
		liked := likedByMe.Valid && likedByMe.Bool
		comment.LikedByMe = &liked
	}

	return comment, nil
}
