package service

import (
	"context"
	"fmt"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/store"
	"github.com/ashabalin/themeboard/models"
)

// commentService is the concrete implementation of CommentService.
// Ownership is enforced the same way as in postService.
type commentService struct {
	commentRepository store.CommentRepository

	logger *logger.Logger
}

// NewCommentService constructs a CommentService.
func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// CreateComment attaches a new comment authored by userID to the post.
func (c *commentService) CreateComment(ctx context.Context, userID, postID int64, req models.CreateCommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment := models.Comment{
		PostID:    postID,
		Message:   req.Message,
		Images:    req.Images,
		Anonymous: req.Anonymous,
		AuthorID:  userID,
	}

	created, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Int64("author", userID).Int64("post", postID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// EditComment applies req to the comment after confirming userID authored it.
func (c *commentService) EditComment(ctx context.Context, userID, commentID int64, req models.EditCommentRequest) (models.Comment, error) {
	if err := c.checkOwnership(ctx, userID, commentID); err != nil {
		return models.Comment{}, err
	}

	updated, err := c.commentRepository.UpdateComment(ctx, commentID, req)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment update failed: %w", err)
	}

	return updated, nil
}

// DeleteComment removes the comment after confirming userID authored it.
func (c *commentService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	if err := c.checkOwnership(ctx, userID, commentID); err != nil {
		return err
	}

	if err := c.commentRepository.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("comment deletion failed: %w", err)
	}

	return nil
}

// LikeComment passes the like boolean through to the store unchanged.
func (c *commentService) LikeComment(ctx context.Context, userID, commentID int64, like bool) error {
	if err := c.commentRepository.SetCommentLike(ctx, commentID, userID, like); err != nil {
		return fmt.Errorf("comment like toggle failed: %w", err)
	}

	return nil
}

func (c *commentService) checkOwnership(ctx context.Context, userID, commentID int64) error {
	log := logger.FromContext(ctx)

	comment, err := c.commentRepository.GetComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("comment lookup failed: %w", err)
	}

	if comment.AuthorID != userID {
		log.Warn().Int64("caller", userID).Int64("author", comment.AuthorID).Int64("comment", commentID).Msg("mutation denied: caller is not the author")
		return ErrNotOwner
	}

	return nil
}
