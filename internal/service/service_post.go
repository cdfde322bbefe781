// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package service

import (
	"context"
	"fmt"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/store"
	"github.com/ashabalin/themeboard/models"
)

// postService is the concrete implementation of PostService.
//
// Ownership is enforced here, not in the store: every mutating method first
// resolves the post and compares its AuthorID with the verified caller ID.
// The store only ever sees mutations that have already passed that check.
type postService struct {
	postRepository    store.PostRepository
	commentRepository store.CommentRepository

	// feedPageSize is the fixed number of posts per GET /posts page.
	feedPageSize int

	logger *logger.Logger
}

// NewPostService constructs a PostService with the given feed page size.
func NewPostService(postRepository store.PostRepository, commentRepository store.CommentRepository, feedPageSize int, logger *logger.Logger) PostService {
	return &postService{
		postRepository:    postRepository,
		commentRepository: commentRepository,
		feedPageSize:      feedPageSize,
		logger:            logger,
	}
}

// CreatePost publishes a new post authored by userID.
func (p *postService) CreatePost(ctx context.Context, userID int64, req models.CreatePostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	post := models.Post{
		Message:   req.Message,
		Images:    req.Images,
		Anonymous: req.Anonymous,
		ThemeID:   req.ThemeID,
		AuthorID:  userID,
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("author", userID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// GetPost returns one post with its full comment list. Publicly readable,
// so no viewer personalization is applied.
func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, postID, nil)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	comments, err := p.commentRepository.GetPostComments(ctx, postID, nil)
	if err != nil {
		return models.Post{}, fmt.Errorf("comments lookup failed: %w", err)
	}
	post.Comments = comments

	return post, nil
}

// GetAllPosts returns one feed page, newest first. When viewerID is non-nil
// the page is personalized for that user.
func (p *postService) GetAllPosts(ctx context.Context, offset int, viewerID *int64) ([]models.Post, error) {
	posts, err := p.postRepository.GetAllPosts(ctx, offset, p.feedPageSize, viewerID)
	if err != nil {
		return nil, fmt.Errorf("feed lookup failed: %w", err)
	}

	return posts, nil
}

// UpdatePost applies req to the post after confirming userID authored it.
func (p *postService) UpdatePost(ctx context.Context, userID, postID int64, req models.UpdatePostRequest) (models.Post, error) {
	if err := p.checkOwnership(ctx, userID, postID); err != nil {
		return models.Post{}, err
	}

	updated, err := p.postRepository.UpdatePost(ctx, postID, req)
	if err != nil {
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return updated, nil
}

// DeletePost removes the post after confirming userID authored it.
func (p *postService) DeletePost(ctx context.Context, userID, postID int64) error {
	if err := p.checkOwnership(ctx, userID, postID); err != nil {
		return err
	}

	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

// LikePost passes the like boolean through to the store unchanged.
// No ownership check: anyone authenticated may like any post.
func (p *postService) LikePost(ctx context.Context, userID, postID int64, like bool) error {
	if err := p.postRepository.SetPostLike(ctx, postID, userID, like); err != nil {
		return fmt.Errorf("post like toggle failed: %w", err)
	}

	return nil
}

func (p *postService) checkOwnership(ctx context.Context, userID, postID int64) error {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.GetPost(ctx, postID, nil)
	if err != nil {
		return fmt.Errorf("post lookup failed: %w", err)
	}

	if post.AuthorID != userID {
		log.Warn().Int64("caller", userID).Int64("author", post.AuthorID).Int64("post", postID).Msg("mutation denied: caller is not the author")
		return ErrNotOwner
	}

	return nil
}
