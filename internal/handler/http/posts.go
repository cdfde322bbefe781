// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package http

import (
	"net/http"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/service"
	"github.com/ashabalin/themeboard/internal/utils"
	"github.com/ashabalin/themeboard/models"
)

// posts handles GET /posts.
//
// The route is public; the identity soft probe only selects between the
// anonymous and the personalized feed for the same offset. A request whose
// token does not verify, or whose claimed `id` header does not match the
// token's user, is served the anonymous feed rather than rejected.
func (h *Handler) posts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	offset, err := offsetFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var viewerID *int64
	if userID, ok := h.probeIdentity(r); ok {
		viewerID = &userID
	}

	posts, err := h.services.PostService.GetAllPosts(ctx, offset, viewerID)
	if err != nil {
		log.Err(err).Msg("feed lookup failed")
		h.writeError(w, r, err)
		return
	}

	for i := range posts {
		posts[i] = posts[i].Render()
	}

	_, _ = utils.WriteJSON(w, models.PostsResponse{Posts: posts}, http.StatusOK)
}

// createPost handles POST /post (hard-gated).
// The author is always the verified caller; the request body cannot choose
// a different one.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrSessionIsExpiredOrInvalid)
		return
	}

	var req models.CreatePostRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, userID, req)
	if err != nil {
		log.Err(err).Msg("post creation failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

// getPost handles GET /post/{postID} (public).
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := idFromPath(r, "postID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Int64("post", postID).Msg("post lookup failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post.Render(), http.StatusOK)
}

// updatePost handles PUT /post/{postID} (hard-gated, author only).
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrSessionIsExpiredOrInvalid)
		return
	}

	postID, err := idFromPath(r, "postID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdatePostRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(ctx, userID, postID, req)
	if err != nil {
		log.Err(err).Int64("post", postID).Msg("post update failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

// deletePost handles DELETE /post/{postID} (hard-gated, author only).
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrSessionIsExpiredOrInvalid)
		return
	}

	postID, err := idFromPath(r, "postID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, userID, postID); err != nil {
		log.Err(err).Int64("post", postID).Msg("post deletion failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

// likePost handles POST /post/like/{postID} (hard-gated).
// The `like` boolean from the body reaches the store unchanged.
func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrSessionIsExpiredOrInvalid)
		return
	}

	postID, err := idFromPath(r, "postID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.LikeRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.PostService.LikePost(ctx, userID, postID, *req.Like); err != nil {
		log.Err(err).Int64("post", postID).Msg("post like toggle failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
