package http

import (
	"net/http"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/service"
	"github.com/ashabalin/themeboard/internal/utils"
	"github.com/ashabalin/themeboard/models"
)

// createComment handles POST /comment/{postID} (hard-gated).
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
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

	var req models.CreateCommentRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.CreateComment(ctx, userID, postID, req)
	if err != nil {
		log.Err(err).Int64("post", postID).Msg("comment creation failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, comment, http.StatusOK)
}

// editComment handles PUT /comment/{commentID} (hard-gated, author only).
func (h *Handler) editComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrSessionIsExpiredOrInvalid)
		return
	}

	commentID, err := idFromPath(r, "commentID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.EditCommentRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.EditComment(ctx, userID, commentID, req)
	if err != nil {
		log.Err(err).Int64("comment", commentID).Msg("comment update failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, comment, http.StatusOK)
}

// deleteComment handles DELETE /comment/{commentID} (hard-gated, author only).
func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrSessionIsExpiredOrInvalid)
		return
	}

	commentID, err := idFromPath(r, "commentID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, userID, commentID); err != nil {
		log.Err(err).Int64("comment", commentID).Msg("comment deletion failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

// likeComment handles POST /comment/like/{commentID} (hard-gated).
func (h *Handler) likeComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrSessionIsExpiredOrInvalid)
		return
	}

	commentID, err := idFromPath(r, "commentID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.LikeRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.CommentService.LikeComment(ctx, userID, commentID, *req.Like); err != nil {
		log.Err(err).Int64("comment", commentID).Msg("comment like toggle failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
