package http

import (
	"net/http"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/utils"
	"github.com/ashabalin/themeboard/models"
)

// register handles POST /auth/register.
//
// Body: models.RegisterRequest. On success responds 200 with the fresh
// session {token, expiredBy, userId}.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", session.UserID).Msg("user successfully registered")

	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}

// login handles POST /auth/login.
//
// Body: models.LoginRequest. On success responds 200 with the fresh session
// {token, expiredBy, userId}.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := h.decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", session.UserID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}

// logout handles POST /auth/logout (hard-gated).
//
// The session gate has already verified the token; logout revokes exactly
// that token and responds 200 with an empty object.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Logout(ctx, tokenString); err != nil {
		log.Err(err).Msg("logout failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
