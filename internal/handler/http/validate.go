package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/go-chi/chi/v5"
)

// decodeBody decodes the request body into dst and checks it against its
// declared schema. On failure the returned error is already classifiable by
// writeError (ErrInvalidJSONBody or a *validators.ValidationError); the
// caller must not run any business logic after a non-nil return.
func (h *Handler) decodeBody(r *http.Request, dst any) error {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		return ErrInvalidJSONBody
	}

	if err := h.validate.Validate(r.Context(), dst); err != nil {
		log.Err(err).Msg("request failed schema validation")
		return err
	}

	return nil
}

// offsetFromQuery validates and coerces the `offset` query parameter.
// An absent parameter defaults to 0; anything that is not a non-negative
// integer fails with ErrInvalidOffset.
func offsetFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, ErrInvalidOffset
	}

	return offset, nil
}

// idFromPath parses the named chi URL parameter as a positive int64.
func idFromPath(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidPathID
	}

	return id, nil
}
