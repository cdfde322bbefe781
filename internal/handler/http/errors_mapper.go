package http

import (
	"errors"
	"net/http"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/service"
	"github.com/ashabalin/themeboard/internal/store"
	"github.com/ashabalin/themeboard/internal/utils"
	"github.com/ashabalin/themeboard/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidJSONBody:            http.StatusBadRequest,
	ErrInvalidOffset:              http.StatusBadRequest,
	ErrInvalidPathID:              http.StatusBadRequest,

	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrWrongCredentials:          http.StatusUnauthorized,
	service.ErrSessionIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotOwner:                  http.StatusForbidden,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrPostNotFound:      http.StatusNotFound,
	store.ErrCommentNotFound:   http.StatusNotFound,
	store.ErrThemeNotFound:     http.StatusNotFound,
	store.ErrSessionNotFound:   http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError maps an error chain to an HTTP status and the matched
// sentinel. Unrecognised errors map to 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Message string `json:"message"`

	// Fields carries per-field validation detail; only present on
	// validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError is the single exit path for request failures.
//
// Validation failures are rendered with field-level detail; every other
// error is classified by statusFromError, and only the matched sentinel's
// message — never the full wrapped chain — reaches the client. Unknown
// errors get a generic 500 body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = utils.WriteJSON(w, errorResponse{
			Message: "validation failed",
			Fields:  validationErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status, matched := statusFromError(err)

	message := http.StatusText(http.StatusInternalServerError)
	if matched != nil && status != http.StatusInternalServerError {
		message = matched.Error()
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	}

	_, _ = utils.WriteJSON(w, errorResponse{Message: message}, status)
}
