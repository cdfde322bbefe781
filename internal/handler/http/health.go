package http

import (
	"net/http"

	"github.com/ashabalin/themeboard/internal/utils"
	"github.com/ashabalin/themeboard/models"
)

// health handles GET /. Always 200.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}, http.StatusOK)
}
