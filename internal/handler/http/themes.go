package http

import (
	"net/http"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/utils"
	"github.com/ashabalin/themeboard/models"
)

// themes handles GET /themes (public).
// Failures funnel through writeError like every other route; the themes
// listing is not special-cased.
func (h *Handler) themes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	themes, err := h.services.ThemeService.GetAllThemes(ctx)
	if err != nil {
		log.Err(err).Msg("themes lookup failed")
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ThemesResponse{Themes: themes}, http.StatusOK)
}
