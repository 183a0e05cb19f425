package genre

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-rental/internal/common"
)

// Handler exposes public genre endpoints.
type Handler struct {
	Registry *Registry
}

// List handles GET /api/v1/genres.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Registry == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "genre registry not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Registry.Keys()})
}

// Quote handles GET /api/v1/genres/{genre}/price.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.Registry == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "genre registry not configured", nil)
		return
	}
	key := chi.URLParam(r, "genre")
	raw := strings.TrimSpace(r.URL.Query().Get("daysRented"))
	if raw == "" {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "daysRented query parameter is required", nil)
		return
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "daysRented must be an integer", nil)
		return
	}
	if days < 0 {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "daysRented must not be negative", nil)
		return
	}
	g, err := h.Registry.Resolve(key)
	if err != nil {
		if errors.Is(err, ErrUnknownGenre) {
			common.JSONError(w, http.StatusBadRequest, "GENRE_UNKNOWN", err.Error(), nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "resolve genre", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"genre":                key,
		"daysRented":           days,
		"price":                g.Price(days),
		"frequentRenterPoints": g.Points(days),
	}})
}
