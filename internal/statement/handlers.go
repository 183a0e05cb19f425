package statement

import (
	"encoding/json"
	"net/http"

	"github.com/noah-isme/backend-rental/internal/common"
)

// Handler exposes the statement endpoint.
type Handler struct {
	Svc *Service
}

// Generate handles POST /api/v1/rentals/statement.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "statement service not configured", nil)
		return
	}
	var req StatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid JSON payload", nil)
		return
	}
	resp, err := h.Svc.GenerateStatement(r.Context(), req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": resp})
}
