package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/httpx"
	"github.com/jumaanebey/tbd-property-management/internal/store"
)

type TenantHandler struct {
	Tenants *store.TenantStore
}

func NewTenantHandler(db *gorm.DB) *TenantHandler {
	return &TenantHandler{Tenants: store.NewTenantStore(db)}
}

// Profile: GET /api/tenant
func (h *TenantHandler) Profile(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, tn)
}

// Update: PUT /api/tenant – tenant-editable contact fields only.
func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if err := h.Tenants.UpdateProfile(r.Context(), tn.ID, updates); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "update_failed", nil)
		return
	}
	updated, err := h.Tenants.ByUserID(r.Context(), tn.UserID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}
