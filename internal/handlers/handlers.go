package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/auth"
	"github.com/jumaanebey/tbd-property-management/httpx"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/store"
)

// requireTenant resolves the tenant record behind the authenticated user.
// Writes the error response itself when resolution fails.
func requireTenant(w http.ResponseWriter, r *http.Request, tenants *store.TenantStore) (models.Tenant, bool) {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
		return models.Tenant{}, false
	}
	tn, err := tenants.ByUserID(r.Context(), uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "tenant_not_found", nil)
		} else {
			httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		}
		return models.Tenant{}, false
	}
	return tn, true
}
