package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/httpx"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/store"
)

type NotificationHandler struct {
	Tenants *store.TenantStore
	Store   *store.NotificationStore
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{
		Tenants: store.NewTenantStore(db),
		Store:   store.NewNotificationStore(db),
	}
}

// List: GET /api/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	items, err := h.Store.List(r.Context(), tn.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_notifications", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// MarkRead: POST /api/notifications/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var count int64
	if err := h.Store.DB.WithContext(r.Context()).Model(&models.Notification{}).
		Where("id = ? AND tenant_id = ?", req.ID, tn.ID).Count(&count).Error; err != nil || count == 0 {
		httpx.JSONError(w, http.StatusNotFound, "notification_not_found", nil)
		return
	}
	if err := h.Store.MarkRead(r.Context(), req.ID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "update_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
