package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/httpx"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/services"
	"github.com/jumaanebey/tbd-property-management/internal/store"
	"github.com/jumaanebey/tbd-property-management/validation"
)

var (
	maintenanceCategories = []string{"plumbing", "electrical", "hvac", "appliance", "structural", "pest", "other"}
	maintenancePriorities = []string{"low", "medium", "high", "emergency"}
	maintenanceStatuses   = []string{
		models.MaintenanceStatusPending, models.MaintenanceStatusAssigned,
		models.MaintenanceStatusInProgress, models.MaintenanceStatusCompleted,
		models.MaintenanceStatusCancelled,
	}
)

type MaintenanceHandler struct {
	Tenants *store.TenantStore
	Store   *store.MaintenanceStore
	Svc     *services.MaintenanceService
}

func NewMaintenanceHandler(db *gorm.DB) *MaintenanceHandler {
	return &MaintenanceHandler{
		Tenants: store.NewTenantStore(db),
		Store:   store.NewMaintenanceStore(db),
		Svc:     services.NewMaintenanceService(db),
	}
}

// List: GET /api/maintenance
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	items, err := h.Store.List(r.Context(), tn.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_requests", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// Create: POST /api/maintenance
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Priority    string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}
	if req.Category == "" {
		req.Category = "other"
	}
	v := validation.Violations{}
	validation.Required("title", req.Title, v)
	validation.OneOf("category", req.Category, maintenanceCategories, v)
	validation.OneOf("priority", req.Priority, maintenancePriorities, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	mr := models.MaintenanceRequest{
		TenantID:    tn.ID,
		UnitID:      tn.UnitID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      models.MaintenanceStatusPending,
	}
	if err := h.Store.Create(r.Context(), &mr); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "create_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, mr)
}

// Update: POST /api/maintenance/update – status transitions (e.g. tenant
// cancelling, manager completing).
func (h *MaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	var req struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("id", req.ID, v)
	validation.OneOf("status", req.Status, maintenanceStatuses, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	// ownership check before mutating
	var count int64
	if err := h.Store.DB.WithContext(r.Context()).Model(&models.MaintenanceRequest{}).
		Where("id = ? AND tenant_id = ?", req.ID, tn.ID).Count(&count).Error; err != nil || count == 0 {
		httpx.JSONError(w, http.StatusNotFound, "request_not_found", nil)
		return
	}
	updates := map[string]any{"status": req.Status}
	if req.Status == models.MaintenanceStatusCompleted {
		updates["actual_completion"] = time.Now()
	}
	if err := h.Store.Update(r.Context(), req.ID, updates); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "update_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats: GET /api/maintenance/stats
func (h *MaintenanceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	stats, err := h.Svc.Stats(r.Context(), tn.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "stats_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
