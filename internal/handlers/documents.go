package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/auth"
	"github.com/jumaanebey/tbd-property-management/httpx"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/store"
	"github.com/jumaanebey/tbd-property-management/validation"
)

var documentTypes = []string{"lease", "notice", "receipt", "maintenance", "other"}

type DocumentHandler struct {
	Tenants *store.TenantStore
	Store   *store.DocumentStore
}

func NewDocumentHandler(db *gorm.DB) *DocumentHandler {
	return &DocumentHandler{
		Tenants: store.NewTenantStore(db),
		Store:   store.NewDocumentStore(db),
	}
}

// List: GET /api/documents
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	items, err := h.Store.List(r.Context(), tn.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_documents", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// Create: POST /api/documents – registers metadata; the file itself lives
// in object storage and is referenced by URL.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	tn, ok := requireTenant(w, r, h.Tenants)
	if !ok {
		return
	}
	var req struct {
		Title    string `json:"title"`
		Type     string `json:"type"`
		FileURL  string `json:"file_url"`
		FileSize int64  `json:"file_size"`
		MimeType string `json:"mime_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.Type == "" {
		req.Type = "other"
	}
	v := validation.Violations{}
	validation.Required("title", req.Title, v)
	validation.Required("file_url", req.FileURL, v)
	validation.OneOf("type", req.Type, documentTypes, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	doc := models.Document{
		TenantID:   tn.ID,
		Title:      req.Title,
		Type:       req.Type,
		FileURL:    req.FileURL,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		Status:     "active",
		UploadedBy: uid,
	}
	if err := h.Store.Create(r.Context(), &doc); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "create_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, doc)
}
