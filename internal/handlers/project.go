package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arteva/arteva-backend/internal/http/response"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/requestdata"
	"github.com/arteva/arteva-backend/internal/services"
	"github.com/arteva/arteva-backend/internal/storage"
)

type ProjectHandler struct {
	log      *logger.Logger
	projects *services.ProjectService
	local    storage.ProjectStore
	cloud    storage.ProjectStore
	migrator *storage.Migrator
}

func NewProjectHandler(log *logger.Logger, projects *services.ProjectService, local, cloud storage.ProjectStore, migrator *storage.Migrator) *ProjectHandler {
	return &ProjectHandler{
		log:      log.With("Handler", "ProjectHandler"),
		projects: projects,
		local:    local,
		cloud:    cloud,
		migrator: migrator,
	}
}

// store picks the cloud backend for authenticated requests and the local
// one otherwise. `?backend=local` forces local even with a token, which
// the storefront uses while a signed-in user is still working offline.
func (h *ProjectHandler) store(c *gin.Context) storage.ProjectStore {
	if c.Query("backend") == "local" {
		return h.local
	}
	if requestdata.UserID(c.Request.Context()) != uuid.Nil {
		return h.cloud
	}
	return h.local
}

type saveProjectRequest struct {
	sceneEnvelope
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProductID string `json:"product_id"`
}

func (h *ProjectHandler) Save(c *gin.Context) {
	var req saveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ed, err := editorFromEnvelope(req.sceneEnvelope)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_scene", err)
		return
	}

	params := services.SaveParams{Name: req.Name, ProductID: req.ProductID}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
			return
		}
		params.ID = id
	}

	record, err := h.projects.Save(c.Request.Context(), h.store(c), ed, params)
	if err == storage.ErrNotAuthenticated {
		response.RespondError(c, http.StatusUnauthorized, "not_authenticated", err)
		return
	}
	if err == storage.ErrNotOwner {
		response.RespondError(c, http.StatusForbidden, "not_owner", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "save_failed", err)
		return
	}
	response.RespondOK(c, record)
}

func (h *ProjectHandler) List(c *gin.Context) {
	store := h.store(c)
	var err error
	var records any
	if productID := c.Query("productId"); productID != "" {
		records, err = store.ListByProduct(c.Request.Context(), productID)
	} else {
		records, err = store.List(c.Request.Context())
	}
	if err == storage.ErrNotAuthenticated {
		response.RespondError(c, http.StatusUnauthorized, "not_authenticated", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, records)
}

// ListPublic serves the community gallery: shared projects across all
// users, regardless of who is asking. Only the cloud backend can answer.
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	lister, ok := h.cloud.(storage.PublicLister)
	if !ok {
		response.RespondOK(c, []any{})
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = parsed
	}
	records, err := lister.ListPublic(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, records)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	record, err := h.store(c).Load(c.Request.Context(), id)
	if err == storage.ErrNotAuthenticated {
		response.RespondError(c, http.StatusUnauthorized, "not_authenticated", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "load_failed", err)
		return
	}
	if record == nil {
		response.RespondError(c, http.StatusNotFound, "not_found", nil)
		return
	}
	response.RespondOK(c, record)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.store(c).Delete(c.Request.Context(), id); err != nil {
		if err == storage.ErrNotAuthenticated {
			response.RespondError(c, http.StatusUnauthorized, "not_authenticated", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

type migrateRequest struct {
	DeleteAfter bool `json:"delete_after"`
}

func (h *ProjectHandler) Migrate(c *gin.Context) {
	var req migrateRequest
	_ = c.ShouldBindJSON(&req)
	result, err := h.migrator.Migrate(c.Request.Context(), req.DeleteAfter)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "migration_failed", err)
		return
	}
	response.RespondOK(c, result)
}

func (h *ProjectHandler) PendingMigration(c *gin.Context) {
	count, err := h.migrator.PendingCount(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "pending_check_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"pending": count})
}
