package handlers

import (
	"errors"
	"net/http"

	"notebase/internal/contextutil"
	"notebase/internal/export"
	"notebase/internal/storage"
	"notebase/internal/validator"
)

// KnowledgeBaseRequest is the body for creating or renaming a knowledge base.
type KnowledgeBaseRequest struct {
	Name string `json:"name" validate:"required,max=200,keyname"`
}

// KnowledgeBaseHandler handles HTTP requests for knowledge bases.
type KnowledgeBaseHandler struct {
	store    storage.Store
	validate *validator.Validator
}

// NewKnowledgeBaseHandler creates a new KnowledgeBaseHandler.
func NewKnowledgeBaseHandler(store storage.Store, validate *validator.Validator) *KnowledgeBaseHandler {
	return &KnowledgeBaseHandler{
		store:    store,
		validate: validate,
	}
}

// List returns all knowledge bases.
func (h *KnowledgeBaseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kbs, err := h.store.FetchAllKnowledgeBases(ctx)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to list knowledge bases")
		return
	}

	resp := make([]KnowledgeBaseResponse, 0, len(kbs))
	for _, kb := range kbs {
		resp = append(resp, toKnowledgeBaseResponse(kb))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a knowledge base. A taken name yields 409 Conflict.
func (h *KnowledgeBaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req KnowledgeBaseRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	kb := &storage.KnowledgeBase{Name: req.Name}
	ok, err := h.store.AddKnowledgeBase(ctx, kb)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to create knowledge base")
		return
	}
	if !ok {
		writeError(w, http.StatusConflict, "knowledge base already exists")
		return
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "knowledge base created", "id", kb.ID, "name", kb.Name)
	writeJSON(w, http.StatusCreated, toKnowledgeBaseResponse(*kb))
}

// Get returns a single knowledge base by name.
func (h *KnowledgeBaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lookup, err := h.store.FetchKnowledgeBase(ctx, name)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to fetch knowledge base")
		return
	}
	if !lookup.Found() {
		writeError(w, http.StatusNotFound, "knowledge base not found")
		return
	}

	writeJSON(w, http.StatusOK, toKnowledgeBaseResponse(lookup.Value))
}

// Rename changes the name of an existing knowledge base.
// Notes keep their directory; they are not moved to the new name.
func (h *KnowledgeBaseHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req KnowledgeBaseRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	current, err := h.store.FetchKnowledgeBase(ctx, name)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to fetch knowledge base")
		return
	}
	if !current.Found() {
		writeError(w, http.StatusNotFound, "knowledge base not found")
		return
	}

	if req.Name != name {
		taken, err := h.store.ContainsKnowledgeBase(ctx, req.Name)
		if err != nil {
			handleStoreError(ctx, w, err, "failed to check knowledge base")
			return
		}
		if taken {
			writeError(w, http.StatusConflict, "knowledge base already exists")
			return
		}
	}

	updated, err := h.store.UpdateKnowledgeBase(ctx, &storage.KnowledgeBase{ID: current.Value.ID, Name: req.Name})
	if err != nil {
		handleStoreError(ctx, w, err, "failed to update knowledge base")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "knowledge base not found")
		return
	}

	writeJSON(w, http.StatusOK, toKnowledgeBaseResponse(*updated))
}

// Delete removes a knowledge base. Deleting a missing knowledge base succeeds.
func (h *KnowledgeBaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.store.DeleteKnowledgeBase(ctx, name)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to delete knowledge base")
		return
	}
	if !deleted.IsVoid() {
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "knowledge base deleted", "id", deleted.ID, "name", deleted.Name)
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export writes the knowledge base and its notes as YAML.
func (h *KnowledgeBaseHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := export.Build(ctx, h.store, name)
	if err != nil {
		if errors.Is(err, export.ErrKnowledgeBaseNotFound) {
			writeError(w, http.StatusNotFound, "knowledge base not found")
			return
		}
		handleStoreError(ctx, w, err, "failed to export knowledge base")
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if err := export.Encode(w, doc); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode export", "name", name, "error", err)
	}
}
