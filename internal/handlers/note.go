package handlers

import (
	"net/http"

	"notebase/internal/contextutil"
	"notebase/internal/storage"
	"notebase/internal/validator"
)

// CreateNoteRequest is the body for adding a note to a knowledge base.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=200,keyname"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the body for replacing a note's content.
type UpdateNoteRequest struct {
	Content *string `json:"content" validate:"required"`
}

// ExistsResponse reports whether a note exists.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	store    storage.Store
	validate *validator.Validator
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(store storage.Store, validate *validator.Validator) *NoteHandler {
	return &NoteHandler{
		store:    store,
		validate: validate,
	}
}

// List returns every note of a knowledge base. Notes whose knowledge base
// does not exist are still listed.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	directory, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	notes, err := h.store.FetchNotes(ctx, directory)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to list notes")
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a note to a knowledge base. An existing title yields 409 Conflict.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	directory, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CreateNoteRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	note := &storage.Note{Title: req.Title, Content: req.Content, Directory: directory}
	ok, err := h.store.AddNote(ctx, note)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to create note")
		return
	}
	if !ok {
		writeError(w, http.StatusInternalServerError, "failed to create note")
		return
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note created", "id", note.ID, "title", note.Title, "knowledge_base", directory)
	writeJSON(w, http.StatusCreated, toNoteResponse(*note))
}

// Get returns a single note.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	note, ok := h.fetch(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Update replaces the content of an existing note.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, ok := h.fetch(w, r)
	if !ok {
		return
	}

	var req UpdateNoteRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	latest := current
	latest.Content = *req.Content
	updated, err := h.store.UpdateNote(ctx, &latest)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to update note")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "note not found")
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(*updated))
}

// Delete removes a note. Deleting a missing note succeeds.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	directory, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	title, err := pathParam(r, "title")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.store.DeleteNote(ctx, directory, title)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to delete note")
		return
	}
	if !deleted.IsVoid() {
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note deleted", "id", deleted.ID, "title", deleted.Title, "knowledge_base", deleted.Directory)
	}

	w.WriteHeader(http.StatusNoContent)
}

// Exists reports whether a note with the given title exists. With a
// directory query parameter the check is limited to that knowledge base.
func (h *NoteHandler) Exists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	title := query.Get("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	var (
		exists bool
		err    error
	)
	if query.Has("directory") {
		exists, err = h.store.ContainsNote(ctx, query.Get("directory"), title)
	} else {
		exists, err = h.store.ContainsNoteAnywhere(ctx, title)
	}
	if err != nil {
		handleStoreError(ctx, w, err, "failed to check note")
		return
	}

	writeJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// fetch resolves the {name}/{title} path parameters to a stored note,
// writing an error response when it cannot.
func (h *NoteHandler) fetch(w http.ResponseWriter, r *http.Request) (storage.Note, bool) {
	ctx := r.Context()

	directory, err := pathParam(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return storage.VoidNote, false
	}
	title, err := pathParam(r, "title")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return storage.VoidNote, false
	}

	lookup, err := h.store.FetchNote(ctx, directory, title)
	if err != nil {
		handleStoreError(ctx, w, err, "failed to fetch note")
		return storage.VoidNote, false
	}
	if !lookup.Found() {
		writeError(w, http.StatusNotFound, "note not found")
		return storage.VoidNote, false
	}

	return lookup.Value, true
}
