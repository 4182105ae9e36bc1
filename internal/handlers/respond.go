package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"notebase/internal/contextutil"
	"notebase/internal/storage"
	"notebase/internal/validator"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error  string                     `json:"error"`
	Fields validator.ValidationErrors `json:"fields,omitempty"`
}

// KnowledgeBaseResponse is the JSON form of a knowledge base.
type KnowledgeBaseResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NoteResponse is the JSON form of a note.
type NoteResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	KnowledgeBase string `json:"knowledge_base"`
}

func toKnowledgeBaseResponse(kb storage.KnowledgeBase) KnowledgeBaseResponse {
	return KnowledgeBaseResponse{ID: kb.ID, Name: kb.Name}
}

func toNoteResponse(n storage.Note) NoteResponse {
	return NoteResponse{ID: n.ID, Title: n.Title, Content: n.Content, KnowledgeBase: n.Directory}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// It writes the error response itself and reports whether the caller may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validator, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := v.Validate(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verrs.Error(), Fields: verrs})
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// pathParam returns the chi URL parameter key, decoded exactly once.
// chi matches against r.URL.RawPath when the client's escaping differs from
// the default one, and against the already decoded r.URL.Path otherwise.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(value)
		if err != nil {
			return "", fmt.Errorf("invalid %s encoding: %w", key, err)
		}
		value = unescaped
	}
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

// handleStoreError maps store errors to HTTP responses.
func handleStoreError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	logger := contextutil.LoggerFromContext(ctx)

	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		logger.WarnContext(ctx, msg, "error", err)
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(ctx, msg, "error", err)
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		logger.ErrorContext(ctx, msg, "error", err)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
