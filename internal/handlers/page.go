package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"notebase/internal/contextutil"
	"notebase/internal/storage"
)

// NotePageHandler serves stored notes as rendered HTML pages.
type NotePageHandler struct {
	store    storage.Store
	parser   goldmark.Markdown
	template *template.Template
}

// notePageData holds template data for rendered note pages.
type notePageData struct {
	ID            int64
	Title         string
	KnowledgeBase string
	Content       template.HTML
}

// NewNotePageHandler creates a new handler for rendering notes.
func NewNotePageHandler(store storage.Store) *NotePageHandler {
	tmpl := template.Must(template.New("note").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} &middot; {{.KnowledgeBase}}</title>
  <style>
    body {
      font-family: Georgia, 'Times New Roman', serif;
      max-width: 46rem;
      margin: 3rem auto;
      padding: 0 1.25rem;
      line-height: 1.6;
      color: #1f2328;
      background: #fdfcf8;
    }
    header small {
      color: #6e7781;
      font-family: system-ui, sans-serif;
    }
    pre, code {
      font-family: ui-monospace, Menlo, Consolas, monospace;
      font-size: 0.9em;
      background: #f2f0e8;
    }
    pre {
      padding: 0.75rem 1rem;
      overflow-x: auto;
    }
    blockquote {
      margin-left: 0;
      padding-left: 1rem;
      border-left: 3px solid #d0c8b0;
      color: #57606a;
    }
    table {
      border-collapse: collapse;
    }
    th, td {
      border: 1px solid #d8d4c8;
      padding: 0.3rem 0.6rem;
    }
  </style>
</head>
<body>
  <header>
    <small>Knowledge base: {{.KnowledgeBase}} &middot; Note #{{.ID}}</small>
    <h1>{{.Title}}</h1>
  </header>
  <main>{{.Content}}</main>
</body>
</html>`))

	return &NotePageHandler{
		store: store,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested note as HTML.
// Raw HTML inside note content is escaped, not passed through.
func (h *NotePageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	directory, err := pathParam(r, "name")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	title, err := pathParam(r, "title")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lookup, err := h.store.FetchNote(ctx, directory, title)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch note", "knowledge_base", directory, "title", title, "error", err)
		http.Error(w, "failed to fetch note", http.StatusInternalServerError)
		return
	}
	if !lookup.Found() {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}
	note := lookup.Value

	htmlContent, err := h.renderMarkdown([]byte(note.Content))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "id", note.ID, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	pageData := notePageData{
		ID:            note.ID,
		Title:         note.Title,
		KnowledgeBase: note.Directory,
		Content:       template.HTML(htmlContent),
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute note template", "id", note.ID, "error", err)
		http.Error(w, "failed to render note", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *NotePageHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
