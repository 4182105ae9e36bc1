// Package export serializes a knowledge base and its notes as YAML.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"notebase/internal/storage"
)

// ErrKnowledgeBaseNotFound is returned when the requested knowledge base does not exist.
var ErrKnowledgeBaseNotFound = errors.New("knowledge base not found")

// Reader is the subset of storage.Store needed to build an export.
type Reader interface {
	FetchKnowledgeBase(ctx context.Context, name string) (storage.Lookup[storage.KnowledgeBase], error)
	FetchNotes(ctx context.Context, directory string) ([]storage.Note, error)
}

// Document is the YAML shape of an exported knowledge base.
type Document struct {
	KnowledgeBase string `yaml:"knowledge_base"`
	ID            int64  `yaml:"id"`
	Notes         []Page `yaml:"notes"`
}

// Page is a single exported note.
type Page struct {
	ID      int64  `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Build collects the knowledge base named name and its notes.
func Build(ctx context.Context, r Reader, name string) (*Document, error) {
	lookup, err := r.FetchKnowledgeBase(ctx, name)
	if err != nil {
		return nil, err
	}
	if !lookup.Found() {
		return nil, fmt.Errorf("%w: %q", ErrKnowledgeBaseNotFound, name)
	}

	notes, err := r.FetchNotes(ctx, name)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		KnowledgeBase: lookup.Value.Name,
		ID:            lookup.Value.ID,
		Notes:         make([]Page, 0, len(notes)),
	}
	for _, n := range notes {
		doc.Notes = append(doc.Notes, Page{ID: n.ID, Title: n.Title, Content: n.Content})
	}
	return doc, nil
}

// Write builds the export for name and encodes it as YAML to w.
func Write(ctx context.Context, w io.Writer, r Reader, name string) error {
	doc, err := Build(ctx, r, name)
	if err != nil {
		return err
	}
	return Encode(w, doc)
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return enc.Close()
}
