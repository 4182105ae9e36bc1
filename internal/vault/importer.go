package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"notebase/internal/contextutil"
	"notebase/internal/storage"
)

// Writer is the subset of storage.Store used by the importer.
type Writer interface {
	AddKnowledgeBase(ctx context.Context, kb *storage.KnowledgeBase) (bool, error)
	ContainsKnowledgeBase(ctx context.Context, name string) (bool, error)
	AddNote(ctx context.Context, note *storage.Note) (bool, error)
}

// ErrPartialImport reports that an import finished but some files could not
// be imported. The count is in ImportStats.Errors.
var ErrPartialImport = errors.New("some files failed to import")

// ImportStats summarizes one import run.
type ImportStats struct {
	Files    int
	Imported int
	Skipped  int // Notes whose title already exists in the knowledge base
	Errors   int
}

// Importer adds a folder of markdown files to a knowledge base as notes.
type Importer struct {
	store   Writer
	titles  *TitleExtractor
	exclude []string
}

// Option configures an Importer or Watcher.
type Option func(*Importer)

// WithExclude skips files and directories matching any of the doublestar
// patterns, relative to the imported root.
func WithExclude(patterns ...string) Option {
	return func(i *Importer) {
		i.exclude = append(i.exclude, patterns...)
	}
}

// NewImporter creates a new Importer writing into store.
func NewImporter(store Writer, opts ...Option) *Importer {
	i := &Importer{
		store:  store,
		titles: NewTitleExtractor(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportFile adds a single markdown file as a note in knowledgeBase.
// It returns storage.ErrDuplicateKey if the derived title is taken.
func (i *Importer) ImportFile(ctx context.Context, knowledgeBase string, file ScannedFile) (*storage.Note, error) {
	note, err := i.readNote(knowledgeBase, file)
	if err != nil {
		return nil, err
	}
	if _, err := i.store.AddNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// readNote loads file and derives its note title.
func (i *Importer) readNote(knowledgeBase string, file ScannedFile) (*storage.Note, error) {
	content, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", file.AbsPath, err)
	}

	title := i.titles.Title(content, filepath.Base(file.RelPath))
	if !validTitle(title) {
		return nil, fmt.Errorf("no valid title could be derived for %s", file.RelPath)
	}

	return &storage.Note{
		Title:     title,
		Content:   string(content),
		Directory: knowledgeBase,
	}, nil
}

// ImportDir scans root and imports every markdown file into knowledgeBase,
// creating the knowledge base if needed. Errors for individual files are
// logged and counted but don't stop the import.
func (i *Importer) ImportDir(ctx context.Context, knowledgeBase, root string) (ImportStats, error) {
	logger := contextutil.LoggerFromContext(ctx)
	var stats ImportStats

	if knowledgeBase == "" {
		return stats, errors.New("knowledge base name is required")
	}

	if err := i.ensureKnowledgeBase(ctx, knowledgeBase); err != nil {
		return stats, err
	}

	files, err := Scan(ctx, root, i.exclude...)
	if err != nil {
		return stats, err
	}
	stats.Files = len(files)

	logger.InfoContext(ctx, "starting import", "knowledge_base", knowledgeBase, "root", root, "total_files", len(files))

	for _, file := range files {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		note, err := i.ImportFile(ctx, knowledgeBase, file)
		switch {
		case errors.Is(err, storage.ErrDuplicateKey):
			stats.Skipped++
			logger.DebugContext(ctx, "skipping existing note", "rel_path", file.RelPath)
		case err != nil:
			stats.Errors++
			logger.ErrorContext(ctx, "failed to import file", "rel_path", file.RelPath, "folder", file.Folder, "error", err)
		default:
			stats.Imported++
			logger.DebugContext(ctx, "imported note", "rel_path", file.RelPath, "folder", file.Folder, "title", note.Title, "id", note.ID)
		}
	}

	logger.InfoContext(ctx, "import completed",
		"knowledge_base", knowledgeBase,
		"total_files", stats.Files,
		"imported", stats.Imported,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
	)

	if stats.Errors > 0 {
		return stats, fmt.Errorf("%w: %d of %d files", ErrPartialImport, stats.Errors, stats.Files)
	}
	return stats, nil
}

// ensureKnowledgeBase creates knowledgeBase unless it already exists.
func (i *Importer) ensureKnowledgeBase(ctx context.Context, knowledgeBase string) error {
	exists, err := i.store.ContainsKnowledgeBase(ctx, knowledgeBase)
	if err != nil {
		return fmt.Errorf("failed to check knowledge base: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := i.store.AddKnowledgeBase(ctx, &storage.KnowledgeBase{Name: knowledgeBase}); err != nil {
		return fmt.Errorf("failed to create knowledge base %q: %w", knowledgeBase, err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "created knowledge base", "name", knowledgeBase)
	return nil
}
