package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"notebase/internal/contextutil"
	"notebase/internal/storage"
)

const defaultDebounce = 100 * time.Millisecond

// Syncer is the subset of storage.Store used to keep a knowledge base in
// sync with a folder.
type Syncer interface {
	Writer
	FetchNote(ctx context.Context, directory, title string) (storage.Lookup[storage.Note], error)
	UpdateNote(ctx context.Context, latest *storage.Note) (*storage.Note, error)
}

// Watcher imports a folder once and then follows file changes. Created files
// become notes; written files update the note with the same derived title.
// Removed files leave their notes in place, and a file whose title changes
// produces a new note rather than renaming the old one.
type Watcher struct {
	store    Syncer
	importer *Importer
	debounce time.Duration

	fsw           *fsnotify.Watcher
	knowledgeBase string
	root          string
}

// NewWatcher creates a Watcher writing into store.
func NewWatcher(store Syncer, opts ...Option) *Watcher {
	return &Watcher{
		store:    store,
		importer: NewImporter(store, opts...),
		debounce: defaultDebounce,
	}
}

// Start imports root into knowledgeBase and registers every directory below
// root for change notifications. Call Run to process them. Files that fail to
// import are counted in the returned stats.Errors and do not stop the watcher;
// any other import error does.
func (w *Watcher) Start(ctx context.Context, knowledgeBase, root string) (ImportStats, error) {
	if w.fsw != nil {
		return ImportStats{}, errors.New("watcher already started")
	}

	stats, err := w.importer.ImportDir(ctx, knowledgeBase, root)
	if err != nil && !errors.Is(err, ErrPartialImport) {
		return stats, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return stats, fmt.Errorf("failed to create watcher: %w", err)
	}
	w.fsw = fsw
	w.knowledgeBase = knowledgeBase
	w.root = root

	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		w.fsw = nil
		return stats, err
	}
	return stats, nil
}

// Run processes file events until ctx is cancelled. It closes the underlying
// watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	if w.fsw == nil {
		return errors.New("watcher not started")
	}
	defer func() {
		_ = w.fsw.Close()
	}()

	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "watching for changes", "knowledge_base", w.knowledgeBase, "root", w.root)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	// Path -> time of the latest event. Files are synced once they go quiet.
	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event, pending)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.ErrorContext(ctx, "watch error", "error", err)
		case now := <-ticker.C:
			for path, seen := range pending {
				if now.Sub(seen) < w.debounce {
					continue
				}
				delete(pending, path)
				w.syncFile(ctx, path)
			}
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event, pending map[string]time.Time) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	rel, ok := w.relPath(event.Name)
	if !ok || hidden(rel) || excluded(w.importer.exclude, rel) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	if filepath.Ext(event.Name) == ".md" {
		pending[event.Name] = time.Now()
	}
}

// syncFile adds the note for path, or replaces its content if a note with
// the same title exists.
func (w *Watcher) syncFile(ctx context.Context, path string) {
	logger := contextutil.LoggerFromContext(ctx)

	rel, ok := w.relPath(path)
	if !ok {
		return
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	folder := folderOf(rel)
	note, err := w.importer.readNote(w.knowledgeBase, ScannedFile{RelPath: rel, Folder: folder, AbsPath: absPath})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		logger.ErrorContext(ctx, "failed to read changed file", "rel_path", rel, "folder", folder, "error", err)
		return
	}

	lookup, err := w.store.FetchNote(ctx, note.Directory, note.Title)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch note", "title", note.Title, "error", err)
		return
	}

	switch lookup.Status {
	case storage.Found:
		if lookup.Value.Content == note.Content {
			return
		}
		latest := lookup.Value
		latest.Content = note.Content
		if _, err := w.store.UpdateNote(ctx, &latest); err != nil {
			logger.ErrorContext(ctx, "failed to update note", "title", note.Title, "error", err)
			return
		}
		logger.InfoContext(ctx, "note updated from file", "rel_path", rel, "title", note.Title)
	case storage.NotFound:
		if _, err := w.store.AddNote(ctx, note); err != nil {
			logger.ErrorContext(ctx, "failed to add note", "title", note.Title, "error", err)
			return
		}
		logger.InfoContext(ctx, "note added from file", "rel_path", rel, "folder", folder, "title", note.Title, "id", note.ID)
	}
}

// addTree watches dir and every non-hidden, non-excluded directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root {
			rel, ok := w.relPath(path)
			if !ok || hidden(rel+"/") || excluded(w.importer.exclude, rel) {
				return filepath.SkipDir
			}
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) relPath(path string) (string, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
