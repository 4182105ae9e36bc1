package storage

import (
	"context"
	"database/sql"
	"fmt"

	"notebase/internal/contextutil"
)

const noteColumns = "id, title, content, directory"

// NoteRepo provides methods for note operations.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// FetchNote looks up the note titled title in knowledge base directory.
// Either key being empty yields InvalidInput; no match yields NotFound with
// VoidNote as value. More than one match returns ErrDuplicateKey.
func (r *NoteRepo) FetchNote(ctx context.Context, directory, title string) (Lookup[Note], error) {
	if directory == "" || title == "" {
		return invalidInput(VoidNote), nil
	}

	notes, err := r.query(ctx,
		"SELECT "+noteColumns+" FROM Note WHERE title = ? AND directory = ? ORDER BY id",
		title, directory,
	)
	if err != nil {
		return notFound(VoidNote), fmt.Errorf("failed to query note %q in %q: %w", title, directory, err)
	}

	switch len(notes) {
	case 0:
		return notFound(VoidNote), nil
	case 1:
		return found(notes[0]), nil
	default:
		logger := contextutil.LoggerFromContext(ctx)
		for _, n := range notes {
			logger.ErrorContext(ctx, "duplicate note row", "id", n.ID, "title", n.Title, "directory", n.Directory)
		}
		return notFound(VoidNote), fmt.Errorf("note %q in %q: %w", title, directory, ErrDuplicateKey)
	}
}

// FetchNotes returns every note whose directory equals directory.
// It returns nil for an empty directory. Whether a knowledge base with
// that name exists is not checked.
func (r *NoteRepo) FetchNotes(ctx context.Context, directory string) ([]Note, error) {
	if directory == "" {
		return nil, nil
	}

	notes, err := r.query(ctx,
		"SELECT "+noteColumns+" FROM Note WHERE directory = ? ORDER BY id",
		directory,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes in %q: %w", directory, err)
	}
	return notes, nil
}

// ContainsNote reports whether a note titled title exists in directory.
// An empty directory is allowed and simply matches nothing in practice.
func (r *NoteRepo) ContainsNote(ctx context.Context, directory, title string) (bool, error) {
	if title == "" {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM Note WHERE title = ? AND directory = ?)",
		title, directory,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check note %q in %q: %w", title, directory, err)
	}
	return exists, nil
}

// ContainsNoteAnywhere reports whether a note titled title exists in any
// knowledge base.
func (r *NoteRepo) ContainsNoteAnywhere(ctx context.Context, title string) (bool, error) {
	if title == "" {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM Note WHERE title = ?)",
		title,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check note %q: %w", title, err)
	}
	return exists, nil
}

// AddNote inserts note. A nil note returns false. Unlike AddKnowledgeBase,
// an existing (directory, title) pair is an error: ErrDuplicateKey.
// Insert failures are logged and returned wrapped in ErrStorage.
// On success note.ID is set.
func (r *NoteRepo) AddNote(ctx context.Context, note *Note) (bool, error) {
	if note == nil {
		return false, nil
	}

	exists, err := r.ContainsNote(ctx, note.Directory, note.Title)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if exists {
		return false, fmt.Errorf("note %q in %q already exists: %w", note.Title, note.Directory, ErrDuplicateKey)
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO Note (title, content, directory) VALUES (?, ?, ?)",
		note.Title, note.Content, note.Directory,
	)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to insert note", "title", note.Title, "directory", note.Directory, "error", err)
		return false, fmt.Errorf("%w: insert note %q in %q: %w", ErrStorage, note.Title, note.Directory, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to read inserted note id", "title", note.Title, "error", err)
		return false, fmt.Errorf("%w: insert note %q in %q: %w", ErrStorage, note.Title, note.Directory, err)
	}
	note.ID = id

	return true, nil
}

// UpdateNote overwrites the row whose ID matches latest.ID. The note must
// already exist under (latest.Directory, latest.Title), otherwise nil is
// returned. An affected-row count other than one is logged, not failed.
// The persisted note is re-read by natural key and returned.
func (r *NoteRepo) UpdateNote(ctx context.Context, latest *Note) (*Note, error) {
	if latest == nil {
		return nil, nil
	}

	existing, err := r.FetchNote(ctx, latest.Directory, latest.Title)
	if err != nil {
		return nil, err
	}
	if !existing.Found() {
		return nil, nil
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE Note SET title = ?, content = ?, directory = ? WHERE id = ?",
		latest.Title, latest.Content, latest.Directory, latest.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update note %q in %q: %w", latest.Title, latest.Directory, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update note %q in %q: %w", latest.Title, latest.Directory, err)
	}
	if affected != 1 {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "note update affected unexpected row count",
			"id", latest.ID, "title", latest.Title, "directory", latest.Directory, "affected", affected)
	}

	updated, err := r.FetchNote(ctx, latest.Directory, latest.Title)
	if err != nil {
		return nil, err
	}
	if !updated.Found() {
		return nil, nil
	}
	note := updated.Value
	return &note, nil
}

// DeleteNote removes the note titled title in directory and returns it as
// it was before deletion. A missing or empty key is a no-op returning VoidNote.
func (r *NoteRepo) DeleteNote(ctx context.Context, directory, title string) (Note, error) {
	lookup, err := r.FetchNote(ctx, directory, title)
	if err != nil {
		return VoidNote, err
	}
	if !lookup.Found() {
		return VoidNote, nil
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM Note WHERE id = ?", lookup.Value.ID)
	if err != nil {
		return VoidNote, fmt.Errorf("failed to delete note %q in %q: %w", title, directory, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return VoidNote, fmt.Errorf("failed to delete note %q in %q: %w", title, directory, err)
	}
	if affected != 1 {
		return VoidNote, fmt.Errorf("delete note %q in %q affected %d rows: %w", title, directory, affected, ErrDeleteFailed)
	}

	return lookup.Value, nil
}

func (r *NoteRepo) query(ctx context.Context, query string, args ...any) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Directory); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
