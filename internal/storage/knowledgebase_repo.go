package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notebase/internal/contextutil"
)

// KnowledgeBaseRepo provides methods for knowledge base operations.
type KnowledgeBaseRepo struct {
	db *sql.DB
}

// NewKnowledgeBaseRepo creates a new KnowledgeBaseRepo.
func NewKnowledgeBaseRepo(db *sql.DB) *KnowledgeBaseRepo {
	return &KnowledgeBaseRepo{db: db}
}

// FetchKnowledgeBase looks up a knowledge base by name.
// An empty name yields InvalidInput, no match yields NotFound with
// VoidKnowledgeBase as value. More than one match returns ErrDuplicateKey.
func (r *KnowledgeBaseRepo) FetchKnowledgeBase(ctx context.Context, name string) (Lookup[KnowledgeBase], error) {
	if name == "" {
		return invalidInput(VoidKnowledgeBase), nil
	}

	kbs, err := r.query(ctx, "SELECT id, name FROM KnowledgeBase WHERE name = ? ORDER BY id", name)
	if err != nil {
		return notFound(VoidKnowledgeBase), fmt.Errorf("failed to query knowledge base %q: %w", name, err)
	}

	switch len(kbs) {
	case 0:
		return notFound(VoidKnowledgeBase), nil
	case 1:
		return found(kbs[0]), nil
	default:
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "duplicate knowledge base rows", "name", name, "count", len(kbs))
		return notFound(VoidKnowledgeBase), fmt.Errorf("knowledge base %q: %w", name, ErrDuplicateKey)
	}
}

// FetchAllKnowledgeBases returns every knowledge base ordered by ID.
// The result is empty, not nil, when the table is empty.
func (r *KnowledgeBaseRepo) FetchAllKnowledgeBases(ctx context.Context) ([]KnowledgeBase, error) {
	kbs, err := r.query(ctx, "SELECT id, name FROM KnowledgeBase ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge bases: %w", err)
	}
	return kbs, nil
}

// ContainsKnowledgeBase reports whether a knowledge base named name exists.
func (r *KnowledgeBaseRepo) ContainsKnowledgeBase(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM KnowledgeBase WHERE name = ?)",
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check knowledge base %q: %w", name, err)
	}
	return exists, nil
}

// AddKnowledgeBase inserts kb unless it is nil or its name is taken, in
// which case it returns false and no error. Insert failures are logged and
// returned wrapped in ErrStorage. On success kb.ID is set.
func (r *KnowledgeBaseRepo) AddKnowledgeBase(ctx context.Context, kb *KnowledgeBase) (bool, error) {
	if kb == nil {
		return false, nil
	}

	exists, err := r.ContainsKnowledgeBase(ctx, kb.Name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if exists {
		return false, nil
	}

	result, err := r.db.ExecContext(ctx, "INSERT INTO KnowledgeBase (name) VALUES (?)", kb.Name)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to insert knowledge base", "name", kb.Name, "error", err)
		return false, fmt.Errorf("%w: insert knowledge base %q: %w", ErrStorage, kb.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to read inserted knowledge base id", "name", kb.Name, "error", err)
		return false, fmt.Errorf("%w: insert knowledge base %q: %w", ErrStorage, kb.Name, err)
	}
	kb.ID = id

	return true, nil
}

// UpdateKnowledgeBase overwrites the row whose ID matches latest.ID and
// returns the persisted row, looked up by the new name. It returns nil
// if latest is nil, latest.Name is empty or no row has that ID.
func (r *KnowledgeBaseRepo) UpdateKnowledgeBase(ctx context.Context, latest *KnowledgeBase) (*KnowledgeBase, error) {
	if latest == nil || latest.Name == "" {
		return nil, nil
	}

	var id int64
	err := r.db.QueryRowContext(ctx, "SELECT id FROM KnowledgeBase WHERE id = ?", latest.ID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check knowledge base %d: %w", latest.ID, err)
	}

	result, err := r.db.ExecContext(ctx, "UPDATE KnowledgeBase SET name = ? WHERE id = ?", latest.Name, latest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update knowledge base %q: %w", latest.Name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update knowledge base %q: %w", latest.Name, err)
	}
	if affected != 1 {
		return nil, fmt.Errorf("update knowledge base %q affected %d rows: %w", latest.Name, affected, ErrUpdateFailed)
	}

	lookup, err := r.FetchKnowledgeBase(ctx, latest.Name)
	if err != nil {
		return nil, err
	}
	if !lookup.Found() {
		return nil, nil
	}
	updated := lookup.Value
	return &updated, nil
}

// DeleteKnowledgeBase removes the knowledge base named name and returns
// the row as it was before deletion. A missing or empty name is a no-op
// returning VoidKnowledgeBase. Notes in the knowledge base are kept.
func (r *KnowledgeBaseRepo) DeleteKnowledgeBase(ctx context.Context, name string) (KnowledgeBase, error) {
	lookup, err := r.FetchKnowledgeBase(ctx, name)
	if err != nil {
		return VoidKnowledgeBase, err
	}
	if !lookup.Found() {
		return VoidKnowledgeBase, nil
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM KnowledgeBase WHERE name = ?", name)
	if err != nil {
		return VoidKnowledgeBase, fmt.Errorf("failed to delete knowledge base %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return VoidKnowledgeBase, fmt.Errorf("failed to delete knowledge base %q: %w", name, err)
	}
	if affected != 1 {
		return VoidKnowledgeBase, fmt.Errorf("delete knowledge base %q affected %d rows: %w", name, affected, ErrDeleteFailed)
	}

	return lookup.Value, nil
}

func (r *KnowledgeBaseRepo) query(ctx context.Context, query string, args ...any) ([]KnowledgeBase, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kbs := []KnowledgeBase{}
	for rows.Next() {
		var kb KnowledgeBase
		if err := rows.Scan(&kb.ID, &kb.Name); err != nil {
			return nil, err
		}
		kbs = append(kbs, kb)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return kbs, nil
}
