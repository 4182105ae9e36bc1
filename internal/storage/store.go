package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks notebase/internal/storage Store

import (
	"context"
	"database/sql"
)

// Store defines every knowledge base and note operation of the note database.
type Store interface {
	FetchKnowledgeBase(ctx context.Context, name string) (Lookup[KnowledgeBase], error)
	FetchAllKnowledgeBases(ctx context.Context) ([]KnowledgeBase, error)
	ContainsKnowledgeBase(ctx context.Context, name string) (bool, error)
	AddKnowledgeBase(ctx context.Context, kb *KnowledgeBase) (bool, error)
	UpdateKnowledgeBase(ctx context.Context, latest *KnowledgeBase) (*KnowledgeBase, error)
	DeleteKnowledgeBase(ctx context.Context, name string) (KnowledgeBase, error)

	FetchNote(ctx context.Context, directory, title string) (Lookup[Note], error)
	FetchNotes(ctx context.Context, directory string) ([]Note, error)
	ContainsNote(ctx context.Context, directory, title string) (bool, error)
	ContainsNoteAnywhere(ctx context.Context, title string) (bool, error)
	AddNote(ctx context.Context, note *Note) (bool, error)
	UpdateNote(ctx context.Context, latest *Note) (*Note, error)
	DeleteNote(ctx context.Context, directory, title string) (Note, error)

	Ping(ctx context.Context) error
}

// NoteDatabase owns a single database handle and exposes the knowledge base
// and note repositories through one value. It implements Store.
//
// Natural-key uniqueness is checked with a read before each insert, without
// a transaction. Concurrent inserts of the same key can therefore both
// succeed; callers that share a NoteDatabase across goroutines must not
// insert the same knowledge base or note concurrently.
type NoteDatabase struct {
	*KnowledgeBaseRepo
	*NoteRepo
	conn *sql.DB
}

var _ Store = (*NoteDatabase)(nil)

// NewNoteDatabase wraps an opened and migrated database handle.
func NewNoteDatabase(db *sql.DB) *NoteDatabase {
	return &NoteDatabase{
		KnowledgeBaseRepo: NewKnowledgeBaseRepo(db),
		NoteRepo:          NewNoteRepo(db),
		conn:              db,
	}
}

// OpenNoteDatabase opens the database file at path in the given mode and
// returns a ready NoteDatabase.
func OpenNoteDatabase(ctx context.Context, path string, mode Mode) (*NoteDatabase, error) {
	db, err := Open(ctx, path, mode)
	if err != nil {
		return nil, err
	}
	return NewNoteDatabase(db), nil
}

// Ping verifies the database is reachable.
func (d *NoteDatabase) Ping(ctx context.Context) error {
	return d.conn.PingContext(ctx)
}

// Close closes the underlying database handle.
func (d *NoteDatabase) Close() error {
	return d.conn.Close()
}
