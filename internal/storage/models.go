package storage

// KnowledgeBase represents a named collection of notes.
type KnowledgeBase struct {
	ID   int64  // Surrogate key assigned on insert
	Name string // Natural key
}

// Note represents a titled page belonging to a knowledge base.
// Directory holds the owning knowledge base name; it is not enforced
// by a foreign key, so orphan notes are possible.
type Note struct {
	ID        int64
	Title     string
	Content   string
	Directory string
}

// NoteKey is the natural key of a note.
type NoteKey struct {
	Directory string
	Title     string
}

var (
	// VoidKnowledgeBase is returned when a lookup matched no knowledge base.
	VoidKnowledgeBase = KnowledgeBase{}
	// VoidNote is returned when a lookup matched no note.
	VoidNote = Note{}
)

// Key returns the natural key of the knowledge base.
func (kb KnowledgeBase) Key() string {
	return kb.Name
}

// EqualsByNaturalKey reports whether both knowledge bases share a name.
// The surrogate ID is ignored.
func (kb KnowledgeBase) EqualsByNaturalKey(other KnowledgeBase) bool {
	return kb.Name == other.Name
}

// IsVoid reports whether kb is the VoidKnowledgeBase sentinel.
func (kb KnowledgeBase) IsVoid() bool {
	return kb.Name == ""
}

// Key returns the natural key of the note.
func (n Note) Key() NoteKey {
	return NoteKey{Directory: n.Directory, Title: n.Title}
}

// EqualsByNaturalKey reports whether both notes share title and directory.
func (n Note) EqualsByNaturalKey(other Note) bool {
	return n.Key() == other.Key()
}

// IsVoid reports whether n is the VoidNote sentinel.
func (n Note) IsVoid() bool {
	return n.Title == "" && n.Directory == "" && n.Content == ""
}
