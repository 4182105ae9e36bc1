package storage

// LookupStatus describes the outcome of a single-entity fetch.
type LookupStatus int

const (
	// Found means exactly one row matched.
	Found LookupStatus = iota
	// NotFound means no row matched. The lookup value is the void sentinel.
	NotFound
	// InvalidInput means a required key was empty and no query ran.
	InvalidInput
)

func (s LookupStatus) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case InvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Lookup is the result of fetching a single entity by natural key.
type Lookup[T any] struct {
	Value  T
	Status LookupStatus
}

// Found reports whether the lookup matched a row.
func (l Lookup[T]) Found() bool {
	return l.Status == Found
}

func found[T any](v T) Lookup[T] {
	return Lookup[T]{Value: v, Status: Found}
}

func notFound[T any](void T) Lookup[T] {
	return Lookup[T]{Value: void, Status: NotFound}
}

func invalidInput[T any](void T) Lookup[T] {
	return Lookup[T]{Value: void, Status: InvalidInput}
}
