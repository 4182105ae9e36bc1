package storage

import "testing"

func TestKnowledgeBase_EqualsByNaturalKey(t *testing.T) {
	a := KnowledgeBase{ID: 1, Name: "Math"}
	b := KnowledgeBase{ID: 2, Name: "Math"}
	c := KnowledgeBase{ID: 1, Name: "Physics"}

	if !a.EqualsByNaturalKey(b) {
		t.Error("same name with different IDs should be equal")
	}
	if a.EqualsByNaturalKey(c) {
		t.Error("different names should not be equal")
	}
	if !VoidKnowledgeBase.IsVoid() || a.IsVoid() {
		t.Error("IsVoid() mismatch")
	}
}

func TestNote_EqualsByNaturalKey(t *testing.T) {
	tests := []struct {
		name string
		a, b Note
		want bool
	}{
		{
			name: "same title and directory, different content",
			a:    Note{ID: 1, Title: "Triangle", Content: "a", Directory: "Math"},
			b:    Note{ID: 2, Title: "Triangle", Content: "b", Directory: "Math"},
			want: true,
		},
		{
			name: "same title, different directory",
			a:    Note{Title: "Triangle", Directory: "Math"},
			b:    Note{Title: "Triangle", Directory: "Art"},
			want: false,
		},
		{
			name: "void against void",
			a:    VoidNote,
			b:    Note{},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.EqualsByNaturalKey(tt.b); got != tt.want {
				t.Errorf("EqualsByNaturalKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupStatus_String(t *testing.T) {
	if Found.String() != "found" || NotFound.String() != "not found" || InvalidInput.String() != "invalid input" {
		t.Error("unexpected LookupStatus strings")
	}
}
