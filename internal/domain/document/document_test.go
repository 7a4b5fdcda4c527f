package document

import "testing"

func TestNew_Valid(t *testing.T) {
	doc, err := New(Resume, "Go developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Kind() != Resume {
		t.Errorf("Kind() = %q", doc.Kind())
	}
	if doc.Text() != "Go developer" {
		t.Errorf("Text() = %q", doc.Text())
	}
	if doc.Size() != 12 {
		t.Errorf("Size() = %d, want 12", doc.Size())
	}
}

func TestNew_EmptyTextAllowed(t *testing.T) {
	doc, err := New(JobDescription, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Size() != 0 {
		t.Errorf("Size() = %d, want 0", doc.Size())
	}
}

func TestNew_UnknownKind(t *testing.T) {
	if _, err := New(Kind("cover_letter"), "text"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestKind_Valid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{JobDescription, true},
		{Resume, true},
		{"", false},
		{"RESUME", false},
	}
	for _, tc := range tests {
		if got := tc.kind.Valid(); got != tc.want {
			t.Errorf("Kind(%q).Valid() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}
