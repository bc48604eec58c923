package result

import (
	"reflect"
	"testing"
)

func TestNewIsValid(t *testing.T) {
	r := New()

	if !r.Valid() {
		t.Error("expected fresh result to be valid")
	}
	if len(r.Entries()) != 0 {
		t.Errorf("expected no entries, got %d", len(r.Entries()))
	}
	if r.Path() != RootPath {
		t.Errorf("expected root path %q, got %q", RootPath, r.Path())
	}
}

func TestError(t *testing.T) {
	r := New()
	r.Error("Value must be given.")

	if r.Valid() {
		t.Error("expected result with an error to be invalid")
	}

	want := []Entry{{Path: "/", Message: "Value must be given."}}
	if !reflect.DeepEqual(r.Entries(), want) {
		t.Errorf("expected %v, got %v", want, r.Entries())
	}
}

func TestErrorAt(t *testing.T) {
	r := New()
	r.ErrorAt("/name", "Value must be given.")

	want := []Entry{{Path: "/name", Message: "Value must be given."}}
	if !reflect.DeepEqual(r.Entries(), want) {
		t.Errorf("expected %v, got %v", want, r.Entries())
	}
}

func TestErrorOrderPreserved(t *testing.T) {
	r := New()
	r.Error("first")
	r.Error("second")

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "first" || entries[1].Message != "second" {
		t.Errorf("expected insertion order, got %v", entries)
	}
}

func TestMergeRekeysChildEntries(t *testing.T) {
	child := New()
	child.Error("at child root")
	child.ErrorAt("/inner", "at child inner")

	r := New()
	r.Merge(child, "user")

	want := []Entry{
		{Path: "/user", Message: "at child root"},
		{Path: "/user/inner", Message: "at child inner"},
	}
	if !reflect.DeepEqual(r.Entries(), want) {
		t.Errorf("expected %v, got %v", want, r.Entries())
	}
}

func TestMergeValidChild(t *testing.T) {
	r := New()
	r.Merge(New(), "user")

	if !r.Valid() {
		t.Error("merging a valid child must not invalidate the result")
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		base    string
		segment string
		want    string
	}{
		{"/", "", "/"},
		{"/", "name", "/name"},
		{"/user", "name", "/user/name"},
		{"/user/address", "0", "/user/address/0"},
		{"/user", "", "/user"},
	}

	for _, tt := range tests {
		if got := Join(tt.base, tt.segment); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.base, tt.segment, got, tt.want)
		}
	}
}
