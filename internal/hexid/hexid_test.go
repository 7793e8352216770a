package hexid

import (
	"regexp"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()
	if !regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(id) {
		t.Fatalf("expected 8 lowercase hex chars, got %q", id)
	}
}

func TestNewUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate ID after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestWithPrefix(t *testing.T) {
	if id := WithPrefix("person"); !regexp.MustCompile(`^person-[0-9a-f]{8}$`).MatchString(id) {
		t.Fatalf("WithPrefix(person) = %q", id)
	}
	if id := WithPrefix(""); len(id) != 8 {
		t.Fatalf("WithPrefix(\"\") = %q", id)
	}
}
