package id_test

import (
	"testing"

	"github.com/pyqlens/backend/internal/id"
)

func TestNew_ShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := id.New()
		if !id.Valid(v) {
			t.Fatalf("generated id %q is not valid", v)
		}
		if seen[v] {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = true
	}
}

func TestValid_RejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "short", "ABCDEFGHIJKLMNOP", "abcdefghijklmno-"} {
		if id.Valid(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
