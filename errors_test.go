package confkit

import (
	"errors"
	"io/fs"
	"testing"
)

func TestContextWith(t *testing.T) {
	c := Context{}.With("a", 1).With("b", 2)

	if got := c.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", got)
	}

	// Replacing a key keeps its position
	c = c.With("a", 10)
	if got := c.Keys(); got[0] != "a" {
		t.Errorf("Keys() after replace = %v, want a first", got)
	}
	if v, ok := c.Get("a"); !ok || v != 10 {
		t.Errorf("Get(a) = %v, %v, want 10, true", v, ok)
	}

	// The original is not mutated
	if v, _ := (Context{}.With("a", 1)).Get("a"); v != 1 {
		t.Errorf("original context mutated: %v", v)
	}
}

func TestContextGet_Missing(t *testing.T) {
	var c Context
	if _, ok := c.Get("nope"); ok {
		t.Error("Get on nil context reported a value")
	}
}

func TestMergeContext(t *testing.T) {
	outer := Context{{Key: "env", Value: "prod"}, {Key: "path", Value: "outer"}}
	inner := Context{{Key: "path", Value: "inner"}, {Key: "origin", Value: "boom"}}

	got := mergeContext(outer, inner)

	// Outer ordering first, inner-only keys appended
	wantKeys := []string{"env", "path", "origin"}
	for i, k := range got.Keys() {
		if k != wantKeys[i] {
			t.Fatalf("merged keys = %v, want %v", got.Keys(), wantKeys)
		}
	}

	// Inner value wins on collision
	if v, _ := got.Get("path"); v != "inner" {
		t.Errorf("Get(path) = %v, want inner", v)
	}
	if v, _ := got.Get("env"); v != "prod" {
		t.Errorf("Get(env) = %v, want prod", v)
	}
}

func TestErrorBasics(t *testing.T) {
	err := NewError(KindNotFound, "config file not found", Context{{Key: "path", Value: "/x"}})

	if err.Kind() != KindNotFound {
		t.Errorf("Kind() = %v, want %v", err.Kind(), KindNotFound)
	}
	if err.Error() != "config file not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if v, ok := err.Context().Get("path"); !ok || v != "/x" {
		t.Errorf("Context().Get(path) = %v, %v", v, ok)
	}
}

func TestErrorWithContext_InnerWins(t *testing.T) {
	inner := NewError(KindDecodeFailure, "bad content",
		Context{{Key: "path", Value: "/inner"}, {Key: "line", Value: 3}})

	merged := inner.WithContext(Context{{Key: "path", Value: "/outer"}, {Key: "env", Value: "prod"}})

	if v, _ := merged.Context().Get("path"); v != "/inner" {
		t.Errorf("inner value should win on collision, got %v", v)
	}
	if v, _ := merged.Context().Get("env"); v != "prod" {
		t.Errorf("outer-only key lost: %v", v)
	}
	if v, _ := merged.Context().Get("line"); v != 3 {
		t.Errorf("inner-only key lost: %v", v)
	}

	// Original untouched
	if _, ok := inner.Context().Get("env"); ok {
		t.Error("WithContext mutated the original error")
	}
}

func TestWrapError_CauseChain(t *testing.T) {
	err := wrapError(KindReadFailure, "failed to read file", fs.ErrPermission,
		Context{{Key: "env", Value: "prod"}}, Field{Key: "path", Value: "/x"})

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("cause not reachable via errors.Is")
	}

	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatal("errors.As failed to find *Error")
	}
	if cerr.Kind() != KindReadFailure {
		t.Errorf("Kind() = %v", cerr.Kind())
	}
	if v, ok := cerr.Context().Get("origin"); !ok || v != fs.ErrPermission.Error() {
		t.Errorf("origin = %v, %v", v, ok)
	}
	if v, _ := cerr.Context().Get("env"); v != "prod" {
		t.Errorf("caller context lost: %v", v)
	}
}
