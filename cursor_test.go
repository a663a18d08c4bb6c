// cursor_test.go
package gpr

import (
	"reflect"
	"testing"
)

func Test_Cursor_PeekAdvanceBounds(t *testing.T) {
	c := newCursor([]string{"a", "b"})

	if !c.left() {
		t.Fatalf("fresh cursor must have elements left")
	}
	if got, ok := c.peek(); !ok || got != "a" {
		t.Fatalf("peek: want a, got %q ok=%v", got, ok)
	}
	// peek must not advance.
	if got, _ := c.peek(); got != "a" {
		t.Fatalf("peek advanced the cursor")
	}

	c.advance()
	if got, ok := c.peek(); !ok || got != "b" {
		t.Fatalf("peek after advance: want b, got %q ok=%v", got, ok)
	}

	c.advance()
	if c.left() {
		t.Fatalf("cursor must be exhausted")
	}
	if _, ok := c.peek(); ok {
		t.Fatalf("peek past the end must report !ok")
	}

	// Advancing past the end stays put.
	c.advance()
	if c.pos != 2 {
		t.Fatalf("advance past end moved the cursor to %d", c.pos)
	}
}

func Test_Cursor_PeekAt(t *testing.T) {
	c := newCursor([]byte("xy"))
	if got, ok := c.peekAt(1); !ok || got != 'y' {
		t.Fatalf("peekAt(1): want y, got %c ok=%v", got, ok)
	}
	if _, ok := c.peekAt(2); ok {
		t.Fatalf("peekAt past the end must report !ok")
	}
	if _, ok := c.peekAt(-1); ok {
		t.Fatalf("peekAt before the start must report !ok")
	}
}

func Test_Cursor_Remaining(t *testing.T) {
	c := newCursor([]string{"a", "b", "c"})
	c.advance()
	if got := c.remaining(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("remaining: want [b c], got %v", got)
	}
	c.advance()
	c.advance()
	if got := c.remaining(); len(got) != 0 {
		t.Fatalf("remaining at end: want empty, got %v", got)
	}
}
