package runtime

import (
	"errors"
	"testing"
)

func TestCursorPeekAndBump(t *testing.T) {
	c := NewCursor("ab")
	r, ok := c.Peek()
	if !ok || r != 'a' {
		t.Fatalf("Peek = (%v, %v), want (a, true)", r, ok)
	}
	if err := c.Bump(1); err != nil {
		t.Fatal(err)
	}
	r, ok = c.Peek()
	if !ok || r != 'b' {
		t.Fatalf("Peek after bump = (%v, %v), want (b, true)", r, ok)
	}
	if err := c.Bump(1); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Peek(); ok {
		t.Fatal("Peek at end of input should report false")
	}
}

func TestCursorPeeksUnicodeScalarsNotBytes(t *testing.T) {
	c := NewCursor("é") // 2 UTF-8 bytes, 1 scalar value
	r, ok := c.Peek()
	if !ok || r != 'é' {
		t.Fatalf("Peek = (%v, %v), want (é, true)", r, ok)
	}
	if err := c.Bump(1); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Peek(); ok {
		t.Fatal("one Bump(1) should consume the whole scalar value, not one byte of it")
	}
}

func TestCursorBumpOverflowErrors(t *testing.T) {
	c := NewCursor("a")
	err := c.Bump(2)
	if !errors.Is(err, ErrSourceBoundExceeded) {
		t.Fatalf("err = %v, want ErrSourceBoundExceeded", err)
	}
}

func TestCursorSliceAndSpan(t *testing.T) {
	c := NewCursor("abcdef")
	if err := c.Bump(3); err != nil {
		t.Fatal(err)
	}
	if c.Slice() != "abc" {
		t.Fatalf("Slice = %q, want abc", c.Slice())
	}
	start, end := c.Span()
	if start != 0 || end != 3 {
		t.Fatalf("Span = (%d,%d), want (0,3)", start, end)
	}
}

func TestCursorRemaining(t *testing.T) {
	c := NewCursor("abcdef")
	if err := c.Bump(2); err != nil {
		t.Fatal(err)
	}
	if string(c.Remaining()) != "cdef" {
		t.Fatalf("Remaining = %q, want cdef", string(c.Remaining()))
	}
}

func TestCursorSetTokenDuplicateErrors(t *testing.T) {
	c := NewCursor("a")
	if err := c.SetToken("first"); err != nil {
		t.Fatal(err)
	}
	err := c.SetToken("second")
	if !errors.Is(err, ErrDuplicatedToken) {
		t.Fatalf("err = %v, want ErrDuplicatedToken", err)
	}
}

func TestCursorSkipAdvancesWhenNoBytesConsumed(t *testing.T) {
	c := NewCursor("a")
	if err := c.Skip(); err != nil {
		t.Fatal(err)
	}
	if c.end != 1 {
		t.Fatalf("end = %d, want 1 (Skip must guarantee progress)", c.end)
	}
}

func TestCursorSkipDoesNotDoubleAdvanceWhenBytesConsumed(t *testing.T) {
	c := NewCursor("ab")
	if err := c.Bump(1); err != nil {
		t.Fatal(err)
	}
	if err := c.Skip(); err != nil {
		t.Fatal(err)
	}
	if c.end != 1 {
		t.Fatalf("end = %d, want 1 (already made progress, no extra bump)", c.end)
	}
}
