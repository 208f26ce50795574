package ui

import "testing"

func TestWindowOffsetKeepsSelectionVisible(t *testing.T) {
	// selection below the window pulls the window down just enough
	if got := windowOffset(100, 12, 10, 0); got != 3 {
		t.Fatalf("offset = %d, want 3", got)
	}
	// selection above the window pulls the window up to it
	if got := windowOffset(100, 5, 10, 20); got != 5 {
		t.Fatalf("offset = %d, want 5", got)
	}
	// selection already inside the window moves nothing
	if got := windowOffset(100, 25, 10, 20); got != 20 {
		t.Fatalf("offset = %d, want 20", got)
	}
}

func TestWindowOffsetClamps(t *testing.T) {
	if got := windowOffset(0, 0, 10, 5); got != 0 {
		t.Fatalf("empty set: offset = %d, want 0", got)
	}
	if got := windowOffset(5, 10, 10, 0); got != 0 {
		t.Fatalf("fewer rows than window: offset = %d, want 0", got)
	}
	// offset past the end pulls back so the last page is full
	if got := windowOffset(100, 99, 10, 95); got != 90 {
		t.Fatalf("offset = %d, want 90", got)
	}
}

func TestVisibleRows(t *testing.T) {
	if got := visibleRows(11); got != 10 {
		t.Fatalf("visibleRows(11) = %d, want 10", got)
	}
	if got := visibleRows(0); got != 0 {
		t.Fatalf("visibleRows(0) = %d, want 0", got)
	}
	if got := visibleRows(-3); got != 0 {
		t.Fatalf("visibleRows(-3) = %d, want 0", got)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("pad short = %q", got)
	}
	if got := pad("abcdef", 4); got != "abc…" {
		t.Fatalf("pad long = %q", got)
	}
	if got := pad("abcdef", 6); got != "abcdef" {
		t.Fatalf("pad exact = %q", got)
	}
}
