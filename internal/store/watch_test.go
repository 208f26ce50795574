package store

import (
	"testing"
)

func TestWatch_EvaluatesEagerly(t *testing.T) {
	s := New(testState{Name: "initial"})

	w := Watch(s, func(st testState) string { return st.Name }, func(string) {})
	defer w.Close()

	if got := w.Current(); got != "initial" {
		t.Fatalf("Current() = %q, want %q (no placeholder before first update)", got, "initial")
	}
}

func TestWatch_SignalsOnlyWhenProjectionChanges(t *testing.T) {
	s := New(testState{Name: "a", Items: []string{"x"}})

	var signals []string
	w := Watch(s, func(st testState) string { return st.Name }, func(name string) {
		signals = append(signals, name)
	})
	defer w.Close()

	// projection unchanged even though the store notified
	s.Update(func(cur testState) testState {
		cur.Items = []string{"x", "y"}
		return cur
	})
	if len(signals) != 0 {
		t.Fatalf("signals = %v, want none while projection is shallow-equal", signals)
	}

	s.Update(func(cur testState) testState {
		cur.Name = "b"
		return cur
	})
	if len(signals) != 1 || signals[0] != "b" {
		t.Fatalf("signals = %v, want exactly [b]", signals)
	}
	if got := w.Current(); got != "b" {
		t.Fatalf("Current() = %q, want %q", got, "b")
	}
}

func TestWatch_SliceScenario(t *testing.T) {
	// update one slice of the state: the watcher on the other slice must
	// stay silent, the watcher on the touched slice must fire once
	s := New(testState{Items: []string{}, Name: ""})

	var nameFired, itemsFired int
	var gotItems []string
	nameWatch := Watch(s, func(st testState) string { return st.Name }, func(string) {
		nameFired++
	})
	defer nameWatch.Close()
	itemsWatch := Watch(s, func(st testState) []string { return st.Items }, func(items []string) {
		itemsFired++
		gotItems = items
	})
	defer itemsWatch.Close()

	s.Update(func(cur testState) testState {
		cur.Items = []string{"a"}
		return cur
	})

	if nameFired != 0 {
		t.Fatalf("name watcher fired %d times, want 0", nameFired)
	}
	if itemsFired != 1 {
		t.Fatalf("items watcher fired %d times, want 1", itemsFired)
	}
	if len(gotItems) != 1 || gotItems[0] != "a" {
		t.Fatalf("items watcher observed %v, want [a]", gotItems)
	}
}

func TestWatch_SetSelectorReEvaluatesImmediately(t *testing.T) {
	s := New(testState{Name: "name", Items: []string{"i1", "i2"}})

	var signals []int
	w := Watch(s, func(st testState) int { return len(st.Name) }, func(n int) {
		signals = append(signals, n)
	})
	defer w.Close()

	w.SetSelector(func(st testState) int { return len(st.Items) })

	if len(signals) != 1 || signals[0] != 2 {
		t.Fatalf("signals after rebind = %v, want [2]", signals)
	}
	if got := w.Current(); got != 2 {
		t.Fatalf("Current() = %d, want 2", got)
	}

	// the new selector, not the old one, observes later updates
	s.Update(func(cur testState) testState {
		cur.Items = append([]string{"i0"}, cur.Items...)
		return cur
	})
	if len(signals) != 2 || signals[1] != 3 {
		t.Fatalf("signals after update = %v, want [2 3]", signals)
	}
}

func TestWatch_SetSelectorEqualProjectionStaysQuiet(t *testing.T) {
	s := New(testState{Name: "ab", Items: []string{"x", "y"}})

	var fired int
	w := Watch(s, func(st testState) int { return len(st.Name) }, func(int) { fired++ })
	defer w.Close()

	// both selectors project 2: rebinding must not signal
	w.SetSelector(func(st testState) int { return len(st.Items) })
	if fired != 0 {
		t.Fatalf("rebind with shallow-equal projection fired %d times, want 0", fired)
	}
}

func TestWatch_CloseIsIdempotentAndSilencing(t *testing.T) {
	s := New(testState{Name: "a"})

	var fired int
	w := Watch(s, func(st testState) string { return st.Name }, func(string) { fired++ })

	w.Close()
	w.Close() // must not panic

	s.Set(testState{Name: "b"})
	if fired != 0 {
		t.Fatalf("closed watcher fired %d times, want 0", fired)
	}
}

func TestWatch_PanickingSelectorKeepsLastProjection(t *testing.T) {
	s := New(testState{Name: "keep"})

	w := Watch(s, func(st testState) string { return st.Name }, func(string) {})
	defer w.Close()

	w.SetSelector(func(st testState) string {
		if st.Name == "trip" {
			panic("selector failure")
		}
		return st.Name
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic from selector was swallowed")
			}
		}()
		s.Set(testState{Name: "trip"})
	}()

	if got := w.Current(); got != "keep" {
		t.Fatalf("Current() = %q after panicking selector, want %q", got, "keep")
	}
}

func TestWatch_FreshFlatCompositeIsUnchanged(t *testing.T) {
	s := New(testState{Name: "n", Items: []string{"a", "b"}})

	var fired int
	// selector rebuilds a flat slice from unchanged leaves each time
	w := Watch(s, func(st testState) []string {
		out := make([]string, len(st.Items))
		copy(out, st.Items)
		return out
	}, func([]string) { fired++ })
	defer w.Close()

	s.Update(func(cur testState) testState {
		cur.Name = "changed"
		return cur
	})

	if fired != 0 {
		t.Fatalf("watcher fired %d times for a rebuilt but shallow-equal slice, want 0", fired)
	}
}
