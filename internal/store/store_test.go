package store

import (
	"testing"
)

type testState struct {
	Items []string
	Name  string
}

func TestStore_StateReturnsInitial(t *testing.T) {
	s := New(testState{Name: "init"})
	if got := s.State().Name; got != "init" {
		t.Fatalf("State().Name = %q, want %q", got, "init")
	}
}

func TestStore_SetNotifiesEachListenerOnce(t *testing.T) {
	s := New(testState{})

	var first, second int
	var firstSaw, secondSaw testState
	s.Subscribe(func() {
		first++
		firstSaw = s.State()
	})
	s.Subscribe(func() {
		second++
		secondSaw = s.State()
	})

	next := testState{Name: "updated"}
	s.Set(next)

	if first != 1 || second != 1 {
		t.Fatalf("listener invocations = %d, %d, want 1, 1", first, second)
	}
	if firstSaw.Name != "updated" || secondSaw.Name != "updated" {
		t.Fatalf("listeners observed %q, %q, want both %q", firstSaw.Name, secondSaw.Name, "updated")
	}
}

func TestStore_UpdateComputesFromCurrent(t *testing.T) {
	s := New(testState{Name: "a"})
	s.Update(func(cur testState) testState {
		cur.Name = cur.Name + "b"
		return cur
	})
	if got := s.State().Name; got != "ab" {
		t.Fatalf("State().Name = %q, want %q", got, "ab")
	}
}

func TestStore_NotifiedOncePerCallInCallOrder(t *testing.T) {
	s := New(testState{})

	var seen []string
	s.Subscribe(func() {
		seen = append(seen, s.State().Name)
	})

	s.Set(testState{Name: "one"})
	s.Set(testState{Name: "two"})
	s.Update(func(cur testState) testState {
		cur.Name = "three"
		return cur
	})

	want := []string{"one", "two", "three"}
	if len(seen) != len(want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("notification %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestStore_ListenersRunInRegistrationOrder(t *testing.T) {
	s := New(testState{})

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		s.Subscribe(func() { order = append(order, i) })
	}

	s.Set(testState{Name: "go"})

	for i, got := range order {
		if got != i {
			t.Fatalf("invocation order = %v, want ascending", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("invocations = %d, want 5", len(order))
	}
}

func TestStore_DisposerIsIdempotent(t *testing.T) {
	s := New(testState{})

	var kept int
	dispose := s.Subscribe(func() {})
	s.Subscribe(func() { kept++ })

	dispose()
	dispose() // must not panic and must not touch other listeners

	s.Set(testState{Name: "x"})
	if kept != 1 {
		t.Fatalf("remaining listener invoked %d times, want 1", kept)
	}
}

func TestStore_SubscribeDuringNotifySkipsCurrentPass(t *testing.T) {
	s := New(testState{})

	var late int
	s.Subscribe(func() {
		s.Subscribe(func() { late++ })
	})

	s.Set(testState{Name: "first"})
	if late != 0 {
		t.Fatalf("listener added mid-pass ran %d times in same pass, want 0", late)
	}

	s.Set(testState{Name: "second"})
	// one new registration per pass: the first added listener runs once,
	// its sibling added during the second pass does not
	if late != 1 {
		t.Fatalf("listener added mid-pass ran %d times after next pass, want 1", late)
	}
}

func TestStore_DisposeDuringNotifyKeepsCurrentPassStable(t *testing.T) {
	s := New(testState{})

	var a, b int
	var disposeB func()
	s.Subscribe(func() {
		a++
		disposeB()
	})
	disposeB = s.Subscribe(func() { b++ })

	s.Set(testState{Name: "x"})
	if a != 1 || b != 1 {
		t.Fatalf("pass invocations = %d, %d, want both 1 (snapshot must include disposed listener)", a, b)
	}

	s.Set(testState{Name: "y"})
	if a != 2 || b != 1 {
		t.Fatalf("after second pass invocations = %d, %d, want 2, 1", a, b)
	}
}

func TestStore_PanickingUpdaterLeavesStateAndSkipsNotify(t *testing.T) {
	s := New(testState{Name: "stable"})

	var notified int
	s.Subscribe(func() { notified++ })

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic from updater was swallowed")
			}
		}()
		s.Update(func(testState) testState {
			panic("boom")
		})
	}()

	if got := s.State().Name; got != "stable" {
		t.Fatalf("State().Name = %q after panicking updater, want %q", got, "stable")
	}
	if notified != 0 {
		t.Fatalf("notifications after panicking updater = %d, want 0", notified)
	}

	// store remains usable afterwards
	s.Set(testState{Name: "next"})
	if notified != 1 {
		t.Fatalf("notifications after recovery = %d, want 1", notified)
	}
}
