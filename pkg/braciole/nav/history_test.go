package nav

import "testing"

func TestHistoryStartsAtRoot(t *testing.T) {
	h := NewHistory("root")

	if got := h.Current().Get(); got != "root" {
		t.Fatalf("Current() = %q, want %q", got, "root")
	}
	if h.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", h.Depth())
	}
}

func TestHistoryLIFORoundTrip(t *testing.T) {
	h := NewHistory("x")

	h.Push("a")
	h.Push("b")

	if got := h.Current().Get(); got != "b" {
		t.Fatalf("after pushes Current() = %q, want %q", got, "b")
	}

	if !h.Pop() {
		t.Fatal("first Pop() = false, want true")
	}
	if got := h.Current().Get(); got != "a" {
		t.Fatalf("after first pop Current() = %q, want %q", got, "a")
	}

	if !h.Pop() {
		t.Fatal("second Pop() = false, want true")
	}
	if got := h.Current().Get(); got != "x" {
		t.Fatalf("after second pop Current() = %q, want %q", got, "x")
	}
}

func TestHistoryPopAtRootIsNoOp(t *testing.T) {
	h := NewHistory(7)

	notifications := 0
	h.Current().Subscribe(func(int) { notifications++ })
	notifications = 0

	for range 3 {
		if h.Pop() {
			t.Fatal("Pop() at root = true, want false")
		}
	}

	if h.Depth() != 1 {
		t.Fatalf("Depth() = %d after pops at root, want 1", h.Depth())
	}
	if notifications != 0 {
		t.Fatalf("failed pops notified %d times, want 0", notifications)
	}
}

func TestHistoryNotifiesOnPushAndPop(t *testing.T) {
	h := NewHistory("root")

	var seen []string
	h.Current().Subscribe(func(v string) { seen = append(seen, v) })

	h.Push("a")
	h.Pop()

	want := []string{"root", "a", "root"}
	if len(seen) != len(want) {
		t.Fatalf("saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("saw %v, want %v", seen, want)
		}
	}
}

func TestHistoryNeverEmptyUnderMixedUse(t *testing.T) {
	h := NewHistory(0)

	ops := []func(){
		func() { h.Push(1) },
		func() { h.Pop() },
		func() { h.Pop() },
		func() { h.Push(2) },
		func() { h.Push(3) },
		func() { h.Pop() },
		func() { h.Pop() },
		func() { h.Pop() },
	}

	for i, op := range ops {
		op()
		if h.Depth() < 1 {
			t.Fatalf("Depth() = %d after op %d, invariant broken", h.Depth(), i)
		}
		// Current always answers.
		_ = h.Current().Get()
	}

	if got := h.Current().Get(); got != 0 {
		t.Fatalf("Current() = %d after draining, want root 0", got)
	}
}
