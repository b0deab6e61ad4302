package store

import (
	"reflect"
	"testing"
)

func TestSubscribeReplaysCurrentValue(t *testing.T) {
	s := New(42)

	var got []int
	s.Subscribe(func(v int) { got = append(got, v) })

	if !reflect.DeepEqual(got, []int{42}) {
		t.Fatalf("expected immediate replay of 42, got %v", got)
	}
}

func TestSetNotifiesInRegistrationOrder(t *testing.T) {
	s := New("a")

	var order []string
	s.Subscribe(func(v string) { order = append(order, "first:"+v) })
	s.Subscribe(func(v string) { order = append(order, "second:"+v) })

	order = order[:0]
	s.Set("b")

	want := []string{"first:b", "second:b"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("notification order = %v, want %v", order, want)
	}
}

func TestUpdateAppliesFunction(t *testing.T) {
	s := New(10)
	s.Update(func(v int) int { return v * 3 })

	if got := s.Get(); got != 30 {
		t.Fatalf("Get() = %d, want 30", got)
	}
}

func TestUnsubscribeStopsNotification(t *testing.T) {
	s := New(0)

	calls := 0
	unsubscribe := s.Subscribe(func(int) { calls++ })

	unsubscribe()
	s.Set(1)
	s.Set(2)

	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1 (the replay only)", calls)
	}
	if s.SubscriberCount() != 0 {
		t.Fatalf("SubscriberCount() = %d after unsubscribe, want 0", s.SubscriberCount())
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	s := New(0)

	first := s.Subscribe(func(int) {})
	second := s.Subscribe(func(int) {})

	first()
	first() // must not touch the remaining subscriber

	if s.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", s.SubscriberCount())
	}

	calls := 0
	s.Subscribe(func(int) { calls++ })
	calls = 0
	s.Set(5)
	if calls != 1 {
		t.Fatalf("surviving subscriber ran %d times, want 1", calls)
	}
	_ = second
}

func TestUnsubscribeDuringDispatchAffectsNextMutation(t *testing.T) {
	s := New(0)

	var unsubscribeSecond Unsubscribe
	secondCalls := 0

	s.Subscribe(func(v int) {
		if v == 1 {
			unsubscribeSecond()
		}
	})
	unsubscribeSecond = s.Subscribe(func(v int) {
		if v > 0 {
			secondCalls++
		}
	})

	s.Set(1) // snapshot already taken: second still sees this one
	s.Set(2) // but not this one

	if secondCalls != 1 {
		t.Fatalf("second subscriber ran %d times after replay, want 1", secondCalls)
	}
}

func TestReentrantSetDispatchesBeforeOuterReturns(t *testing.T) {
	s := New(0)

	var seen []int
	s.Subscribe(func(v int) {
		seen = append(seen, v)
		if v == 1 {
			s.Set(2)
		}
	})

	seen = seen[:0]
	s.Set(1)

	// The nested Set(2) dispatch completes inside the outer Set(1) call,
	// so by the time Set(1) returns both values were observed.
	want := []int{1, 2}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	if s.Get() != 2 {
		t.Fatalf("Get() = %d, want 2", s.Get())
	}
}

func TestLateSubscriberSeesLatestValue(t *testing.T) {
	s := New("root")
	s.Set("child")

	var got string
	s.Subscribe(func(v string) { got = v })

	if got != "child" {
		t.Fatalf("late subscriber replayed %q, want %q", got, "child")
	}
}
