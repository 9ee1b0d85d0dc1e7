package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestToggleAddRemove(t *testing.T) {
	ctx := context.Background()
	s := NewAttendanceStore()

	marked, err := s.Toggle(ctx, "g1", "u1")
	if err != nil || !marked {
		t.Fatalf("first toggle = %v, %v; want marked", marked, err)
	}
	marked, err = s.Toggle(ctx, "g1", "u1")
	if err != nil || marked {
		t.Fatalf("second toggle = %v, %v; want unmarked", marked, err)
	}
	ids, _ := s.List(ctx, "g1")
	if len(ids) != 0 {
		t.Fatalf("List after remove = %v", ids)
	}
}

func TestGuildsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewAttendanceStore()
	s.Toggle(ctx, "g1", "u1")
	s.Toggle(ctx, "g2", "u2")

	if ids, _ := s.List(ctx, "g1"); len(ids) != 1 || ids[0] != "u1" {
		t.Fatalf("g1 = %v", ids)
	}
	if _, err := s.Drain(ctx, "g1"); err != nil {
		t.Fatal(err)
	}
	if ids, _ := s.List(ctx, "g2"); len(ids) != 1 || ids[0] != "u2" {
		t.Fatalf("draining g1 touched g2: %v", ids)
	}
}

func TestDrainSnapshotsAndClears(t *testing.T) {
	ctx := context.Background()
	s := NewAttendanceStore()
	for i := 0; i < 5; i++ {
		s.Toggle(ctx, "g1", fmt.Sprintf("u%d", i))
	}

	ids, err := s.Drain(ctx, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 5 {
		t.Fatalf("snapshot size = %d, want 5", len(ids))
	}
	if left, _ := s.List(ctx, "g1"); len(left) != 0 {
		t.Fatalf("set not cleared: %v", left)
	}
	if again, _ := s.Drain(ctx, "g1"); len(again) != 0 {
		t.Fatalf("second drain not empty: %v", again)
	}
}

func TestConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	s := NewAttendanceStore()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Toggle(ctx, "g1", fmt.Sprintf("u%03d", i))
		}(i)
	}
	wg.Wait()

	ids, _ := s.List(ctx, "g1")
	if len(ids) != n {
		t.Fatalf("lost updates: %d of %d toggles visible", len(ids), n)
	}
}
