package database

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
)

// testRepository connects to the PostgreSQL named by TEST_DATABASE_URL and
// skips the test when it is unset. Each test isolates itself with its own
// guild id, so a shared database is fine.
func testRepository(t *testing.T) *AttendanceRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	const ddl = `
CREATE TABLE IF NOT EXISTS attendance (
    guild_id  TEXT        NOT NULL,
    user_id   TEXT        NOT NULL,
    marked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (guild_id, user_id)
)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return NewAttendanceRepository(pool)
}

func testGuildID(t *testing.T) string {
	return fmt.Sprintf("test-%s-%d", t.Name(), os.Getpid())
}

func cleanupGuild(t *testing.T, r *AttendanceRepository, guildID string) {
	t.Cleanup(func() {
		_, _ = r.pool.Exec(context.Background(),
			`DELETE FROM attendance WHERE guild_id = $1`, guildID)
	})
}

func TestRepositoryToggleAddRemove(t *testing.T) {
	ctx := context.Background()
	r := testRepository(t)
	guild := testGuildID(t)
	cleanupGuild(t, r, guild)

	marked, err := r.Toggle(ctx, guild, "u1")
	if err != nil || !marked {
		t.Fatalf("first toggle = %v, %v; want marked", marked, err)
	}
	marked, err = r.Toggle(ctx, guild, "u1")
	if err != nil || marked {
		t.Fatalf("second toggle = %v, %v; want unmarked", marked, err)
	}
	ids, err := r.List(ctx, guild)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Fatalf("List after remove = %v", ids)
	}
}

// Concurrent toggles on the same (guild, user) must serialize: with an even
// number of toggles the row ends absent, and exactly half of the callers are
// told they marked it.
func TestRepositoryToggleSameUserSerializes(t *testing.T) {
	ctx := context.Background()
	r := testRepository(t)
	guild := testGuildID(t)
	cleanupGuild(t, r, guild)

	const n = 16
	results := make([]bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			marked, err := r.Toggle(ctx, guild, "u1")
			if err != nil {
				t.Errorf("toggle %d: %v", i, err)
				return
			}
			results[i] = marked
		}(i)
	}
	wg.Wait()

	ids, err := r.List(ctx, guild)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Fatalf("even toggle count left the user marked: %v", ids)
	}
	marks := 0
	for _, marked := range results {
		if marked {
			marks++
		}
	}
	if marks != n/2 {
		t.Fatalf("%d of %d toggles reported marked, want %d", marks, n, n/2)
	}
}

func TestRepositoryDrainSnapshotsAndClears(t *testing.T) {
	ctx := context.Background()
	r := testRepository(t)
	guild := testGuildID(t)
	cleanupGuild(t, r, guild)

	for i := 0; i < 5; i++ {
		if _, err := r.Toggle(ctx, guild, fmt.Sprintf("u%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := r.Drain(ctx, guild)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 5 {
		t.Fatalf("snapshot size = %d, want 5", len(ids))
	}
	if left, _ := r.List(ctx, guild); len(left) != 0 {
		t.Fatalf("set not cleared: %v", left)
	}
}
