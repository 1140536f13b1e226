package memory

import (
	"context"
	"testing"
)

func TestCumulativeRepository_RemoveThenRejoinListsOnce(t *testing.T) {
	t.Parallel()

	repo := NewCumulativeRepository()
	ctx := context.Background()

	if _, err := repo.Credit(ctx, "lg1", "t1", 1, 10); err != nil {
		t.Fatalf("credit: %v", err)
	}
	if err := repo.Remove(ctx, "lg1", "t1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, ok, err := repo.Get(ctx, "lg1", "t1"); err != nil || ok {
		t.Fatalf("removed entry must be gone: ok=%v err=%v", ok, err)
	}

	// Rejoining starts a fresh entry and must appear exactly once.
	if _, err := repo.Credit(ctx, "lg1", "t1", 2, 20); err != nil {
		t.Fatalf("credit after rejoin: %v", err)
	}
	entries, err := repo.ListByLeague(ctx, "lg1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single entry after rejoin, got %+v", entries)
	}
	if entries[0].TotalPoints != 20 || entries[0].LastCreditedGameweek != 2 {
		t.Fatalf("rejoined entry must start fresh: %+v", entries[0])
	}
}
