package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Timestamp: now,
		Data: SnapshotData{
			Version:         1,
			ActiveProfileID: "p1",
			Profiles:        []*ProfileData{{ID: "p1", Name: "Étudiant"}},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence == 0 {
		t.Error("sequence = 0, want a stamped event-log position")
	}
	if snap.Data.ActiveProfileID != "p1" {
		t.Errorf("activeProfileID = %q, want p1", snap.Data.ActiveProfileID)
	}
	if len(snap.Data.Profiles) != 1 || snap.Data.Profiles[0].Name != "Étudiant" {
		t.Errorf("profiles = %+v, want the saved profile back", snap.Data.Profiles)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap == nil || snap.Data.Version != 5 {
		t.Fatalf("latest after prune = %+v, want the newest snapshot to survive", snap)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("got %d snapshots after prune, want 2", count)
	}
}

func TestEventAppendAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []PracticeEventData{
		{ProfileID: "p1", TechniqueID: "m-l1", VariationID: "v1", Kind: "video"},
		{ProfileID: "p1", TechniqueID: "m-l1", VariationID: "v1", Kind: "training"},
		{ProfileID: "p1", TechniqueID: "m-l1", VariationID: "v1", Kind: "training"},
		{ProfileID: "p1", TechniqueID: "m-l1", VariationID: "v2", Kind: "drill"},
		{ProfileID: "p2", TechniqueID: "m-l1", VariationID: "v1", Kind: "training"},
	}
	for i, e := range events {
		if err := repo.AppendPractice(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	counts, err := repo.PracticeCounts(ctx, "p1", "m-l1", "v1")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Video != 1 || counts.Training != 2 || counts.Drill != 0 {
		t.Errorf("counts = %+v, want 1 video / 2 training / 0 drill", counts)
	}

	totals, err := repo.TotalCounts(ctx, "p1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Video != 1 || totals.Training != 2 || totals.Drill != 1 {
		t.Errorf("totals = %+v, want 1 video / 2 training / 1 drill", totals)
	}
}

func TestLatestPhysicalPractice(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	last, err := repo.LatestPhysicalPractice(ctx, "p1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if !last.IsZero() {
		t.Errorf("latest (empty) = %v, want zero time", last)
	}

	if err := repo.AppendPractice(ctx, PracticeEventData{
		ProfileID: "p1", TechniqueID: "m-l1", VariationID: "v1", Kind: "video",
	}); err != nil {
		t.Fatal(err)
	}
	last, err = repo.LatestPhysicalPractice(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if !last.IsZero() {
		t.Error("video review counted as physical practice")
	}

	if err := repo.AppendPractice(ctx, PracticeEventData{
		ProfileID: "p1", TechniqueID: "m-l1", VariationID: "v1", Kind: "drill",
	}); err != nil {
		t.Fatal(err)
	}
	last, err = repo.LatestPhysicalPractice(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if last.IsZero() {
		t.Error("drill rep not reflected in latest physical practice")
	}
}

func TestDrillRunAppendAndLast(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	last, err := repo.LastDrillRun(ctx, "p1", "reflex-m-l1")
	if err != nil {
		t.Fatalf("last (empty): %v", err)
	}
	if !last.IsZero() {
		t.Errorf("last (empty) = %v, want zero time", last)
	}

	if err := repo.AppendDrillRun(ctx, DrillEventData{ProfileID: "p1", DrillKey: "reflex-m-l1"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	last, err = repo.LastDrillRun(ctx, "p1", "reflex-m-l1")
	if err != nil {
		t.Fatal(err)
	}
	if last.IsZero() {
		t.Error("drill run not recorded")
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestSequenceSurvivesEventMix(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave practice and drill events; sequences must stay
	// globally unique across both tables.
	for i := 0; i < 3; i++ {
		if err := repo.AppendPractice(ctx, PracticeEventData{
			ProfileID: "p1", TechniqueID: "m-l1", VariationID: fmt.Sprintf("v%d", i+1), Kind: "drill",
		}); err != nil {
			t.Fatal(err)
		}
		if err := repo.AppendDrillRun(ctx, DrillEventData{
			ProfileID: "p1", DrillKey: fmt.Sprintf("reflex-m-l%d", i+1),
		}); err != nil {
			t.Fatal(err)
		}
	}

	practices, err := s.Client().PracticeEvent.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	drills, err := s.Client().DrillEvent.Query().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if practices != 3 || drills != 3 {
		t.Errorf("got %d practice / %d drill events, want 3 / 3", practices, drills)
	}
}
