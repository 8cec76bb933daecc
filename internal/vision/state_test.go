package vision

import (
	"context"
	"maps"
	"testing"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	m := openMap(20, 20)
	e := NewEngine(m)
	e.SetViewRange(8)

	ctx := context.Background()
	e.Recompute(ctx, 5, 5)
	e.Recompute(ctx, 14, 14)

	saved := e.Save()
	exploredBefore := maps.Clone(e.explored)

	fresh := NewEngine(m)
	fresh.Restore(&saved)

	if !maps.Equal(exploredBefore, fresh.explored) {
		t.Error("restored explored set differs from the saved one")
	}
	if fresh.ViewRange() != 8 {
		t.Errorf("expected restored view range 8, got %d", fresh.ViewRange())
	}
	if fresh.VisibleCount() != 0 {
		t.Error("visible set must stay empty until the next recompute")
	}
}

func TestRestoreClearsVisible(t *testing.T) {
	e := NewEngine(openMap(10, 10))
	e.Recompute(context.Background(), 5, 5)

	saved := e.Save()
	e.Restore(&saved)

	if e.VisibleCount() != 0 {
		t.Error("restore must clear the visible set")
	}
}

func TestRestoreNilStateLeavesMemory(t *testing.T) {
	e := NewEngine(openMap(10, 10))
	e.SetViewRange(9)
	e.Recompute(context.Background(), 5, 5)
	exploredBefore := maps.Clone(e.explored)

	e.Restore(nil)

	if !maps.Equal(exploredBefore, e.explored) {
		t.Error("nil state must not touch the explored set")
	}
	if e.ViewRange() != 9 {
		t.Error("nil state must not touch the view range")
	}
	if e.VisibleCount() != 0 {
		t.Error("restore always clears the visible set")
	}
}

func TestRestorePartialState(t *testing.T) {
	e := NewEngine(openMap(10, 10))
	e.SetViewRange(9)
	e.Recompute(context.Background(), 5, 5)

	// Missing tile list: explored resets to empty. Missing view range
	// (zero value): current range kept.
	e.Restore(&SavedState{})

	if len(e.explored) != 0 {
		t.Errorf("expected empty explored set, got %d tiles", len(e.explored))
	}
	if e.ViewRange() != 9 {
		t.Errorf("expected view range kept at 9, got %d", e.ViewRange())
	}
}

func TestRestoreClampsViewRange(t *testing.T) {
	e := NewEngine(openMap(10, 10))
	e.Restore(&SavedState{ViewRange: 99})

	if e.ViewRange() != MaxViewRange {
		t.Errorf("expected restored range clamped to %d, got %d", MaxViewRange, e.ViewRange())
	}
}

func TestSaveIsSorted(t *testing.T) {
	e := NewEngine(openMap(15, 15))
	e.Recompute(context.Background(), 7, 7)

	tiles := e.Save().ExploredTiles
	for i := 1; i < len(tiles); i++ {
		a, b := tiles[i-1], tiles[i]
		if a[1] > b[1] || (a[1] == b[1] && a[0] >= b[0]) {
			t.Fatalf("saved tiles not in row-major order at index %d: %v then %v", i, a, b)
		}
	}
}
