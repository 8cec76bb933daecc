package vision

import "testing"

func TestCanSeeSameCell(t *testing.T) {
	m := openMap(5, 5)
	if !CanSee(m, 2, 2, 2, 2, DefaultSightRange) {
		t.Error("a cell can always see itself")
	}
}

func TestCanSeeClearLine(t *testing.T) {
	m := openMap(12, 12)
	if !CanSee(m, 1, 1, 9, 9, DefaultSightRange) {
		t.Error("expected clear diagonal sight line")
	}
	if !CanSee(m, 1, 5, 10, 5, DefaultSightRange) {
		t.Error("expected clear horizontal sight line")
	}
}

func TestCanSeeBeyondMaxRange(t *testing.T) {
	m := openMap(30, 30)
	if CanSee(m, 0, 0, 11, 0, DefaultSightRange) {
		t.Error("Chebyshev distance 11 exceeds max range 10")
	}
	if CanSee(m, 0, 0, 3, 0, 2) {
		t.Error("distance 3 exceeds explicit max range 2")
	}
}

func TestCanSeeBlockedByWall(t *testing.T) {
	m := parseMap("..#..")
	if CanSee(m, 0, 0, 4, 0, DefaultSightRange) {
		t.Error("wall on the sampled path should block sight")
	}
}

func TestCanSeeOpaqueTargetIsVisible(t *testing.T) {
	// Reaching the target ends the walk before the blocking check, so a
	// wall face or shut door is itself seeable.
	m := parseMap("..#")
	if !CanSee(m, 0, 0, 2, 0, DefaultSightRange) {
		t.Error("an opaque target tile should still be seeable")
	}
}

func TestCanSeeDoorStates(t *testing.T) {
	open := parseMap(".'..")
	if !CanSee(open, 0, 0, 3, 0, DefaultSightRange) {
		t.Error("open door should not block sight")
	}

	closed := parseMap(".+..")
	if CanSee(closed, 0, 0, 3, 0, DefaultSightRange) {
		t.Error("closed door should block sight")
	}

	locked := parseMap(".*..")
	if CanSee(locked, 0, 0, 3, 0, DefaultSightRange) {
		t.Error("locked door should block sight")
	}
}

func TestCanSeeOutOfBoundsIsFalse(t *testing.T) {
	m := openMap(5, 5)
	if CanSee(m, 0, 0, -3, 0, DefaultSightRange) {
		t.Error("sight lines leaving the map return false")
	}
}

func TestCanSeeSampledApproximation(t *testing.T) {
	// The sampled walk from (0,0) to (3,1) visits (1,0), (2,1), (3,1).
	// A wall at (1,1) sits off the sample points and does not block.
	// This rounding behavior is load-bearing; a Bresenham trace would differ.
	m := parseMap(
		"....",
		".#..",
	)
	if !CanSee(m, 0, 0, 3, 1, DefaultSightRange) {
		t.Error("off-sample wall should not block the interpolated line")
	}
}

func TestPerceivedTilesOpenGround(t *testing.T) {
	m := openMap(20, 20)
	seen := PerceivedTiles(m, 10, 10, 2)

	// Every tile in the 5x5 Chebyshev disk is reachable on open ground.
	if len(seen) != 25 {
		t.Errorf("expected 25 perceived tiles, got %d", len(seen))
	}
	if _, ok := seen[Point{10, 10}]; !ok {
		t.Error("actor's own tile should be perceived")
	}
}

func TestPerceivedTilesBlockedByWall(t *testing.T) {
	m := parseMap(
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)
	seen := PerceivedTiles(m, 2, 0, 3)

	if _, ok := seen[Point{2, 2}]; !ok {
		t.Error("the wall itself should be perceived")
	}
	if _, ok := seen[Point{2, 3}]; ok {
		t.Error("tile directly behind the wall should not be perceived")
	}
}

func TestPerceivedTilesClippedAtMapEdge(t *testing.T) {
	m := openMap(6, 6)
	seen := PerceivedTiles(m, 0, 0, 2)

	for p := range seen {
		if !m.InBounds(p.X, p.Y) {
			t.Errorf("perceived out-of-bounds tile (%d,%d)", p.X, p.Y)
		}
	}
}
