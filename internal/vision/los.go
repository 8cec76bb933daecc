package vision

import "math"

const (
	// DefaultSightRange is the usual maximum range for CanSee queries.
	DefaultSightRange = 10
	// DefaultPerceptionRange is the usual sweep radius for PerceivedTiles.
	DefaultPerceptionRange = 8
)

// CanSee reports whether an unobstructed sight line exists from one tile to
// another, within maxRange in Chebyshev distance. It reads only the map and
// carries no fog-of-war state.
//
// The line is sampled by uniform linear interpolation with one sample per
// Chebyshev step, rounded to the nearest tile. That is deliberately not a
// Bresenham trace: thin diagonal obstructions can be skipped over or clipped
// depending on where samples land, and gameplay is balanced around exactly
// this behavior.
func CanSee(m TileMap, fromX, fromY, toX, toY, maxRange int) bool {
	dx := toX - fromX
	dy := toY - fromY
	distance := chebyshev(dx, dy)

	if distance > maxRange {
		return false
	}
	if distance == 0 {
		return true
	}

	steps := distance
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		sx := fromX + int(math.Round(float64(dx)*t))
		sy := fromY + int(math.Round(float64(dy)*t))

		if !m.InBounds(sx, sy) {
			return false
		}
		// Reaching the target counts as seeing it, even if the target
		// tile itself is opaque (a wall face or a shut door).
		if sx == toX && sy == toY {
			return true
		}
		if m.GetTile(sx, sy).BlocksSight() {
			return false
		}
	}
	return true
}

// PerceivedTiles returns every tile within the given Chebyshev range of
// (x,y) that an actor standing there can see. The result is recomputed from
// scratch on each call; non-player actors keep no exploration memory.
func PerceivedTiles(m TileMap, x, y, rng int) map[Point]struct{} {
	seen := make(map[Point]struct{})
	for dy := -rng; dy <= rng; dy++ {
		for dx := -rng; dx <= rng; dx++ {
			if CanSee(m, x, y, x+dx, y+dy, rng) {
				seen[Point{x + dx, y + dy}] = struct{}{}
			}
		}
	}
	return seen
}

func chebyshev(dx, dy int) int {
	adx := abs(dx)
	ady := abs(dy)
	if adx > ady {
		return adx
	}
	return ady
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
