package vision

import "math"

const (
	// rayCount is the number of directions swept in room mode. Tuned
	// empirically; changing it changes which tiles the rounding reaches.
	rayCount = 64

	// corridorSightRange is the fixed forward sight distance in corridors.
	corridorSightRange = 3
)

// castRoomRays sweeps rayCount rays evenly around a full circle, stepping
// each ray one unit of distance at a time out to the view range. Tiles are
// reached by rounding the continuous ray position, so coverage is an
// approximation: adjacent rays can overlap and the rim is not a filled disk.
func (e *Engine) castRoomRays(x, y int) {
	for i := 0; i < rayCount; i++ {
		angle := 2 * math.Pi * float64(i) / rayCount
		dirX := math.Cos(angle)
		dirY := math.Sin(angle)

		for step := 1; step <= e.viewRange; step++ {
			tx := x + int(math.Round(dirX*float64(step)))
			ty := y + int(math.Round(dirY*float64(step)))

			if !e.tiles.InBounds(tx, ty) {
				break
			}
			e.markVisible(tx, ty)
			// The blocking tile itself is visible; everything past it is not.
			if e.tiles.GetTile(tx, ty).BlocksSight() {
				break
			}
		}
	}
}

// castCorridorRays restricts forward sight to the corridor's long axis: two
// whole-tile rays out to corridorSightRange with the same blocking rule as
// room mode. The 3x3 block around the viewer is always marked so corners and
// intersections stay readable despite the axis restriction.
func (e *Engine) castCorridorRays(x, y int, axis Axis) {
	dirs := [2][2]int{{1, 0}, {-1, 0}}
	if axis == AxisVertical {
		dirs = [2][2]int{{0, 1}, {0, -1}}
	}

	for _, dir := range dirs {
		for step := 1; step <= corridorSightRange; step++ {
			tx := x + dir[0]*step
			ty := y + dir[1]*step

			if !e.tiles.InBounds(tx, ty) {
				break
			}
			e.markVisible(tx, ty)
			if e.tiles.GetTile(tx, ty).BlocksSight() {
				break
			}
		}
	}

	// Immediate neighbors are visible regardless of blocking.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if e.tiles.InBounds(x+dx, y+dy) {
				e.markVisible(x+dx, y+dy)
			}
		}
	}
}
