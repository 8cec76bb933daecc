// Package vision implements the fog-of-war engine: per-turn field of vision,
// persistent exploration memory, and point-to-point line-of-sight queries.
package vision

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogward/internal/telemetry"
	"github.com/samdwyer/fogward/internal/world"
)

const (
	// MinViewRange is the smallest allowed view range.
	MinViewRange = 1
	// MaxViewRange is the largest allowed view range.
	MaxViewRange = 15
	// DefaultViewRange is the view range a new engine starts with.
	DefaultViewRange = 5
)

// TileMap is the map surface the engine reads tiles through.
// *world.Dungeon satisfies it; tests supply fixture maps.
type TileMap interface {
	GetTile(x, y int) world.Tile
	InBounds(x, y int) bool
}

// Point is an integer map coordinate, used as a set key.
type Point struct {
	X, Y int
}

// TileVisibility is the combined visibility answer for one tile.
type TileVisibility struct {
	Visible  bool // Currently in the viewer's field of vision
	Explored bool // Ever seen on this level
}

// Engine holds the current-turn visible set and the cumulative explored set
// for one dungeon level. It is owned by the turn driver and is not safe for
// concurrent use.
type Engine struct {
	tiles     TileMap
	visible   map[Point]struct{}
	explored  map[Point]struct{}
	viewRange int
}

// NewEngine creates a visibility engine reading tiles from the given map.
func NewEngine(tiles TileMap) *Engine {
	return &Engine{
		tiles:     tiles,
		visible:   make(map[Point]struct{}),
		explored:  make(map[Point]struct{}),
		viewRange: DefaultViewRange,
	}
}

// Recompute rebuilds the visible set for a viewer at (x,y) and merges it into
// the explored set. It is called once per action that can change sight
// (movement, door toggling) and is idempotent for a given map and position.
func (e *Engine) Recompute(ctx context.Context, x, y int) {
	tracer := telemetry.Tracer("vision")
	_, span := tracer.Start(ctx, "vision.recompute")
	defer span.End()

	clear(e.visible)
	e.markVisible(x, y)

	axis := ClassifyCorridor(e.tiles, x, y)
	if axis == AxisNone {
		e.castRoomRays(x, y)
	} else {
		e.castCorridorRays(x, y, axis)
	}

	for p := range e.visible {
		e.explored[p] = struct{}{}
	}

	span.SetAttributes(
		attribute.String("vision.mode", axis.String()),
		attribute.Int("vision.view_range", e.viewRange),
		attribute.Int("vision.visible_tiles", len(e.visible)),
		attribute.Int("vision.explored_tiles", len(e.explored)),
	)
}

// IsVisible reports whether (x,y) is in the current field of vision.
func (e *Engine) IsVisible(x, y int) bool {
	_, ok := e.visible[Point{x, y}]
	return ok
}

// IsExplored reports whether (x,y) has ever been seen on this level.
func (e *Engine) IsExplored(x, y int) bool {
	_, ok := e.explored[Point{x, y}]
	return ok
}

// TileVisibility returns both visibility flags for (x,y).
func (e *Engine) TileVisibility(x, y int) TileVisibility {
	return TileVisibility{
		Visible:  e.IsVisible(x, y),
		Explored: e.IsExplored(x, y),
	}
}

// VisibleCount returns the number of tiles in the current field of vision.
func (e *Engine) VisibleCount() int {
	return len(e.visible)
}

// ViewRange returns the current room-mode ray length.
func (e *Engine) ViewRange() int {
	return e.viewRange
}

// SetViewRange sets the room-mode ray length, clamped to [MinViewRange, MaxViewRange].
func (e *Engine) SetViewRange(n int) {
	e.viewRange = clampViewRange(n)
}

// Reset clears both the visible and explored sets for a fresh level.
// The view range is kept.
func (e *Engine) Reset() {
	clear(e.visible)
	clear(e.explored)
}

// CanSee answers a point-to-point line-of-sight query on the engine's map.
// It is independent of the viewer's field of vision and explored memory.
func (e *Engine) CanSee(fromX, fromY, toX, toY, maxRange int) bool {
	return CanSee(e.tiles, fromX, fromY, toX, toY, maxRange)
}

// PerceivedTiles returns the tiles an actor at (x,y) can see within the given
// Chebyshev range. See the package-level function.
func (e *Engine) PerceivedTiles(x, y, rng int) map[Point]struct{} {
	return PerceivedTiles(e.tiles, x, y, rng)
}

func (e *Engine) markVisible(x, y int) {
	e.visible[Point{x, y}] = struct{}{}
}

func clampViewRange(n int) int {
	if n < MinViewRange {
		return MinViewRange
	}
	if n > MaxViewRange {
		return MaxViewRange
	}
	return n
}
