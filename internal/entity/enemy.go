package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogward/internal/gamedata"
)

// Enemy represents a hostile creature in the dungeon. Enemies spot the party
// through line-of-sight perception; they keep no memory of tiles they have
// seen, so a party that breaks sight is lost again.
type Enemy struct {
	Def       *gamedata.EnemyDef // Enemy definition this creature was spawned from
	X, Y      int                // Position in the dungeon
	RoomIndex int                // Index of the room this enemy spawned in (-1 if none)
	HP        int                // Current hit points
}

// NewEnemy creates an enemy from a data-driven definition.
func NewEnemy(def *gamedata.EnemyDef, x, y, roomIndex int) *Enemy {
	return &Enemy{
		Def:       def,
		X:         x,
		Y:         y,
		RoomIndex: roomIndex,
		HP:        def.HP,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// Perception returns the enemy's sight range in tiles.
func (e *Enemy) Perception() int {
	return e.Def.Perception
}

// Glyph returns the display symbol for this enemy.
func (e *Enemy) Glyph() rune {
	return e.Def.GlyphRune()
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	return e.Def.TCellColor()
}

// StepToward returns the single-tile step that closes the gap to (tx,ty),
// one axis component at a time (no diagonal movement).
func (e *Enemy) StepToward(tx, ty int) (dx, dy int) {
	switch {
	case tx < e.X:
		dx = -1
	case tx > e.X:
		dx = 1
	}
	switch {
	case ty < e.Y:
		dy = -1
	case ty > e.Y:
		dy = 1
	}
	// Prefer the axis with the larger remaining distance.
	if dx != 0 && dy != 0 {
		if absInt(tx-e.X) >= absInt(ty-e.Y) {
			dy = 0
		} else {
			dx = 0
		}
	}
	return dx, dy
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
