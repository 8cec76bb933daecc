// Package world provides the tile model, dungeon generation and map queries.
package world

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	// TileVoid represents the absence of a tile (outside the generated map).
	TileVoid TileKind = iota
	// TileWall represents an impassable, sight-blocking wall tile.
	TileWall
	// TileFloor represents a passable floor tile.
	TileFloor
	// TileDoor represents a door; passability and sight depend on its state.
	TileDoor
	// TileStairsDown represents a staircase leading to the next depth.
	TileStairsDown
	// TileStairsUp represents a staircase leading back to the previous depth.
	TileStairsUp
)

// DoorState identifies the state of a door tile. Meaningless for other kinds.
type DoorState uint8

const (
	// DoorOpen is a door that can be walked and seen through.
	DoorOpen DoorState = iota
	// DoorClosed is a shut door; it blocks sight and movement until opened.
	DoorClosed
	// DoorLocked is a locked door; it blocks sight and cannot be opened by hand.
	DoorLocked
)

// Tile holds the kind and, for doors, the door state of one map cell.
type Tile struct {
	Kind TileKind
	Door DoorState
}

// BlocksSight reports whether the tile stops line of sight.
// Only walls and non-open doors are opaque.
func (t Tile) BlocksSight() bool {
	return t.Kind == TileWall || (t.Kind == TileDoor && t.Door != DoorOpen)
}

// IsPassable reports whether the tile can be walked on.
func (t Tile) IsPassable() bool {
	switch t.Kind {
	case TileFloor, TileStairsDown, TileStairsUp:
		return true
	case TileDoor:
		return t.Door == DoorOpen
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t.Kind {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileDoor:
		if t.Door == DoorOpen {
			return '\''
		}
		return '+'
	case TileStairsDown:
		return '>'
	case TileStairsUp:
		return '<'
	default:
		return ' '
	}
}
