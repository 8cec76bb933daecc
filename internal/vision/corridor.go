package vision

// Axis classifies whether a position lies in a corridor and along which axis.
type Axis uint8

const (
	// AxisNone means the position is in open space (room mode applies).
	AxisNone Axis = iota
	// AxisHorizontal means the corridor runs east-west.
	AxisHorizontal
	// AxisVertical means the corridor runs north-south.
	AxisVertical
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "corridor-horizontal"
	case AxisVertical:
		return "corridor-vertical"
	default:
		return "room"
	}
}

// ClassifyCorridor inspects the four orthogonal neighbors of (x,y) and
// decides whether the position sits in a corridor.
//
// The horizontal check runs first, so a tile walled on all four sides (a
// dead-end alcove) classifies as AxisHorizontal. That ordering is a fixed
// policy the sight restriction depends on; do not reorder.
func ClassifyCorridor(m TileMap, x, y int) Axis {
	north := m.GetTile(x, y-1).BlocksSight()
	south := m.GetTile(x, y+1).BlocksSight()
	east := m.GetTile(x+1, y).BlocksSight()
	west := m.GetTile(x-1, y).BlocksSight()

	if north && south {
		return AxisHorizontal
	}
	if east && west {
		return AxisVertical
	}
	return AxisNone
}
