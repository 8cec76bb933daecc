package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogward/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 24

	// BSP parameters
	minRoomSize = 6  // Minimum room dimension
	maxRoomSize = 15 // Maximum room dimension
	minLeafSize = 8  // Minimum BSP leaf size before stopping split
)

// Dungeon represents one level of the game map.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Room
	rng    *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: TileWall}
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0),
		rng:    rng,
	}
}

// Generate creates the dungeon layout using BSP algorithm, then places
// doors at room junctions and stairs in the first and last rooms.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	// Start BSP with the entire dungeon as root
	root := &bspNode{
		x:      1,
		y:      1,
		width:  d.Width - 2,
		height: d.Height - 2,
	}

	d.splitNode(root)
	d.createRooms(root)
	d.connectRooms(root)
	doors := d.placeDoors()
	d.placeStairs()

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.door_count", doors),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// InBounds returns true if the position lies within the map.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// GetTile returns the tile at the given position, or a void tile if the
// position is outside the map.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return Tile{Kind: TileVoid}
	}
	return d.Tiles[y][x]
}

// SetTile replaces the tile at the given position. Out-of-bounds writes are ignored.
func (d *Dungeon) SetTile(x, y int, t Tile) {
	if !d.InBounds(x, y) {
		return
	}
	d.Tiles[y][x] = t
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return d.GetTile(x, y).IsPassable()
}

// OpenDoor opens a closed door at the given position. Locked doors stay shut.
// Returns true if the door state changed.
func (d *Dungeon) OpenDoor(x, y int) bool {
	t := d.GetTile(x, y)
	if t.Kind != TileDoor || t.Door != DoorClosed {
		return false
	}
	d.Tiles[y][x].Door = DoorOpen
	return true
}

// CloseDoor closes an open door at the given position.
// Returns true if the door state changed.
func (d *Dungeon) CloseDoor(x, y int) bool {
	t := d.GetTile(x, y)
	if t.Kind != TileDoor || t.Door != DoorOpen {
		return false
	}
	d.Tiles[y][x].Door = DoorClosed
	return true
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random passable point within the specified room.
func (d *Dungeon) RandomPointInRoom(roomIndex int) (int, int) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return -1, -1
	}
	room := d.Rooms[roomIndex]

	// Try random points until we find a passable one (max 100 attempts)
	for i := 0; i < 100; i++ {
		x := room.X + d.rng.Intn(room.Width)
		y := room.Y + d.rng.Intn(room.Height)
		if d.IsPassable(x, y) {
			return x, y
		}
	}

	// Fallback to room center
	return room.Center()
}

// StairsDownAt returns the position of the downward staircase, or (-1,-1) if none.
func (d *Dungeon) StairsDownAt() (int, int) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if d.Tiles[y][x].Kind == TileStairsDown {
				return x, y
			}
		}
	}
	return -1, -1
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (d *Dungeon) splitNode(node *bspNode) {
	// Stop if too small to split
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	// Determine split direction
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false // Split vertically (left/right)
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true // Split horizontally (top/bottom)
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return // Can't split
	}

	var splitPos int
	if splitHorizontally {
		min := minLeafSize
		max := node.height - minLeafSize
		if max <= min {
			return
		}
		splitPos = min + d.rng.Intn(max-min+1)
	} else {
		min := minLeafSize
		max := node.width - minLeafSize
		if max <= min {
			return
		}
		splitPos = min + d.rng.Intn(max-min+1)
	}

	if splitHorizontally {
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  node.width,
			height: splitPos,
		}
		node.right = &bspNode{
			x:      node.x,
			y:      node.y + splitPos,
			width:  node.width,
			height: node.height - splitPos,
		}
	} else {
		node.left = &bspNode{
			x:      node.x,
			y:      node.y,
			width:  splitPos,
			height: node.height,
		}
		node.right = &bspNode{
			x:      node.x + splitPos,
			y:      node.y,
			width:  node.width - splitPos,
			height: node.height,
		}
	}

	d.splitNode(node.left)
	d.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (d *Dungeon) createRooms(node *bspNode) {
	if node == nil {
		return
	}

	if node.isLeaf() {
		roomWidth := minRoomSize + d.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
		roomHeight := minRoomSize + d.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))

		// Ensure room fits within leaf
		if roomWidth > node.width-2 {
			roomWidth = node.width - 2
		}
		if roomHeight > node.height-2 {
			roomHeight = node.height - 2
		}
		if roomWidth < minRoomSize || roomHeight < minRoomSize {
			return // Skip if too small
		}

		roomX := node.x + 1 + d.rng.Intn(node.width-roomWidth-1)
		roomY := node.y + 1 + d.rng.Intn(node.height-roomHeight-1)

		room := Room{
			X:      roomX,
			Y:      roomY,
			Width:  roomWidth,
			Height: roomHeight,
		}
		node.room = &room
		d.Rooms = append(d.Rooms, room)

		d.carveRoom(room)
	} else {
		d.createRooms(node.left)
		d.createRooms(node.right)
	}
}

// carveRoom sets all tiles within the room to floor.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
				d.Tiles[y][x] = Tile{Kind: TileFloor}
			}
		}
	}
}

// connectRooms connects rooms with corridors.
func (d *Dungeon) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	d.connectRooms(node.left)
	d.connectRooms(node.right)

	leftRoom := d.getRoom(node.left)
	rightRoom := d.getRoom(node.right)

	if leftRoom != nil && rightRoom != nil {
		d.carveCorridor(*leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (d *Dungeon) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}

	if node.room != nil {
		return node.room
	}

	if room := d.getRoom(node.left); room != nil {
		return room
	}
	return d.getRoom(node.right)
}

// carveCorridor creates a corridor between two rooms.
func (d *Dungeon) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if d.rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
			d.Tiles[y][x] = Tile{Kind: TileFloor}
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
			d.Tiles[y][x] = Tile{Kind: TileFloor}
		}
	}
}

// placeDoors converts corridor openings on room perimeters into doors.
// A floor tile just outside a room edge becomes a door when it still has
// walls on the perpendicular sides, so the opening is exactly one tile wide.
// Returns the number of doors placed.
func (d *Dungeon) placeDoors() int {
	placed := 0
	for _, room := range d.Rooms {
		// Top and bottom edges: the rows just outside the room.
		for x := room.X; x < room.X+room.Width; x++ {
			placed += d.tryDoor(x, room.Y-1, true)
			placed += d.tryDoor(x, room.Y+room.Height, true)
		}
		// Left and right edges: the columns just outside the room.
		for y := room.Y; y < room.Y+room.Height; y++ {
			placed += d.tryDoor(room.X-1, y, false)
			placed += d.tryDoor(room.X+room.Width, y, false)
		}
	}
	return placed
}

// tryDoor places a door at (x,y) if the tile is a one-wide corridor opening.
// horizontal indicates the door sits in a horizontal room edge (walls must be
// east and west of it); otherwise walls must be north and south.
func (d *Dungeon) tryDoor(x, y int, horizontal bool) int {
	if d.GetTile(x, y).Kind != TileFloor {
		return 0
	}
	if horizontal {
		if d.GetTile(x-1, y).Kind != TileWall || d.GetTile(x+1, y).Kind != TileWall {
			return 0
		}
	} else {
		if d.GetTile(x, y-1).Kind != TileWall || d.GetTile(x, y+1).Kind != TileWall {
			return 0
		}
	}

	state := DoorClosed
	switch roll := d.rng.Intn(10); {
	case roll < 4:
		state = DoorOpen
	case roll < 9:
		state = DoorClosed
	default:
		state = DoorLocked
	}
	d.Tiles[y][x] = Tile{Kind: TileDoor, Door: state}
	return 1
}

// placeStairs puts an upward staircase in the first room and a downward
// staircase in the last room.
func (d *Dungeon) placeStairs() {
	if len(d.Rooms) == 0 {
		return
	}
	ux, uy := d.Rooms[0].Center()
	d.Tiles[uy][ux] = Tile{Kind: TileStairsUp}

	last := d.Rooms[len(d.Rooms)-1]
	dx, dy := last.Center()
	if dx == ux && dy == uy {
		// Single-room level: offset the down staircase by one tile.
		dx++
	}
	if d.InBounds(dx, dy) {
		d.Tiles[dy][dx] = Tile{Kind: TileStairsDown}
	}
}
