package vision

import "github.com/samdwyer/fogward/internal/world"

// fixtureMap is a tiny TileMap built from string rows for tests.
//
//	# wall   . floor   + closed door   ' open door   * locked door
type fixtureMap struct {
	tiles [][]world.Tile
}

func parseMap(rows ...string) *fixtureMap {
	tiles := make([][]world.Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]world.Tile, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				tiles[y][x] = world.Tile{Kind: world.TileWall}
			case '+':
				tiles[y][x] = world.Tile{Kind: world.TileDoor, Door: world.DoorClosed}
			case '\'':
				tiles[y][x] = world.Tile{Kind: world.TileDoor, Door: world.DoorOpen}
			case '*':
				tiles[y][x] = world.Tile{Kind: world.TileDoor, Door: world.DoorLocked}
			default:
				tiles[y][x] = world.Tile{Kind: world.TileFloor}
			}
		}
	}
	return &fixtureMap{tiles: tiles}
}

// openMap returns an all-floor map of the given size.
func openMap(width, height int) *fixtureMap {
	tiles := make([][]world.Tile, height)
	for y := range tiles {
		tiles[y] = make([]world.Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = world.Tile{Kind: world.TileFloor}
		}
	}
	return &fixtureMap{tiles: tiles}
}

func (m *fixtureMap) InBounds(x, y int) bool {
	return y >= 0 && y < len(m.tiles) && x >= 0 && x < len(m.tiles[y])
}

func (m *fixtureMap) GetTile(x, y int) world.Tile {
	if !m.InBounds(x, y) {
		return world.Tile{Kind: world.TileVoid}
	}
	return m.tiles[y][x]
}
