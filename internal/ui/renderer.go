package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogward/internal/entity"
	"github.com/samdwyer/fogward/internal/vision"
	"github.com/samdwyer/fogward/internal/world"
)

// Renderer draws the dungeon under fog of war: visible tiles are lit,
// explored-but-unseen tiles are dimmed, never-seen tiles stay blank.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame: fogged dungeon, visible enemies, the party, and a
// status line. Visibility is read back from the engine; the renderer never
// mutates it.
func (r *Renderer) Render(dungeon *world.Dungeon, eng *vision.Engine, party *entity.Party, enemies []*entity.Enemy, depth int) {
	r.screen.Clear()

	for y := 0; y < dungeon.Height; y++ {
		for x := 0; x < dungeon.Width; x++ {
			tv := eng.TileVisibility(x, y)
			if !tv.Explored {
				continue
			}

			tile := dungeon.GetTile(x, y)
			style := r.tileStyle(tile, tv.Visible)
			r.screen.SetContent(x, y, tile.Rune(), style)
		}
	}

	// Enemies appear only inside the current field of vision; there is no
	// "last seen here" ghosting.
	for _, e := range enemies {
		if eng.IsVisible(e.X, e.Y) {
			style := tcell.StyleDefault.Foreground(e.Color())
			r.screen.SetContent(e.X, e.Y, e.Glyph(), style)
		}
	}

	partyStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(party.X, party.Y, party.Symbol, partyStyle)

	r.renderStatus(dungeon, party, depth)

	r.screen.Show()
}

// tileStyle returns the style for a tile given whether it is currently lit.
func (r *Renderer) tileStyle(tile world.Tile, visible bool) tcell.Style {
	if !visible {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	}

	switch tile.Kind {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
	case world.TileStairsDown, world.TileStairsUp:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	}
}

// renderStatus draws the status line below the map.
func (r *Renderer) renderStatus(dungeon *world.Dungeon, party *entity.Party, depth int) {
	msg := fmt.Sprintf("depth %d  (%d,%d)  arrows/hjkl move, o door, > descend, q quit", depth, party.X, party.Y)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, dungeon.Height, ch, style)
	}
}
