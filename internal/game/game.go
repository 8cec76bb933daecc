// Package game provides the main game loop and turn handling.
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogward/internal/entity"
	"github.com/samdwyer/fogward/internal/gamedata"
	"github.com/samdwyer/fogward/internal/telemetry"
	"github.com/samdwyer/fogward/internal/ui"
	"github.com/samdwyer/fogward/internal/vision"
	"github.com/samdwyer/fogward/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *gamedata.EnemyRegistry

	level  *Level
	engine *vision.Engine
	party  *entity.Party
	depth  int

	// fog keeps each visited depth's exploration memory so stairs can be
	// walked in both directions without losing the map.
	fog map[int]vision.SavedState

	running bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	registry, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		registry: registry,
		fog:      make(map[int]vision.SavedState),
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.enterLevel(ctx, 1, true)
	initSpan.SetAttributes(
		attribute.Int("dungeon.rooms", len(g.level.Dungeon.Rooms)),
		attribute.Int("party.start_x", g.party.X),
		attribute.Int("party.start_y", g.party.Y),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.level.Dungeon, g.engine, g.party, g.level.Enemies, g.depth)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

// enterLevel generates or regenerates the dungeon at the given depth,
// restores any saved exploration memory, places the party at the arrival
// staircase and recomputes visibility.
func (g *Game) enterLevel(ctx context.Context, depth int, descending bool) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.enter_level")
	defer span.End()

	g.depth = depth
	g.level = newLevel(ctx, g.cfg, g.registry, depth)
	g.engine = vision.NewEngine(g.level.Dungeon)

	if saved, ok := g.fog[depth]; ok {
		g.engine.Restore(&saved)
	} else {
		g.engine.SetViewRange(g.cfg.ViewRange)
	}

	x, y := g.arrivalPoint(descending)
	if g.party == nil {
		g.party = entity.NewParty(x, y)
	} else {
		g.party.X, g.party.Y = x, y
	}

	g.engine.Recompute(ctx, g.party.X, g.party.Y)

	span.SetAttributes(
		attribute.Int("level.depth", depth),
		attribute.Bool("level.revisited", len(g.fog) > 0),
		attribute.Int("level.enemies", len(g.level.Enemies)),
	)
}

// arrivalPoint finds the staircase the party arrives on: the up staircase
// when descending into a level, the down staircase when climbing back.
func (g *Game) arrivalPoint(descending bool) (int, int) {
	want := world.TileStairsUp
	if !descending {
		want = world.TileStairsDown
	}
	d := g.level.Dungeon
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if d.GetTile(x, y).Kind == want {
				return x, y
			}
		}
	}
	if len(d.Rooms) > 0 {
		return d.Rooms[0].Center()
	}
	return d.Width / 2, d.Height / 2
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'h':
			g.tryMove(ctx, -1, 0)
		case 'j':
			g.tryMove(ctx, 0, 1)
		case 'k':
			g.tryMove(ctx, 0, -1)
		case 'l':
			g.tryMove(ctx, 1, 0)
		case 'o':
			g.toggleAdjacentDoors(ctx)
		case '>':
			g.tryDescend(ctx)
		case '<':
			g.tryAscend(ctx)
		}
	}
}

// tryMove attempts to move the party by the given delta. Walking into a
// closed door opens it instead of moving. Either way the turn advances:
// enemies act and visibility is recomputed.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	newX := g.party.X + dx
	newY := g.party.Y + dy
	d := g.level.Dungeon

	acted := false
	if d.IsPassable(newX, newY) && g.level.EnemyAt(newX, newY) == nil {
		g.party.Move(dx, dy)
		acted = true
	} else if d.OpenDoor(newX, newY) {
		acted = true
	}

	if acted {
		g.advanceTurn(ctx)
	}
}

// toggleAdjacentDoors opens closed doors and closes open doors on the four
// orthogonal neighbors, then advances the turn if anything changed.
func (g *Game) toggleAdjacentDoors(ctx context.Context) {
	d := g.level.Dungeon
	changed := false
	for _, n := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		x, y := g.party.X+n[0], g.party.Y+n[1]
		if d.OpenDoor(x, y) || d.CloseDoor(x, y) {
			changed = true
		}
	}
	if changed {
		g.advanceTurn(ctx)
	}
}

// tryDescend moves to the next depth if the party stands on a down staircase.
func (g *Game) tryDescend(ctx context.Context) {
	if g.level.Dungeon.GetTile(g.party.X, g.party.Y).Kind != world.TileStairsDown {
		return
	}
	g.fog[g.depth] = g.engine.Save()
	g.enterLevel(ctx, g.depth+1, true)
}

// tryAscend climbs back to the previous depth from an up staircase.
func (g *Game) tryAscend(ctx context.Context) {
	if g.depth <= 1 {
		return
	}
	if g.level.Dungeon.GetTile(g.party.X, g.party.Y).Kind != world.TileStairsUp {
		return
	}
	g.fog[g.depth] = g.engine.Save()
	g.enterLevel(ctx, g.depth-1, false)
}

// advanceTurn runs enemy perception and movement, then rebuilds visibility
// for the party's new surroundings.
func (g *Game) advanceTurn(ctx context.Context) {
	g.moveEnemies()
	g.engine.Recompute(ctx, g.party.X, g.party.Y)
}

// moveEnemies steps each enemy toward the party when it has line of sight.
// Perception is recomputed fresh every turn; enemies keep no fog-of-war
// memory, so breaking sight stops the chase.
func (g *Game) moveEnemies() {
	d := g.level.Dungeon
	for _, e := range g.level.Enemies {
		if !vision.CanSee(d, e.X, e.Y, g.party.X, g.party.Y, e.Perception()) {
			continue
		}

		dx, dy := e.StepToward(g.party.X, g.party.Y)
		nx, ny := e.X+dx, e.Y+dy
		if nx == g.party.X && ny == g.party.Y {
			continue // hold position next to the party
		}
		if d.IsPassable(nx, ny) && g.level.EnemyAt(nx, ny) == nil {
			e.X, e.Y = nx, ny
		}
	}
}
