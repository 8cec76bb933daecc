package game

import (
	"context"
	"math/rand"

	"github.com/samdwyer/fogward/internal/entity"
	"github.com/samdwyer/fogward/internal/gamedata"
	"github.com/samdwyer/fogward/internal/world"
)

// Level bundles one depth's dungeon and its inhabitants.
type Level struct {
	Depth   int
	Dungeon *world.Dungeon
	Enemies []*entity.Enemy
}

// newLevel generates the dungeon for a depth. Generation is a pure function
// of (seed, depth), so revisiting a depth reproduces the same layout and the
// restored exploration memory lines up with the tiles.
func newLevel(ctx context.Context, cfg Config, registry *gamedata.EnemyRegistry, depth int) *Level {
	rng := rand.New(rand.NewSource(cfg.Seed + int64(depth)))

	dungeon := world.NewDungeon(cfg.Width, cfg.Height, rng)
	dungeon.Generate(ctx)

	level := &Level{
		Depth:   depth,
		Dungeon: dungeon,
	}
	level.spawnEnemies(rng, registry)
	return level
}

// spawnEnemies places one enemy per room, skipping the entry room so the
// party never starts in sight of something.
func (l *Level) spawnEnemies(rng *rand.Rand, registry *gamedata.EnemyRegistry) {
	for i := 1; i < len(l.Dungeon.Rooms); i++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			return
		}
		x, y := l.Dungeon.RandomPointInRoom(i)
		if x < 0 {
			continue
		}
		l.Enemies = append(l.Enemies, entity.NewEnemy(def, x, y, i))
	}
}

// EnemyAt returns the enemy occupying (x,y), or nil.
func (l *Level) EnemyAt(x, y int) *entity.Enemy {
	for _, e := range l.Enemies {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}
