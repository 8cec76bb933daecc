package vision

import "sort"

// SavedState is the externally persisted shape of the engine: the explored
// set and the view range. The visible set is never saved; callers recompute
// it after a restore.
type SavedState struct {
	ExploredTiles [][2]int `json:"exploredTiles,omitempty"`
	ViewRange     int      `json:"viewRange,omitempty"`
}

// Save snapshots the explored set and view range. Tiles are sorted so saves
// are byte-stable for a given exploration state.
func (e *Engine) Save() SavedState {
	tiles := make([][2]int, 0, len(e.explored))
	for p := range e.explored {
		tiles = append(tiles, [2]int{p.X, p.Y})
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i][1] != tiles[j][1] {
			return tiles[i][1] < tiles[j][1]
		}
		return tiles[i][0] < tiles[j][0]
	})

	return SavedState{
		ExploredTiles: tiles,
		ViewRange:     e.viewRange,
	}
}

// Restore replaces the explored set and view range from a saved snapshot.
// Partial state is tolerated: a nil tile list restores to an empty explored
// set, and a non-positive view range leaves the current range unchanged. A
// nil state leaves both untouched. The visible set is always cleared; the
// caller must recompute before the next visibility query.
func (e *Engine) Restore(state *SavedState) {
	if state != nil {
		clear(e.explored)
		for _, t := range state.ExploredTiles {
			e.explored[Point{t[0], t[1]}] = struct{}{}
		}
		if state.ViewRange > 0 {
			e.viewRange = clampViewRange(state.ViewRange)
		}
	}
	clear(e.visible)
}
