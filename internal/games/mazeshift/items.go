package mazeshift

import (
	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/rng"
)

// itemIndex returns the index of the item at p, or -1.
func itemIndex(items []Item, p core.Point) int {
	for i, it := range items {
		if it.Pos == p {
			return i
		}
	}
	return -1
}

func countKind(items []Item, k ItemKind) int {
	n := 0
	for _, it := range items {
		if it.Kind == k {
			n++
		}
	}
	return n
}

// cellFree reports whether p holds no wall, snake segment or item.
func cellFree(p core.Point, snake []core.Point, t Terrain, items []Item) bool {
	return !t.Wall(p) && !occupies(snake, p) && itemIndex(items, p) < 0
}

// SpawnItem places an item of the given kind on a free cell.
// It samples up to 2×area random cells, then scans the grid row by row.
// On a completely full board it returns an item at the origin with ok=false.
func SpawnItem(size int, src rng.Source, snake []core.Point, t Terrain, items []Item, kind ItemKind) (Item, bool) {
	item := Item{Kind: kind}
	if kind.Mobile() {
		item.Facing = core.Directions[rng.Intn(src, len(core.Directions))]
	}

	for attempt := 0; attempt < 2*size*size; attempt++ {
		p := core.Pt(rng.Intn(src, size), rng.Intn(src, size))
		if cellFree(p, snake, t, items) {
			item.Pos = p
			return item, true
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Pt(x, y)
			if cellFree(p, snake, t, items) {
				item.Pos = p
				return item, true
			}
		}
	}

	return item, false
}

// EnsurePopulationTargets spawns items in SpawnOrder until every kind reaches
// its configured target. Spawning stops for the pass once the board is full.
func EnsurePopulationTargets(size int, src rng.Source, snake []core.Point, t Terrain, items []Item, cfg config.ItemsConfig) []Item {
	out := append([]Item(nil), items...)
	for _, kind := range SpawnOrder {
		target := itemSettings(cfg, kind).Target
		for n := countKind(out, kind); n < target; n++ {
			it, ok := SpawnItem(size, src, snake, t, out, kind)
			if !ok {
				return out
			}
			out = append(out, it)
		}
	}
	return out
}

// MoveMobileItems gives every mobile item a chance to step in a random
// direction. A step off the grid or onto a wall, the snake or another item is
// rejected and the item stays put.
func MoveMobileItems(items []Item, src rng.Source, snake []core.Point, t Terrain, size int, chance float64) []Item {
	out := append([]Item(nil), items...)
	for i := range out {
		if !out[i].Kind.Mobile() || !rng.Chance(src, chance) {
			continue
		}
		dir := core.Directions[rng.Intn(src, len(core.Directions))]
		next := out[i].Pos.Step(dir)
		if !next.InBounds(size) || !cellFree(next, snake, t, out) {
			continue
		}
		out[i].Pos = next
		out[i].Facing = dir
	}
	return out
}

// RemoveBlockedItems drops items that sit under a wall.
func RemoveBlockedItems(items []Item, t Terrain) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !t.Wall(it.Pos) {
			out = append(out, it)
		}
	}
	return out
}

// removeItem returns items without the element at i.
func removeItem(items []Item, i int) []Item {
	out := make([]Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
