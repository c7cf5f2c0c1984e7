package mazeshift

import (
	"math"
	"strings"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
	"github.com/vovakirdan/mazeshift/internal/rng"
)

// Terrain is a square wall grid stored row-major.
// Mutating helpers return a new Terrain and leave the receiver untouched.
type Terrain struct {
	size  int
	cells []bool
}

// NewTerrain creates an empty size×size grid.
func NewTerrain(size int) Terrain {
	size = max(size, 0)
	return Terrain{size: size, cells: make([]bool, size*size)}
}

// ParseTerrain builds a terrain from rows where '#' marks a wall.
// The grid is square with the side of the longest row or the row count.
func ParseTerrain(rows ...string) Terrain {
	size := len(rows)
	for _, row := range rows {
		size = max(size, len([]rune(row)))
	}
	t := NewTerrain(size)
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if ch == '#' {
				t.cells[y*size+x] = true
			}
		}
	}
	return t
}

// Size returns the side length of the grid.
func (t Terrain) Size() int {
	return t.size
}

// Wall reports whether p is a wall. Out-of-bounds points are not walls.
func (t Terrain) Wall(p core.Point) bool {
	if !p.InBounds(t.size) {
		return false
	}
	return t.cells[p.Y*t.size+p.X]
}

// Clone returns an independent copy.
func (t Terrain) Clone() Terrain {
	return Terrain{size: t.size, cells: append([]bool(nil), t.cells...)}
}

// Equal reports whether two terrains have the same walls.
func (t Terrain) Equal(o Terrain) bool {
	if t.size != o.size {
		return false
	}
	for i := range t.cells {
		if t.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Walls returns every wall position in row-major order.
func (t Terrain) Walls() []core.Point {
	var out []core.Point
	for i, wall := range t.cells {
		if wall {
			out = append(out, core.Pt(i%t.size, i/t.size))
		}
	}
	return out
}

// String renders the grid with '#' for walls and '.' for open cells.
func (t Terrain) String() string {
	var b strings.Builder
	for y := 0; y < t.size; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < t.size; x++ {
			if t.cells[y*t.size+x] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func (t Terrain) set(p core.Point, wall bool) {
	if p.InBounds(t.size) {
		t.cells[p.Y*t.size+p.X] = wall
	}
}

// insideClearance reports whether p keeps the border margin.
func (t Terrain) insideClearance(p core.Point, clearance int) bool {
	return p.X >= clearance && p.Y >= clearance &&
		p.X < t.size-clearance && p.Y < t.size-clearance
}

// CountWalls returns the number of wall cells.
func CountWalls(t Terrain) int {
	n := 0
	for _, wall := range t.cells {
		if wall {
			n++
		}
	}
	return n
}

// InitWalls places a wall on each cell inside the border clearance and off the
// snake with probability density.
func InitWalls(size int, src rng.Source, snake []core.Point, density float64, clearance int) Terrain {
	t := NewTerrain(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Pt(x, y)
			if !t.insideClearance(p, clearance) || occupies(snake, p) {
				continue
			}
			if rng.Chance(src, density) {
				t.set(p, true)
			}
		}
	}
	return t
}

// PlanShift picks a shift direction uniformly.
func PlanShift(src rng.Source) ShiftDirection {
	switch rng.Intn(src, 4) {
	case 0:
		return ShiftLeft
	case 1:
		return ShiftRight
	case 2:
		return ShiftUp
	default:
		return ShiftDown
	}
}

// shiftPoint translates p by one unit with toroidal wraparound.
func shiftPoint(p core.Point, dir ShiftDirection, size int) core.Point {
	dx, dy := dir.Delta()
	return core.Pt((p.X+dx+size)%size, (p.Y+dy+size)%size)
}

// ApplyShift translates every wall by one unit in dir, wrapping around the
// edges. The snake is not consulted.
func ApplyShift(t Terrain, dir ShiftDirection) Terrain {
	out := NewTerrain(t.size)
	if dir == ShiftNone {
		copy(out.cells, t.cells)
		return out
	}
	for i, wall := range t.cells {
		if !wall {
			continue
		}
		out.set(shiftPoint(core.Pt(i%t.size, i/t.size), dir, t.size), true)
	}
	return out
}

// IsSafeShift reports whether no wall would land on a snake segment.
func IsSafeShift(t Terrain, snake []core.Point, dir ShiftDirection) bool {
	for _, p := range t.Walls() {
		if occupies(snake, shiftPoint(p, dir, t.size)) {
			return false
		}
	}
	return true
}

// TargetWallCount returns the desired wall count for a snake of the given
// length. Density grows linearly with length past the starting three segments
// and is clamped to [StartDensity, MaxDensity].
func TargetWallCount(size, snakeLen int, cfg config.WallsConfig) int {
	density := cfg.StartDensity + cfg.DensityPerLength*float64(snakeLen-3)
	density = core.ClampF(density, cfg.StartDensity, cfg.MaxDensity)
	return int(math.Floor(float64(size*size) * density))
}

// AddWalls samples random free cells and turns them into walls until target
// is reached or limit walls were placed. Cells on the snake, in avoid, under
// the border clearance, or already walls are skipped. Sampling is bounded by
// limit×10 attempts.
func AddWalls(t Terrain, src rng.Source, snake, avoid []core.Point, target, limit, clearance int) Terrain {
	out := t.Clone()
	current := CountWalls(out)
	if current >= target || limit <= 0 {
		return out
	}
	added := 0
	for attempt := 0; attempt < limit*10; attempt++ {
		if current >= target || added >= limit {
			break
		}
		p := core.Pt(rng.Intn(src, t.size), rng.Intn(src, t.size))
		if out.Wall(p) || !out.insideClearance(p, clearance) || occupies(snake, p) || occupies(avoid, p) {
			continue
		}
		out.set(p, true)
		current++
		added++
	}
	return out
}

// RemoveWalls clears up to count random walls using at most count×20 samples.
func RemoveWalls(t Terrain, src rng.Source, count int) Terrain {
	out := t.Clone()
	removed := 0
	for attempt := 0; attempt < count*20 && removed < count; attempt++ {
		p := core.Pt(rng.Intn(src, t.size), rng.Intn(src, t.size))
		if out.Wall(p) {
			out.set(p, false)
			removed++
		}
	}
	return out
}

// ClearRadius removes every wall within the Chebyshev radius of center.
func ClearRadius(t Terrain, center core.Point, radius int) Terrain {
	out := t.Clone()
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			out.set(core.Pt(x, y), false)
		}
	}
	return out
}

// ClearCell removes the wall at p, if any.
func ClearCell(t Terrain, p core.Point) Terrain {
	if !t.Wall(p) {
		return t
	}
	out := t.Clone()
	out.set(p, false)
	return out
}
