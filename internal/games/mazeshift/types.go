package mazeshift

import (
	"strings"

	"github.com/vovakirdan/mazeshift/internal/config"
	"github.com/vovakirdan/mazeshift/internal/core"
)

// turnQueueCapacity bounds the number of buffered turns.
const turnQueueCapacity = 2

// ItemKind identifies a collectible type.
type ItemKind uint8

const (
	KindNone ItemKind = iota
	KindApple
	KindBird
	KindBanana
	KindStrawberry
	KindClover
	KindAcorn
	KindPepper
)

// SpawnOrder is the fixed priority in which population targets are topped up.
var SpawnOrder = [...]ItemKind{
	KindApple,
	KindBird,
	KindBanana,
	KindStrawberry,
	KindClover,
	KindAcorn,
	KindPepper,
}

// itemEffect is the side effect a kind triggers when consumed.
type itemEffect uint8

const (
	effectNone itemEffect = iota
	effectSlow
	effectPhase
	effectClearWalls
	effectBurst
)

// kindTraits describes the fixed behavior of one item kind.
type kindTraits struct {
	name   string
	glyph  rune
	color  core.Color
	mobile bool
	effect itemEffect
}

var traits = [...]kindTraits{
	KindNone:       {name: "none", glyph: ' '},
	KindApple:      {name: "apple", glyph: '●', color: core.ColorBrightRed},
	KindBird:       {name: "bird", glyph: 'v', color: core.ColorBrightCyan, mobile: true},
	KindBanana:     {name: "banana", glyph: ')', color: core.ColorBrightYellow, effect: effectSlow},
	KindStrawberry: {name: "strawberry", glyph: '♥', color: core.ColorPink},
	KindClover:     {name: "clover", glyph: '♣', color: core.ColorGreen, effect: effectPhase},
	KindAcorn:      {name: "acorn", glyph: '♠', color: core.ColorBrown, effect: effectClearWalls},
	KindPepper:     {name: "pepper", glyph: '♦', color: core.ColorOrange, effect: effectBurst},
}

func (k ItemKind) traits() kindTraits {
	if int(k) >= len(traits) {
		return traits[KindNone]
	}
	return traits[k]
}

// String returns the lowercase kind name.
func (k ItemKind) String() string {
	return k.traits().name
}

// Mobile reports whether items of this kind wander on their own.
func (k ItemKind) Mobile() bool {
	return k.traits().mobile
}

// ParseItemKind looks up a kind by name.
func ParseItemKind(name string) (ItemKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range SpawnOrder {
		if k.String() == name {
			return k, true
		}
	}
	return KindNone, false
}

// itemSettings returns the configured score and target for a kind.
func itemSettings(cfg config.ItemsConfig, k ItemKind) config.ItemConfig {
	switch k {
	case KindApple:
		return cfg.Apple
	case KindBird:
		return cfg.Bird
	case KindBanana:
		return cfg.Banana
	case KindStrawberry:
		return cfg.Strawberry
	case KindClover:
		return cfg.Clover
	case KindAcorn:
		return cfg.Acorn
	case KindPepper:
		return cfg.Pepper
	default:
		return config.ItemConfig{}
	}
}

// Item is a collectible on the board. Facing is only meaningful for mobile kinds.
type Item struct {
	Pos    core.Point
	Kind   ItemKind
	Facing core.Direction
}

// ShiftDirection is a planned whole-grid wall translation.
type ShiftDirection uint8

const (
	ShiftNone ShiftDirection = iota
	ShiftLeft
	ShiftRight
	ShiftUp
	ShiftDown
)

// String returns the shift name.
func (s ShiftDirection) String() string {
	switch s {
	case ShiftLeft:
		return "LEFT"
	case ShiftRight:
		return "RIGHT"
	case ShiftUp:
		return "UP"
	case ShiftDown:
		return "DOWN"
	default:
		return "NONE"
	}
}

// Delta returns the unit translation of the shift.
func (s ShiftDirection) Delta() (dx, dy int) {
	switch s {
	case ShiftLeft:
		return -1, 0
	case ShiftRight:
		return 1, 0
	case ShiftUp:
		return 0, -1
	case ShiftDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// DeathCause records which collision ended the run.
type DeathCause uint8

const (
	DeathNone DeathCause = iota
	DeathBoundary
	DeathWall
	DeathSelf
)

// String returns the cause name.
func (d DeathCause) String() string {
	switch d {
	case DeathBoundary:
		return "boundary"
	case DeathWall:
		return "wall"
	case DeathSelf:
		return "self"
	default:
		return "none"
	}
}

// State is the complete simulation state. Engine operations never mutate a
// State they receive; they return a new value.
type State struct {
	Snake        []core.Point // Head first
	Direction    core.Direction
	PendingTurns []core.Direction
	Items        []Item
	Terrain      Terrain

	Score     float64
	TickMs    int
	ElapsedMs int
	Ticks     int

	ShiftTimerMs    int
	ShiftWarningMs  int
	PendingShift    ShiftDirection
	ItemsSinceShift int

	FlowTimerMs    int
	FlowMultiplier float64

	ItemsSincePhase  int
	PhaseCharges     int
	PhaseWindowMoves int

	SlowTimerMs  int
	BurstCharges int

	// Tick-scoped fields, reset at the start of every step.
	LastEaten      ItemKind
	LastShift      ShiftDirection
	ShiftDiscarded bool
	BurstUsed      bool
	PhaseSpent     bool // A charge opened a bypass window this tick

	GameOver   bool
	DeathCause DeathCause
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Snake = append([]core.Point(nil), s.Snake...)
	c.PendingTurns = append([]core.Direction(nil), s.PendingTurns...)
	c.Items = append([]Item(nil), s.Items...)
	c.Terrain = s.Terrain.Clone()
	return c
}

// Head returns the snake head, or the origin for an empty snake.
func (s State) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{}
	}
	return s.Snake[0]
}

// Length returns the number of snake segments.
func (s State) Length() int {
	return len(s.Snake)
}

// ShiftWarning reports whether a planned shift is pending.
func (s State) ShiftWarning() bool {
	return s.ShiftWarningMs > 0
}

// ItemAt returns the index of the item at p, or -1.
func (s State) ItemAt(p core.Point) int {
	return itemIndex(s.Items, p)
}

// CountKind returns how many items of kind k are on the board.
func (s State) CountKind(k ItemKind) int {
	return countKind(s.Items, k)
}

// ActionKind distinguishes player intents.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionTurn
	ActionBurst
)

// Action is a player intent applied between ticks.
type Action struct {
	Kind ActionKind
	Dir  core.Direction
}

// Turn returns a turn action.
func Turn(d core.Direction) Action {
	return Action{Kind: ActionTurn, Dir: d}
}

// Burst returns a burst action.
func Burst() Action {
	return Action{Kind: ActionBurst}
}

// ActionFromKey maps a raw key identifier to an action.
// Arrows and WASD (either case) turn; space, Z and X burst.
func ActionFromKey(key string) (Action, bool) {
	switch key {
	case "up", "w", "W":
		return Turn(core.DirUp), true
	case "down", "s", "S":
		return Turn(core.DirDown), true
	case "left", "a", "A":
		return Turn(core.DirLeft), true
	case "right", "d", "D":
		return Turn(core.DirRight), true
	case " ", "space", "z", "Z", "x", "X":
		return Burst(), true
	default:
		return Action{}, false
	}
}

// ActionFromInput maps a platform action to an engine action.
func ActionFromInput(a core.Action) (Action, bool) {
	if d, ok := a.Direction(); ok {
		return Turn(d), true
	}
	if a == core.ActionBurst {
		return Burst(), true
	}
	return Action{}, false
}
