package mazeshift

import "github.com/vovakirdan/mazeshift/internal/core"

// Autopilot picks a turn toward the nearest reachable item using a
// breadth-first search over open cells. It falls back to any survivable
// neighbor and returns ok=false when no turn is needed.
func Autopilot(s State) (Action, bool) {
	if s.GameOver || len(s.Snake) == 0 {
		return Action{}, false
	}
	size := s.Terrain.Size()
	head := s.Head()
	current := effectiveDirection(s.Direction, s.PendingTurns)
	body := s.Snake[:len(s.Snake)-1]

	open := func(p core.Point) bool {
		return p.InBounds(size) && !s.Terrain.Wall(p) && !occupies(body, p)
	}

	type node struct {
		p     core.Point
		first core.Direction
	}
	seen := map[core.Point]bool{head: true}
	var queue []node
	for _, d := range core.Directions {
		if d == current.Opposite() {
			continue
		}
		p := NextHead(head, d)
		if open(p) && !seen[p] {
			seen[p] = true
			queue = append(queue, node{p: p, first: d})
		}
	}

	choice, found := current, false
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if s.ItemAt(n.p) >= 0 {
			choice, found = n.first, true
			break
		}
		for _, d := range core.Directions {
			p := NextHead(n.p, d)
			if open(p) && !seen[p] {
				seen[p] = true
				queue = append(queue, node{p: p, first: n.first})
			}
		}
	}

	if !found && !open(NextHead(head, current)) {
		for _, d := range core.Directions {
			if d != current.Opposite() && open(NextHead(head, d)) {
				choice = d
				break
			}
		}
	}

	if choice == current {
		return Action{}, false
	}
	return Turn(choice), true
}
