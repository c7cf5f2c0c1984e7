package mazeshift

import "github.com/vovakirdan/mazeshift/internal/core"

// occupies reports whether any segment equals p.
func occupies(segments []core.Point, p core.Point) bool {
	for _, seg := range segments {
		if seg == p {
			return true
		}
	}
	return false
}

// NextHead returns the head position after one move in dir.
func NextHead(head core.Point, dir core.Direction) core.Point {
	return head.Step(dir)
}

// StartingSnake returns a horizontal three-segment snake centered on the grid,
// head first and facing right.
func StartingSnake(size int) []core.Point {
	mid := size / 2
	return []core.Point{
		core.Pt(mid, mid),
		core.Pt(mid-1, mid),
		core.Pt(mid-2, mid),
	}
}

// effectiveDirection is the direction the snake will face once every queued
// turn has been applied.
func effectiveDirection(current core.Direction, queue []core.Direction) core.Direction {
	if n := len(queue); n > 0 {
		return queue[n-1]
	}
	return current
}

// canQueueTurn reports whether d may join the turn queue.
// Full queues and reversals of the effective direction are refused.
func canQueueTurn(current core.Direction, queue []core.Direction, d core.Direction) bool {
	if len(queue) >= turnQueueCapacity {
		return false
	}
	return d != effectiveDirection(current, queue).Opposite()
}

// popTurn resolves the direction for this move, consuming the first queued turn.
func popTurn(current core.Direction, queue []core.Direction) (core.Direction, []core.Direction) {
	if len(queue) == 0 {
		return current, queue
	}
	rest := append([]core.Direction(nil), queue[1:]...)
	return queue[0], rest
}

// hitsBody reports whether newHead lands on a segment that stays occupied
// after the move. The tail cell is vacated unless the snake grows.
func hitsBody(snake []core.Point, newHead core.Point, growing bool) bool {
	body := snake
	if !growing && len(body) > 0 {
		body = body[:len(body)-1]
	}
	return occupies(body, newHead)
}

// advance prepends newHead and drops the tail unless growing.
func advance(snake []core.Point, newHead core.Point, growing bool) []core.Point {
	keep := len(snake)
	if !growing && keep > 0 {
		keep--
	}
	out := make([]core.Point, 0, keep+1)
	out = append(out, newHead)
	return append(out, snake[:keep]...)
}
