package street

import (
	"time"

	"github.com/golangdaddy/jaywalker/pkg/entity"
	"github.com/golangdaddy/jaywalker/pkg/geometry"
	"github.com/golangdaddy/jaywalker/pkg/obstacle"
)

const (
	// maxObstaclesPerLane caps live obstacles in one lane; producers
	// are not polled while the lane is full.
	maxObstaclesPerLane = 5

	// spawnOffset places freshly produced obstacles this many pixels
	// beyond the street edge so they enter the canvas mid-motion.
	spawnOffset = 50.0
)

// Lane is one directional strip of the street: its producers plus the
// obstacles currently travelling along it. Obstacles keep spawn order;
// order has no behavioral meaning beyond that.
type Lane struct {
	Direction obstacle.Direction

	// Width is the vertical extent of the strip, Length its horizontal
	// extent (the street length), CenterY the vertical center computed
	// from the widths of the lanes stacked above.
	Width   float64
	Length  float64
	CenterY float64

	Producers []obstacle.Producer
	Obstacles []obstacle.Obstacle
}

// SpawnReady polls every producer once and emits the ready ones into
// the lane, respecting the per-lane obstacle cap. Returns the updated
// lane snapshot; the receiver is left untouched.
func (l Lane) SpawnReady(player geometry.Rectangle, now time.Time) Lane {
	if len(l.Obstacles) >= maxObstaclesPerLane {
		return l
	}

	next := l
	next.Producers = make([]obstacle.Producer, len(l.Producers))
	copy(next.Producers, l.Producers)
	next.Obstacles = append([]obstacle.Obstacle(nil), l.Obstacles...)

	for i, p := range next.Producers {
		if !p.ReadyForNext(player, now) {
			continue
		}
		o, updated := p.Produce(l.entryX(p.Template.Rect.Width), now)
		next.Producers[i] = updated
		next.Obstacles = append(next.Obstacles, o)
	}
	return next
}

// entryX is the off-canvas x where a new obstacle of the given width
// enters: beyond the right edge for leftbound lanes, beyond the left
// edge for rightbound ones.
func (l Lane) entryX(width float64) float64 {
	if l.Direction == obstacle.Left {
		return l.Length + spawnOffset
	}
	return -width - spawnOffset
}

// Advance moves every obstacle one tick, giving each the player plus
// the full cross-lane obstacle list as braking context, then drops
// obstacles that fully exited the street on their trailing side.
func (l Lane) Advance(player entity.MovingEntity, all []obstacle.Obstacle) Lane {
	next := l
	next.Obstacles = make([]obstacle.Obstacle, 0, len(l.Obstacles))
	for _, o := range l.Obstacles {
		moved := o.Advance(player, all)
		if l.retains(moved) {
			next.Obstacles = append(next.Obstacles, moved)
		}
	}
	return next
}

// retains reports whether an obstacle is still on the street. Exiting
// the trailing edge is the sole removal path for obstacles.
func (l Lane) retains(o obstacle.Obstacle) bool {
	if l.Direction == obstacle.Left {
		return o.Rect.X2() > 0
	}
	return o.Rect.X < l.Length
}

// DetectCollision reports whether the player rectangle hits any
// obstacle in this lane. Decorative obstacles with CollidesWithPlayer
// off are skipped.
func (l Lane) DetectCollision(player geometry.Rectangle) bool {
	for _, o := range l.Obstacles {
		if !o.CollidesWithPlayer {
			continue
		}
		if o.Rect.Intersects(player) {
			return true
		}
	}
	return false
}
