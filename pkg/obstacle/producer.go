package obstacle

import (
	"sync/atomic"
	"time"

	"github.com/golangdaddy/jaywalker/pkg/geometry"
)

// nextObstacleID hands out unique obstacle IDs across all producers.
var nextObstacleID atomic.Int64

// Producer is a rate-limited obstacle factory bound to a lane. It emits
// at most one clone of its template per ready poll. The last-emission
// timestamp is the only mutable accounting state in the engine; Produce
// keeps it isolated by returning the updated Producer value.
type Producer struct {
	// Template is the prototype every emitted obstacle is cloned from.
	Template Obstacle

	// MaxFrequency is the minimum interval between two emissions.
	MaxFrequency time.Duration

	// AssignX controls whether emitted obstacles get the lane-entry x
	// computed by the caller. When false the template's own x is kept,
	// which is how parked vehicles are pinned to fixed coordinates.
	AssignX bool

	// Trigger, when non-nil, gates readiness on the player standing
	// inside this zone. Used for ghost vehicles that appear the moment
	// the player steps where parked cars block the sightline.
	Trigger *geometry.Rectangle

	lastEmission time.Time
}

// ReadyForNext reports whether the producer may emit this tick: the
// throttle interval has elapsed and, for triggered producers, the
// player's rectangle intersects the trigger zone.
func (p Producer) ReadyForNext(player geometry.Rectangle, now time.Time) bool {
	if now.Sub(p.lastEmission) < p.MaxFrequency {
		return false
	}
	if p.Trigger != nil && !player.Intersects(*p.Trigger) {
		return false
	}
	return true
}

// Produce clones the template into a live obstacle and returns it along
// with the producer carrying the refreshed emission timestamp. entryX is
// the lane-boundary entry coordinate; it is ignored when AssignX is off.
func (p Producer) Produce(entryX float64, now time.Time) (Obstacle, Producer) {
	o := p.Template
	o.ID = nextObstacleID.Add(1)
	if p.AssignX {
		o.Rect = o.Rect.WithX(entryX)
	}
	p.lastEmission = now
	return o, p
}
