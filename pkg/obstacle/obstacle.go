package obstacle

import (
	"math"

	"github.com/golangdaddy/jaywalker/pkg/entity"
	"github.com/golangdaddy/jaywalker/pkg/geometry"
)

// Direction is the travel direction of a lane and its obstacles.
// The numeric value doubles as the sign of the per-tick position update.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Avoidance is the policy an obstacle applies to entities ahead of it.
type Avoidance int

const (
	// AvoidNone ignores everything ahead.
	AvoidNone Avoidance = iota
	// AvoidBrake slows down and eventually stops behind blocking entities.
	AvoidBrake
	// AvoidPass keeps speed; scenarios place passing vehicles in lanes
	// with nothing ahead of them rather than the engine enforcing it.
	AvoidPass
)

const (
	// TicksPerSecond is the fixed simulation rate the braking math
	// assumes when converting px/tick to px/second. Change it here,
	// not at call sites.
	TicksPerSecond = 10

	// SlowSpeed is the nominal cruising speed (px/tick) a braking
	// vehicle accelerates back toward after an obstruction clears.
	SlowSpeed = 5

	// followingSeconds is the time-to-collision below which a braking
	// vehicle starts shedding speed.
	followingSeconds = 3

	// stopBelowSpeed is the speed under which a braking vehicle goes
	// to a full stop instead of creeping into the entity ahead.
	stopBelowSpeed = 3

	// restartSpeed is the speed a stopped vehicle resumes with once
	// the road ahead clears.
	restartSpeed = 1
)

// Obstacle is any non-player entity travelling along a lane.
type Obstacle struct {
	entity.MovingEntity

	// ID uniquely identifies the obstacle so neighbor scans can
	// exclude the obstacle itself from the cross-lane entity list.
	ID int64

	// Speed is in pixels per tick, never negative.
	Speed float64

	Direction Direction
	Avoidance Avoidance

	// EmergencyVehicle marks ambulances and similar vehicles that the
	// scoring display treats specially.
	EmergencyVehicle bool

	// CollidesWithPlayer distinguishes deadly obstacles from
	// decorative ones the player may overlap without failing.
	CollidesWithPlayer bool
}

// Advance recomputes the obstacle's speed against its neighbors and
// returns a copy moved one tick along its direction of travel.
// neighbors is the player plus every live obstacle on the street; the
// obstacle excludes itself by ID.
func (o Obstacle) Advance(player entity.MovingEntity, all []Obstacle) Obstacle {
	next := o
	if o.Avoidance == AvoidBrake {
		next.Speed = o.brakingSpeed(player, all)
	}
	next.Rect = next.Rect.Translated(next.Speed*float64(next.Direction), 0)
	return next
}

// brakingSpeed implements the proportional slow-down/speed-up controller
// for vehicles with the brake policy. It is not a physical model: 10%
// steps per tick, full stop under stopBelowSpeed, restart at
// restartSpeed once the lane ahead is clear.
func (o Obstacle) brakingSpeed(player entity.MovingEntity, all []Obstacle) float64 {
	distance, blocked := o.nearestAhead(player, all)

	speed := o.Speed
	if blocked {
		pxPerSecond := speed * TicksPerSecond
		timeToCollision := distance / pxPerSecond
		if timeToCollision < followingSeconds {
			speed *= 0.9
			if speed < stopBelowSpeed {
				speed = 0
			}
		}
	} else {
		if speed <= 0 {
			speed = restartSpeed
		} else if speed < SlowSpeed {
			speed *= 1.1
		}
	}

	return math.Max(speed, 0)
}

// nearestAhead returns the distance to the closest entity ahead of the
// obstacle in its travel direction whose vertical extent overlaps the
// obstacle's own band (y ± height), and whether any such entity exists.
func (o Obstacle) nearestAhead(player entity.MovingEntity, all []Obstacle) (float64, bool) {
	nearest := math.Inf(1)
	found := false

	consider := func(r geometry.Rectangle) {
		if r.Y <= o.Rect.Y-o.Rect.Height || r.Y >= o.Rect.Y+o.Rect.Height {
			return
		}
		var ahead bool
		switch o.Direction {
		case Right:
			ahead = r.X > o.Rect.X
		case Left:
			ahead = r.X < o.Rect.X
		}
		if !ahead {
			return
		}
		if d := math.Abs(r.X - o.Rect.X); d < nearest {
			nearest = d
			found = true
		}
	}

	consider(player.Rect)
	for _, other := range all {
		if other.ID == o.ID {
			continue
		}
		consider(other.Rect)
	}

	return nearest, found
}
