package street

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/golangdaddy/jaywalker/pkg/entity"
	"github.com/golangdaddy/jaywalker/pkg/geometry"
	"github.com/golangdaddy/jaywalker/pkg/obstacle"
)

// Street is the full crossing: an ordered stack of lanes, top to
// bottom. All operations return new snapshots; the one shared piece of
// state across snapshots is the lane-choice RNG.
type Street struct {
	// TopY is the vertical position of the first lane's upper edge.
	TopY float64

	// Length is the horizontal extent every lane spans.
	Length float64

	Lanes []Lane

	rng *rand.Rand
}

// New validates the scenario-supplied lane stack and assembles a
// street. Lane vertical centers are derived from cumulative widths, so
// the stack is contiguous with no gaps or overlaps. Malformed
// configuration is rejected here, not tolerated downstream.
func New(topY, length float64, lanes []Lane) (Street, error) {
	if len(lanes) == 0 {
		return Street{}, fmt.Errorf("street needs at least one lane")
	}
	if length <= 0 {
		return Street{}, fmt.Errorf("street length must be positive, got %g", length)
	}

	stacked := make([]Lane, len(lanes))
	y := topY
	for i, l := range lanes {
		if l.Width <= 0 {
			return Street{}, fmt.Errorf("lane %d: width must be positive, got %g", i, l.Width)
		}
		if l.Direction != obstacle.Left && l.Direction != obstacle.Right {
			return Street{}, fmt.Errorf("lane %d: invalid direction %d", i, l.Direction)
		}
		l.Length = length
		l.CenterY = y + l.Width/2
		y += l.Width
		stacked[i] = l
	}

	return Street{
		TopY:   topY,
		Length: length,
		Lanes:  stacked,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Seed re-seeds the lane-choice RNG. Deterministic runs only; the
// zero-value street from New is already seeded.
func (s Street) Seed(seed int64) Street {
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// BottomY returns the lower edge of the last lane.
func (s Street) BottomY() float64 {
	if len(s.Lanes) == 0 {
		return s.TopY
	}
	last := s.Lanes[len(s.Lanes)-1]
	return last.CenterY + last.Width/2
}

// GenerateObstacles services exactly one randomly chosen lane's
// producers this tick. Spawn cost stays bounded no matter how many
// lanes the scenario stacks up; unchosen lanes pass through untouched.
func (s Street) GenerateObstacles(player entity.MovingEntity, now time.Time) Street {
	next := s
	next.Lanes = append([]Lane(nil), s.Lanes...)
	idx := s.rng.Intn(len(next.Lanes))
	next.Lanes[idx] = next.Lanes[idx].SpawnReady(player.Rect, now)
	return next
}

// UpdateObstacles advances every lane against the flattened cross-lane
// obstacle list plus the player, then filters exited obstacles.
func (s Street) UpdateObstacles(player entity.MovingEntity, all []obstacle.Obstacle) Street {
	next := s
	next.Lanes = make([]Lane, len(s.Lanes))
	for i, l := range s.Lanes {
		next.Lanes[i] = l.Advance(player, all)
	}
	return next
}

// DetectCollision reports whether the player rectangle hits any deadly
// obstacle on the street, short-circuiting on the first match.
func (s Street) DetectCollision(player geometry.Rectangle) bool {
	for _, l := range s.Lanes {
		if l.DetectCollision(player) {
			return true
		}
	}
	return false
}

// AllObstacles flattens every lane's live obstacles in lane order.
func (s Street) AllObstacles() []obstacle.Obstacle {
	var all []obstacle.Obstacle
	for _, l := range s.Lanes {
		all = append(all, l.Obstacles...)
	}
	return all
}
