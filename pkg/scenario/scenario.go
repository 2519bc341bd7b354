package scenario

import (
	"fmt"
	"time"

	"github.com/golangdaddy/jaywalker/pkg/geometry"
	"github.com/golangdaddy/jaywalker/pkg/obstacle"
	"github.com/golangdaddy/jaywalker/pkg/street"
)

// Named speeds in pixels per simulation tick.
const (
	SpeedSlow   = obstacle.SlowSpeed
	SpeedMedium = 8.0
	SpeedFast   = 12.0
)

// VehicleSpec describes the template vehicle a producer emits.
type VehicleSpec struct {
	Sprite    string
	Width     float64
	Height    float64
	Speed     float64
	Avoidance obstacle.Avoidance

	// Emergency marks ambulances; Decorative vehicles overlap the
	// player without ending the attempt.
	Emergency  bool
	Decorative bool
}

// ProducerSpec describes one obstacle producer in a lane.
type ProducerSpec struct {
	Vehicle      VehicleSpec
	MaxFrequency time.Duration

	// Parked pins the vehicle to FixedX instead of the lane entry
	// edge. Parked producers emit once and then throttle forever.
	Parked bool
	FixedX float64

	// Trigger gates the producer on the player standing inside the
	// zone; used for ghost vehicles behind sightline blockers.
	Trigger *geometry.Rectangle
}

// LaneSpec describes one lane of a scenario.
type LaneSpec struct {
	Direction obstacle.Direction
	Width     float64
	Producers []ProducerSpec
}

// Scenario is a named, self-contained level configuration: the street
// layout plus where the player starts and finishes.
type Scenario struct {
	Name        string
	Description string

	StreetTopY   float64
	StreetLength float64
	Lanes        []LaneSpec

	// PlayerSize and PlayerStep configure the sprite; the player
	// starts centered below the last lane and succeeds on reaching
	// FinishY (the top of the street).
	PlayerSize float64
	PlayerStep float64
}

// FinishY is the y-threshold that completes a crossing.
func (sc Scenario) FinishY() float64 {
	return sc.StreetTopY
}

// Build assembles the runtime street from the scenario. Lane vertical
// placement is computed here so producer templates sit on their lane
// centers before street validation runs.
func (sc Scenario) Build() (street.Street, error) {
	lanes := make([]street.Lane, len(sc.Lanes))
	y := sc.StreetTopY
	for i, ls := range sc.Lanes {
		centerY := y + ls.Width/2
		y += ls.Width

		producers := make([]obstacle.Producer, len(ls.Producers))
		for j, ps := range ls.Producers {
			producers[j] = ps.producer(ls.Direction, centerY)
		}
		lanes[i] = street.Lane{
			Direction: ls.Direction,
			Width:     ls.Width,
			Producers: producers,
		}
	}

	s, err := street.New(sc.StreetTopY, sc.StreetLength, lanes)
	if err != nil {
		return street.Street{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return s, nil
}

// producer turns a spec into a runtime producer with its template
// vehicle centered vertically on the lane.
func (ps ProducerSpec) producer(dir obstacle.Direction, laneCenterY float64) obstacle.Producer {
	v := ps.Vehicle
	template := obstacle.Obstacle{
		Speed:              v.Speed,
		Direction:          dir,
		Avoidance:          v.Avoidance,
		EmergencyVehicle:   v.Emergency,
		CollidesWithPlayer: !v.Decorative,
	}
	template.Sprite = v.Sprite
	template.Mirrored = dir == obstacle.Left
	template.Rect = geometry.Rectangle{
		X:      ps.FixedX,
		Y:      laneCenterY - v.Height/2,
		Width:  v.Width,
		Height: v.Height,
	}

	maxFrequency := ps.MaxFrequency
	if ps.Parked {
		// One emission, then effectively silent for the session.
		maxFrequency = 24 * time.Hour
	}
	return obstacle.Producer{
		Template:     template,
		MaxFrequency: maxFrequency,
		AssignX:      !ps.Parked,
		Trigger:      ps.Trigger,
	}
}
