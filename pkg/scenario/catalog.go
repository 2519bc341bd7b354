package scenario

import (
	"time"

	"github.com/golangdaddy/jaywalker/pkg/geometry"
	"github.com/golangdaddy/jaywalker/pkg/obstacle"
)

// Default playfield numbers shared by the built-in scenarios.
const (
	streetLength = 600
	laneWidth    = 50
	playerSize   = 25
	playerStep   = 25
)

// Sprite keys understood by the renderer.
const (
	SpriteCar       = "car"
	SpriteTaxi      = "taxi"
	SpriteAmbulance = "ambulance"
	SpriteBicycle   = "bicycle"
	SpriteGhostCar  = "ghost-car"
	SpriteParkedCar = "parked-car"
)

func car(speed float64, policy obstacle.Avoidance) VehicleSpec {
	return VehicleSpec{Sprite: SpriteCar, Width: 50, Height: 20, Speed: speed, Avoidance: policy}
}

func taxi(speed float64) VehicleSpec {
	return VehicleSpec{Sprite: SpriteTaxi, Width: 50, Height: 20, Speed: speed, Avoidance: obstacle.AvoidPass}
}

func bicycle() VehicleSpec {
	return VehicleSpec{Sprite: SpriteBicycle, Width: 30, Height: 14, Speed: SpeedSlow, Avoidance: obstacle.AvoidBrake}
}

func ambulance() VehicleSpec {
	return VehicleSpec{
		Sprite: SpriteAmbulance, Width: 55, Height: 22,
		Speed: SpeedFast, Avoidance: obstacle.AvoidNone,
		Emergency: true, Decorative: true,
	}
}

func ghostCar() VehicleSpec {
	return VehicleSpec{Sprite: SpriteGhostCar, Width: 50, Height: 20, Speed: SpeedFast, Avoidance: obstacle.AvoidNone}
}

func parkedCar(x float64) ProducerSpec {
	return ProducerSpec{
		Vehicle: VehicleSpec{Sprite: SpriteParkedCar, Width: 50, Height: 20, Speed: 0, Avoidance: obstacle.AvoidNone},
		Parked:  true,
		FixedX:  x,
	}
}

// custom holds scenarios registered at startup (e.g. loaded from
// files named on the command line).
var custom []Scenario

// Register adds a scenario to the front of the menu.
func Register(sc Scenario) {
	custom = append(custom, sc)
}

// Catalog returns registered scenarios followed by the built-ins.
func Catalog() []Scenario {
	out := append([]Scenario(nil), custom...)
	return append(out, quietAvenue(), rushHour(), ghostAlley(), ambulanceRun())
}

// ByName looks a scenario up by its menu name.
func ByName(name string) (Scenario, bool) {
	for _, sc := range Catalog() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

func quietAvenue() Scenario {
	return Scenario{
		Name:         "Quiet Avenue",
		Description:  "Three sleepy lanes. Traffic brakes for you.",
		StreetTopY:   100,
		StreetLength: streetLength,
		PlayerSize:   playerSize,
		PlayerStep:   playerStep,
		Lanes: []LaneSpec{
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: car(SpeedSlow, obstacle.AvoidBrake), MaxFrequency: 5 * time.Second},
			}},
			{Direction: obstacle.Left, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: bicycle(), MaxFrequency: 7 * time.Second},
			}},
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: car(SpeedSlow, obstacle.AvoidBrake), MaxFrequency: 6 * time.Second},
			}},
		},
	}
}

func rushHour() Scenario {
	return Scenario{
		Name:         "Rush Hour",
		Description:  "Five packed lanes. Taxis do not brake.",
		StreetTopY:   75,
		StreetLength: streetLength,
		PlayerSize:   playerSize,
		PlayerStep:   playerStep,
		Lanes: []LaneSpec{
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: car(SpeedMedium, obstacle.AvoidBrake), MaxFrequency: 3 * time.Second},
			}},
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: taxi(SpeedFast), MaxFrequency: 4 * time.Second},
			}},
			{Direction: obstacle.Left, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: car(SpeedMedium, obstacle.AvoidBrake), MaxFrequency: 3 * time.Second},
				{Vehicle: bicycle(), MaxFrequency: 9 * time.Second},
			}},
			{Direction: obstacle.Left, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: taxi(SpeedFast), MaxFrequency: 5 * time.Second},
			}},
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: car(SpeedSlow, obstacle.AvoidBrake), MaxFrequency: 2 * time.Second},
			}},
		},
	}
}

// ghostAlley recreates the sightline trap: a row of parked cars hides
// the rightbound lane, and stepping into the occluded strip triggers a
// ghost vehicle that was invisible until too late.
func ghostAlley() Scenario {
	// The occluded strip sits directly above the parked row.
	trigger := &geometry.Rectangle{X: 150, Y: 150, Width: 200, Height: 50}

	return Scenario{
		Name:         "Ghost Alley",
		Description:  "Parked cars block your view. Listen before you step.",
		StreetTopY:   100,
		StreetLength: streetLength,
		PlayerSize:   playerSize,
		PlayerStep:   playerStep,
		Lanes: []LaneSpec{
			{Direction: obstacle.Left, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: car(SpeedMedium, obstacle.AvoidBrake), MaxFrequency: 4 * time.Second},
			}},
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: ghostCar(), MaxFrequency: 3 * time.Second, Trigger: trigger},
			}},
			// Gaps between parked cars stay wider than the player
			// sprite so the lane can be threaded on foot.
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				parkedCar(120), parkedCar(205), parkedCar(290),
			}},
		},
	}
}

func ambulanceRun() Scenario {
	return Scenario{
		Name:         "Ambulance Run",
		Description:  "Emergency vehicles scream past. They will not hit you.",
		StreetTopY:   100,
		StreetLength: streetLength,
		PlayerSize:   playerSize,
		PlayerStep:   playerStep,
		Lanes: []LaneSpec{
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: ambulance(), MaxFrequency: 6 * time.Second},
				{Vehicle: car(SpeedMedium, obstacle.AvoidBrake), MaxFrequency: 4 * time.Second},
			}},
			{Direction: obstacle.Left, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: car(SpeedMedium, obstacle.AvoidBrake), MaxFrequency: 3 * time.Second},
			}},
			{Direction: obstacle.Right, Width: laneWidth, Producers: []ProducerSpec{
				{Vehicle: ambulance(), MaxFrequency: 8 * time.Second},
			}},
		},
	}
}
