package street

import (
	"testing"
	"time"

	"github.com/golangdaddy/jaywalker/pkg/entity"
	"github.com/golangdaddy/jaywalker/pkg/geometry"
	"github.com/golangdaddy/jaywalker/pkg/obstacle"
)

const testStreetLength = 600

func laneVehicle(id int64, x float64, dir obstacle.Direction) obstacle.Obstacle {
	return obstacle.Obstacle{
		MovingEntity: entity.MovingEntity{
			Rect: geometry.Rectangle{X: x, Y: 50, Width: 50, Height: 20},
		},
		ID:                 id,
		Speed:              5,
		Direction:          dir,
		CollidesWithPlayer: true,
	}
}

func farPlayer() entity.MovingEntity {
	return entity.MovingEntity{Rect: geometry.Rectangle{X: -1000, Y: -1000, Width: 25, Height: 25}}
}

func TestAdvanceDropsObstaclePastRightEdge(t *testing.T) {
	l := Lane{
		Direction: obstacle.Right,
		Length:    testStreetLength,
		Obstacles: []obstacle.Obstacle{laneVehicle(1, testStreetLength, obstacle.Right)},
	}

	l = l.Advance(farPlayer(), l.Obstacles)
	if len(l.Obstacles) != 0 {
		t.Errorf("obstacle at x >= street length survived advancement: %+v", l.Obstacles)
	}
}

func TestAdvanceDropsObstaclePastLeftEdge(t *testing.T) {
	l := Lane{
		Direction: obstacle.Left,
		Length:    testStreetLength,
		// x + width == 0: fully off the left edge after one step.
		Obstacles: []obstacle.Obstacle{laneVehicle(1, -50, obstacle.Left)},
	}

	l = l.Advance(farPlayer(), l.Obstacles)
	if len(l.Obstacles) != 0 {
		t.Errorf("obstacle past the left edge survived advancement: %+v", l.Obstacles)
	}
}

func TestAdvanceRetainsObstaclesStillOnStreet(t *testing.T) {
	l := Lane{
		Direction: obstacle.Right,
		Length:    testStreetLength,
		Obstacles: []obstacle.Obstacle{
			laneVehicle(1, 100, obstacle.Right),
			laneVehicle(2, 300, obstacle.Right),
		},
	}

	l = l.Advance(farPlayer(), l.Obstacles)
	if len(l.Obstacles) != 2 {
		t.Fatalf("got %d obstacles, want 2", len(l.Obstacles))
	}
	if l.Obstacles[0].Rect.X != 105 || l.Obstacles[1].Rect.X != 305 {
		t.Errorf("positions = %g, %g; want 105, 305", l.Obstacles[0].Rect.X, l.Obstacles[1].Rect.X)
	}
}

func TestSpawnReadyEmitsAtEntryEdge(t *testing.T) {
	now := time.Now()
	player := geometry.Rectangle{X: 0, Y: 0, Width: 25, Height: 25}
	template := laneVehicle(0, 0, obstacle.Right)

	rightbound := Lane{
		Direction: obstacle.Right,
		Length:    testStreetLength,
		Producers: []obstacle.Producer{{Template: template, MaxFrequency: time.Second, AssignX: true}},
	}
	rightbound = rightbound.SpawnReady(player, now)
	if len(rightbound.Obstacles) != 1 {
		t.Fatalf("rightbound lane spawned %d obstacles, want 1", len(rightbound.Obstacles))
	}
	if got := rightbound.Obstacles[0].Rect; got.X2() > 0 {
		t.Errorf("rightbound entry not off-canvas left: x = %g", got.X)
	}

	leftTemplate := laneVehicle(0, 0, obstacle.Left)
	leftbound := Lane{
		Direction: obstacle.Left,
		Length:    testStreetLength,
		Producers: []obstacle.Producer{{Template: leftTemplate, MaxFrequency: time.Second, AssignX: true}},
	}
	leftbound = leftbound.SpawnReady(player, now)
	if len(leftbound.Obstacles) != 1 {
		t.Fatalf("leftbound lane spawned %d obstacles, want 1", len(leftbound.Obstacles))
	}
	if got := leftbound.Obstacles[0].Rect; got.X < testStreetLength {
		t.Errorf("leftbound entry not off-canvas right: x = %g", got.X)
	}
}

func TestSpawnReadyHonorsLaneCap(t *testing.T) {
	now := time.Now()
	player := geometry.Rectangle{X: 0, Y: 0, Width: 25, Height: 25}

	full := Lane{
		Direction: obstacle.Right,
		Length:    testStreetLength,
		Producers: []obstacle.Producer{{
			Template:     laneVehicle(0, 0, obstacle.Right),
			MaxFrequency: 0,
			AssignX:      true,
		}},
	}
	for i := int64(1); i <= maxObstaclesPerLane; i++ {
		full.Obstacles = append(full.Obstacles, laneVehicle(i, float64(i)*100, obstacle.Right))
	}

	got := full.SpawnReady(player, now)
	if len(got.Obstacles) != maxObstaclesPerLane {
		t.Errorf("full lane spawned anyway: %d obstacles", len(got.Obstacles))
	}
}

func TestSpawnReadyLeavesReceiverUntouched(t *testing.T) {
	now := time.Now()
	player := geometry.Rectangle{X: 0, Y: 0, Width: 25, Height: 25}
	l := Lane{
		Direction: obstacle.Right,
		Length:    testStreetLength,
		Producers: []obstacle.Producer{{
			Template:     laneVehicle(0, 0, obstacle.Right),
			MaxFrequency: time.Second,
			AssignX:      true,
		}},
	}

	next := l.SpawnReady(player, now)
	if len(l.Obstacles) != 0 {
		t.Errorf("receiver gained obstacles: %d", len(l.Obstacles))
	}
	if len(next.Obstacles) != 1 {
		t.Errorf("snapshot missing spawn: %d", len(next.Obstacles))
	}
	// The receiver's producer must still be armed.
	if !l.Producers[0].ReadyForNext(player, now) {
		t.Error("receiver's producer throttle was consumed")
	}
}

func TestDetectCollisionSkipsDecorativeObstacles(t *testing.T) {
	deadly := laneVehicle(1, 200, obstacle.Right)
	decorative := laneVehicle(2, 400, obstacle.Right)
	decorative.CollidesWithPlayer = false
	l := Lane{
		Direction: obstacle.Right,
		Length:    testStreetLength,
		Obstacles: []obstacle.Obstacle{deadly, decorative},
	}

	if !l.DetectCollision(geometry.Rectangle{X: 210, Y: 55, Width: 10, Height: 10}) {
		t.Error("collision with deadly obstacle missed")
	}
	if l.DetectCollision(geometry.Rectangle{X: 410, Y: 55, Width: 10, Height: 10}) {
		t.Error("decorative obstacle registered a collision")
	}
}
