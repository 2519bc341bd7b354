package street

import (
	"testing"
	"time"

	"github.com/golangdaddy/jaywalker/pkg/geometry"
	"github.com/golangdaddy/jaywalker/pkg/obstacle"
)

func TestNewRejectsMalformedConfiguration(t *testing.T) {
	valid := Lane{Direction: obstacle.Right, Width: 50}

	if _, err := New(0, 600, nil); err == nil {
		t.Error("empty lane list accepted")
	}
	if _, err := New(0, 0, []Lane{valid}); err == nil {
		t.Error("zero street length accepted")
	}
	if _, err := New(0, 600, []Lane{{Direction: obstacle.Right, Width: -10}}); err == nil {
		t.Error("negative lane width accepted")
	}
	if _, err := New(0, 600, []Lane{{Direction: 0, Width: 50}}); err == nil {
		t.Error("missing lane direction accepted")
	}
	if _, err := New(0, 600, []Lane{valid}); err != nil {
		t.Errorf("valid configuration rejected: %v", err)
	}
}

func TestNewStacksLaneCentersContiguously(t *testing.T) {
	s, err := New(100, 600, []Lane{
		{Direction: obstacle.Right, Width: 40},
		{Direction: obstacle.Left, Width: 60},
		{Direction: obstacle.Right, Width: 40},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{120, 170, 220}
	for i, l := range s.Lanes {
		if l.CenterY != want[i] {
			t.Errorf("lane %d centerY = %g, want %g", i, l.CenterY, want[i])
		}
		if l.Length != 600 {
			t.Errorf("lane %d length = %g, want 600", i, l.Length)
		}
	}
	// Centers must be strictly increasing with no gaps between strips.
	if s.BottomY() != 240 {
		t.Errorf("BottomY = %g, want 240", s.BottomY())
	}
}

// TestDetectCollisionScenario pins the exact collision outcomes for a
// single rightbound lane of length 600 holding one 50x50 vehicle at
// (200,100), probed with a point-sized player.
func TestDetectCollisionScenario(t *testing.T) {
	s, err := New(0, 600, []Lane{{Direction: obstacle.Right, Width: 200}})
	if err != nil {
		t.Fatal(err)
	}
	v := laneVehicle(1, 200, obstacle.Right)
	v.Rect = geometry.Rectangle{X: 200, Y: 100, Width: 50, Height: 50}
	s.Lanes[0].Obstacles = []obstacle.Obstacle{v}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 225, 125, true},
		{"straddling top edge", 225, 100, true},
		{"straddling bottom edge", 225, 150, true},
		{"left of vehicle", 150, 125, false},
		{"right of vehicle", 300, 125, false},
		{"above vehicle", 225, 50, false},
		{"below vehicle", 225, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := geometry.Rectangle{X: tt.x, Y: tt.y}
			if got := s.DetectCollision(probe); got != tt.want {
				t.Errorf("DetectCollision(%g,%g) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGenerateObstaclesServicesOneLanePerCall(t *testing.T) {
	producer := obstacle.Producer{
		Template:     laneVehicle(0, 0, obstacle.Right),
		MaxFrequency: 0,
		AssignX:      true,
	}
	lanes := make([]Lane, 4)
	for i := range lanes {
		lanes[i] = Lane{
			Direction: obstacle.Right,
			Width:     50,
			Producers: []obstacle.Producer{producer},
		}
	}
	s, err := New(0, 600, lanes)
	if err != nil {
		t.Fatal(err)
	}
	s = s.Seed(1)

	s = s.GenerateObstacles(farPlayer(), time.Now())
	if got := len(s.AllObstacles()); got != 1 {
		t.Errorf("one generation call produced %d obstacles across lanes, want 1", got)
	}
}

func TestGenerateObstaclesEventuallyServicesEveryLane(t *testing.T) {
	producer := obstacle.Producer{
		Template:     laneVehicle(0, 0, obstacle.Right),
		MaxFrequency: 0,
		AssignX:      true,
	}
	lanes := make([]Lane, 3)
	for i := range lanes {
		lanes[i] = Lane{
			Direction: obstacle.Right,
			Width:     50,
			Producers: []obstacle.Producer{producer},
		}
	}
	s, err := New(0, 600, lanes)
	if err != nil {
		t.Fatal(err)
	}
	s = s.Seed(42)

	now := time.Now()
	for i := 0; i < 200; i++ {
		s = s.GenerateObstacles(farPlayer(), now)
	}
	for i, l := range s.Lanes {
		if len(l.Obstacles) == 0 {
			t.Errorf("lane %d never serviced in 200 generation calls", i)
		}
	}
}

func TestUpdateObstaclesAdvancesAllLanes(t *testing.T) {
	s, err := New(0, 600, []Lane{
		{Direction: obstacle.Right, Width: 50},
		{Direction: obstacle.Left, Width: 50},
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Lanes[0].Obstacles = []obstacle.Obstacle{laneVehicle(1, 100, obstacle.Right)}
	s.Lanes[1].Obstacles = []obstacle.Obstacle{laneVehicle(2, 400, obstacle.Left)}

	s = s.UpdateObstacles(farPlayer(), s.AllObstacles())
	if got := s.Lanes[0].Obstacles[0].Rect.X; got != 105 {
		t.Errorf("rightbound obstacle x = %g, want 105", got)
	}
	if got := s.Lanes[1].Obstacles[0].Rect.X; got != 395 {
		t.Errorf("leftbound obstacle x = %g, want 395", got)
	}
}

func TestAllObstaclesFlattensInLaneOrder(t *testing.T) {
	s, err := New(0, 600, []Lane{
		{Direction: obstacle.Right, Width: 50},
		{Direction: obstacle.Left, Width: 50},
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Lanes[0].Obstacles = []obstacle.Obstacle{laneVehicle(1, 100, obstacle.Right)}
	s.Lanes[1].Obstacles = []obstacle.Obstacle{laneVehicle(2, 200, obstacle.Left), laneVehicle(3, 300, obstacle.Left)}

	all := s.AllObstacles()
	if len(all) != 3 {
		t.Fatalf("got %d obstacles, want 3", len(all))
	}
	if all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 3 {
		t.Errorf("flatten order = %d,%d,%d; want 1,2,3", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestGenerateObstaclesLeavesReceiverUntouched(t *testing.T) {
	s, err := New(0, 600, []Lane{{
		Direction: obstacle.Right,
		Width:     50,
		Producers: []obstacle.Producer{{
			Template:     laneVehicle(0, 0, obstacle.Right),
			MaxFrequency: time.Second,
			AssignX:      true,
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}

	next := s.GenerateObstacles(farPlayer(), time.Now())
	if len(s.AllObstacles()) != 0 {
		t.Error("receiver street gained obstacles")
	}
	if len(next.AllObstacles()) != 1 {
		t.Error("snapshot missing spawned obstacle")
	}
}
