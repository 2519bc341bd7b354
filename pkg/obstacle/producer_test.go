package obstacle

import (
	"testing"
	"time"

	"github.com/golangdaddy/jaywalker/pkg/geometry"
)

func testProducer() Producer {
	return Producer{
		Template:     testVehicle(0, 0, 50, SlowSpeed, Right, AvoidNone),
		MaxFrequency: 2 * time.Second,
		AssignX:      true,
	}
}

func TestProducerThrottle(t *testing.T) {
	p := testProducer()
	player := geometry.Rectangle{X: 0, Y: 0, Width: 25, Height: 25}
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if !p.ReadyForNext(player, start) {
		t.Fatal("fresh producer should be ready")
	}
	_, p = p.Produce(-50, start)

	// Polled again inside the interval: not ready.
	if p.ReadyForNext(player, start.Add(time.Second)) {
		t.Error("producer ready again before MaxFrequency elapsed")
	}

	// After the interval it becomes ready again.
	if !p.ReadyForNext(player, start.Add(2*time.Second)) {
		t.Error("producer not ready after MaxFrequency elapsed")
	}
}

func TestTriggeredProducerRequiresPlayerInZone(t *testing.T) {
	p := testProducer()
	p.Trigger = &geometry.Rectangle{X: 100, Y: 100, Width: 50, Height: 50}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	outside := geometry.Rectangle{X: 0, Y: 0, Width: 25, Height: 25}
	if p.ReadyForNext(outside, now) {
		t.Error("triggered producer ready with player outside the zone")
	}

	inside := geometry.Rectangle{X: 110, Y: 110, Width: 25, Height: 25}
	if !p.ReadyForNext(inside, now) {
		t.Error("triggered producer not ready with player inside the zone")
	}

	// The throttle still applies on top of the trigger.
	_, p = p.Produce(-50, now)
	if p.ReadyForNext(inside, now.Add(time.Second)) {
		t.Error("triggered producer ignored the throttle")
	}
}

func TestProduceAssignsEntryX(t *testing.T) {
	p := testProducer()
	now := time.Now()

	o, _ := p.Produce(-75, now)
	if o.Rect.X != -75 {
		t.Errorf("obstacle x = %g, want -75", o.Rect.X)
	}
}

func TestProduceKeepsTemplateXForParkedVehicles(t *testing.T) {
	p := testProducer()
	p.AssignX = false
	p.Template.Rect.X = 320
	now := time.Now()

	o, _ := p.Produce(-75, now)
	if o.Rect.X != 320 {
		t.Errorf("parked obstacle x = %g, want template x 320", o.Rect.X)
	}
}

func TestProduceStampsUniqueIDs(t *testing.T) {
	p := testProducer()
	now := time.Now()

	a, p := p.Produce(0, now)
	b, _ := p.Produce(0, now.Add(time.Minute))
	if a.ID == b.ID {
		t.Errorf("two productions share ID %d", a.ID)
	}
	if a.ID == 0 || b.ID == 0 {
		t.Error("produced obstacles must get non-zero IDs")
	}
}

func TestProduceClonesTemplate(t *testing.T) {
	p := testProducer()
	o, _ := p.Produce(-50, time.Now())

	if o.Speed != p.Template.Speed || o.Direction != p.Template.Direction {
		t.Errorf("clone diverged from template: %+v", o)
	}
	// Mutating the clone must not touch the template.
	o.Rect.Y = 999
	if p.Template.Rect.Y == 999 {
		t.Error("clone aliases template storage")
	}
}
