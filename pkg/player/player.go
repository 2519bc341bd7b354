package player

import (
	"github.com/golangdaddy/jaywalker/pkg/entity"
	"github.com/golangdaddy/jaywalker/pkg/geometry"
)

// Player is the sprite the user steers across the street. Movement is
// discrete: one key press moves exactly PixelsPerMove in one of the
// four directions, clamped to the playfield.
type Player struct {
	entity.MovingEntity

	// PixelsPerMove is the step size of a single move.
	PixelsPerMove float64

	// Playfield bounds the player may not leave.
	Bounds geometry.Rectangle

	// StartX, StartY is where each attempt begins (and where the
	// player returns after a collision).
	StartX float64
	StartY float64

	Stats Stats
}

// Stats tracks the player's attempt history across a session.
type Stats struct {
	Crossings     int // Successful crossings
	Collisions    int // Failed attempts
	CurrentStreak int // Successes since the last collision
	BestStreak    int // Longest run of successes
}

// New places a player of the given size at the start position.
func New(x, y, width, height, pixelsPerMove float64, bounds geometry.Rectangle) *Player {
	return &Player{
		MovingEntity: entity.MovingEntity{
			Rect:   geometry.Rectangle{X: x, Y: y, Width: width, Height: height},
			Sprite: "player",
		},
		PixelsPerMove: pixelsPerMove,
		Bounds:        bounds,
		StartX:        x,
		StartY:        y,
	}
}

// MoveUp steps the player toward the far side of the street.
func (p *Player) MoveUp() { p.moveBy(0, -p.PixelsPerMove) }

// MoveDown steps the player back toward the start side.
func (p *Player) MoveDown() { p.moveBy(0, p.PixelsPerMove) }

// MoveLeft steps the player left.
func (p *Player) MoveLeft() { p.moveBy(-p.PixelsPerMove, 0) }

// MoveRight steps the player right.
func (p *Player) MoveRight() { p.moveBy(p.PixelsPerMove, 0) }

func (p *Player) moveBy(dx, dy float64) {
	moved := p.Rect.Translated(dx, dy)
	if moved.X < p.Bounds.X || moved.X2() > p.Bounds.X2() {
		return
	}
	if moved.Y < p.Bounds.Y || moved.Y2() > p.Bounds.Y2() {
		return
	}
	p.Rect = moved
}

// Reset returns the player to the start position for a new attempt.
func (p *Player) Reset() {
	p.Rect = p.Rect.WithX(p.StartX)
	p.Rect.Y = p.StartY
}

// RecordCrossing books a successful crossing.
func (p *Player) RecordCrossing() {
	p.Stats.Crossings++
	p.Stats.CurrentStreak++
	if p.Stats.CurrentStreak > p.Stats.BestStreak {
		p.Stats.BestStreak = p.Stats.CurrentStreak
	}
}

// RecordCollision books a failed attempt and breaks the streak.
func (p *Player) RecordCollision() {
	p.Stats.Collisions++
	p.Stats.CurrentStreak = 0
}
