package entity

import "github.com/golangdaddy/jaywalker/pkg/geometry"

// MovingEntity is the base shape shared by the player sprite and all
// obstacles: an axis-aligned rectangle plus presentation metadata.
// The metadata is only read by the renderer, never by geometry.
type MovingEntity struct {
	Rect geometry.Rectangle

	// Sprite names the image the renderer should use for this entity.
	Sprite string

	// Mirrored requests horizontally flipped rendering (vehicles facing
	// left reuse the right-facing sprite).
	Mirrored bool
}

// Intersects reports whether this entity's rectangle overlaps another's.
func (e MovingEntity) Intersects(other MovingEntity) bool {
	return e.Rect.Intersects(other.Rect)
}
