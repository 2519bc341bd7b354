package sprites

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/jaywalker/pkg/scenario"
)

// cache holds one image per sprite key; sprites are generated on first
// use and reused for the rest of the session.
var cache = map[string]*ebiten.Image{}

// For returns the image for a sprite key, generating it on first use.
// Unknown keys fall back to the plain car so a bad scenario still draws.
func For(key string) *ebiten.Image {
	if img, ok := cache[key]; ok {
		return img
	}
	var img *ebiten.Image
	switch key {
	case scenario.SpriteTaxi:
		img = drawCar(50, 20, color.RGBA{235, 200, 30, 255}, false)
	case scenario.SpriteAmbulance:
		img = drawAmbulance()
	case scenario.SpriteBicycle:
		img = drawBicycle()
	case scenario.SpriteGhostCar:
		img = drawCar(50, 20, color.RGBA{200, 200, 220, 140}, true)
	case scenario.SpriteParkedCar:
		img = drawCar(50, 20, color.RGBA{70, 90, 160, 255}, false)
	case "player":
		img = drawPlayer()
	default:
		img = drawCar(50, 20, color.RGBA{200, 40, 40, 255}, false)
	}
	cache[key] = img
	return img
}

// drawCar paints a side-view car facing right: body, cabin, two wheels,
// headlight. translucent renders the ghost variant with see-through
// glass and body.
func drawCar(w, h int, body color.RGBA, translucent bool) *ebiten.Image {
	img := ebiten.NewImage(w, h)

	outline := color.RGBA{20, 20, 20, 255}
	glass := color.RGBA{150, 200, 230, 255}
	wheel := color.RGBA{30, 30, 30, 255}
	if translucent {
		outline.A = 140
		glass = color.RGBA{180, 220, 240, 100}
		wheel.A = 140
	}

	// Body slab.
	for y := 6; y < h-3; y++ {
		for x := 1; x < w-1; x++ {
			img.Set(x, y, body)
		}
	}
	// Cabin with windows.
	for y := 1; y < 7; y++ {
		for x := w / 4; x < w*3/4; x++ {
			img.Set(x, y, body)
		}
	}
	for y := 2; y < 6; y++ {
		for x := w/4 + 2; x < w*3/4-2; x++ {
			img.Set(x, y, glass)
		}
	}
	// Wheels.
	for y := h - 5; y < h; y++ {
		for x := w / 6; x < w/6+5; x++ {
			img.Set(x, y, wheel)
		}
		for x := w * 4 / 6; x < w*4/6+5; x++ {
			img.Set(x, y, wheel)
		}
	}
	// Headlight on the nose.
	for y := 7; y < 10; y++ {
		img.Set(w-2, y, color.RGBA{255, 250, 160, 255})
		img.Set(w-3, y, color.RGBA{255, 250, 160, 255})
	}
	// Top and bottom outline of the slab.
	for x := 1; x < w-1; x++ {
		img.Set(x, 6, outline)
		img.Set(x, h-4, outline)
	}

	return img
}

func drawAmbulance() *ebiten.Image {
	img := drawCar(55, 22, color.RGBA{245, 245, 245, 255}, false)

	// Red cross on the box.
	cross := color.RGBA{210, 30, 30, 255}
	for y := 9; y < 16; y++ {
		img.Set(26, y, cross)
		img.Set(27, y, cross)
	}
	for x := 23; x < 31; x++ {
		img.Set(x, 11, cross)
		img.Set(x, 12, cross)
	}
	// Roof beacon.
	for x := 24; x < 30; x++ {
		img.Set(x, 0, color.RGBA{60, 120, 255, 255})
	}
	return img
}

func drawBicycle() *ebiten.Image {
	img := ebiten.NewImage(30, 14)
	frame := color.RGBA{40, 40, 40, 255}
	rider := color.RGBA{60, 140, 60, 255}

	// Two wheels as filled squares; close enough at this size.
	for y := 8; y < 14; y++ {
		for x := 2; x < 8; x++ {
			img.Set(x, y, frame)
		}
		for x := 22; x < 28; x++ {
			img.Set(x, y, frame)
		}
	}
	// Frame bar and rider.
	for x := 6; x < 24; x++ {
		img.Set(x, 9, frame)
	}
	for y := 1; y < 9; y++ {
		for x := 13; x < 17; x++ {
			img.Set(x, y, rider)
		}
	}
	return img
}

func drawPlayer() *ebiten.Image {
	img := ebiten.NewImage(25, 25)
	coat := color.RGBA{40, 90, 200, 255}
	skin := color.RGBA{240, 200, 160, 255}

	// Head.
	for y := 1; y < 9; y++ {
		for x := 8; x < 17; x++ {
			img.Set(x, y, skin)
		}
	}
	// Coat.
	for y := 9; y < 20; y++ {
		for x := 6; x < 19; x++ {
			img.Set(x, y, coat)
		}
	}
	// Legs.
	dark := color.RGBA{30, 30, 50, 255}
	for y := 20; y < 25; y++ {
		for x := 8; x < 11; x++ {
			img.Set(x, y, dark)
		}
		for x := 14; x < 17; x++ {
			img.Set(x, y, dark)
		}
	}
	return img
}
