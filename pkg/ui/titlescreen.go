package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleScreen is the first screen: game name plus a press-to-start prompt.
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func()
}

// NewTitleScreen creates the title screen with its start callback.
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen.
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	face := text.NewGoXFace(bitmapfont.Face)

	centerX := float64(width) / 2

	// Pulsing title.
	titleText := "JAYWALKER"
	titleScale := 6.0 * (1.0 + 0.08*math.Sin(elapsed*2.0))
	titleWidth := text.Advance(titleText, face) * titleScale
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-titleWidth/2, float64(height)/3)
	titleOp.ColorScale.ScaleWithColor(color.RGBA{255, 210, 60, 255})
	text.Draw(screen, titleText, face, titleOp)

	subtitle := "CROSS THE STREET. MIND THE GHOSTS."
	subScale := 1.5
	subWidth := text.Advance(subtitle, face) * subScale
	subOp := &text.DrawOptions{}
	subOp.GeoM.Scale(subScale, subScale)
	subOp.GeoM.Translate(centerX-subWidth/2, float64(height)/3+70)
	subOp.ColorScale.ScaleWithColor(color.RGBA{180, 180, 200, 255})
	text.Draw(screen, subtitle, face, subOp)

	// Blinking prompt.
	if int(elapsed*2)%2 == 0 {
		prompt := "PRESS ENTER TO START"
		promptScale := 2.0
		promptWidth := text.Advance(prompt, face) * promptScale
		promptOp := &text.DrawOptions{}
		promptOp.GeoM.Scale(promptScale, promptScale)
		promptOp.GeoM.Translate(centerX-promptWidth/2, float64(height)*2/3)
		promptOp.ColorScale.ScaleWithColor(color.RGBA{230, 230, 230, 255})
		text.Draw(screen, prompt, face, promptOp)
	}
}
