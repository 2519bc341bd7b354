package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/jaywalker/pkg/scenario"
)

// ScenarioSelectScreen lets the player pick a level from the catalog
// with the arrow keys. This replaces the query-string level selection
// the browser build used.
type ScenarioSelectScreen struct {
	scenarios  []scenario.Scenario
	selected   int
	onSelected func(scenario.Scenario)
}

// NewScenarioSelectScreen creates the menu over the built-in catalog.
func NewScenarioSelectScreen(onSelected func(scenario.Scenario)) *ScenarioSelectScreen {
	return &ScenarioSelectScreen{
		scenarios:  scenario.Catalog(),
		onSelected: onSelected,
	}
}

// Update handles menu navigation.
func (ss *ScenarioSelectScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ss.selected--
		if ss.selected < 0 {
			ss.selected = len(ss.scenarios) - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ss.selected++
		if ss.selected >= len(ss.scenarios) {
			ss.selected = 0
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ss.onSelected != nil {
			ss.onSelected(ss.scenarios[ss.selected])
		}
	}
	return nil
}

// Draw renders the scenario list with the selection highlighted.
func (ss *ScenarioSelectScreen) Draw(screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2

	header := "CHOOSE YOUR STREET"
	headerScale := 3.0
	headerWidth := text.Advance(header, face) * headerScale
	headerOp := &text.DrawOptions{}
	headerOp.GeoM.Scale(headerScale, headerScale)
	headerOp.GeoM.Translate(centerX-headerWidth/2, 60)
	headerOp.ColorScale.ScaleWithColor(color.RGBA{255, 210, 60, 255})
	text.Draw(screen, header, face, headerOp)

	y := 160.0
	for i, sc := range ss.scenarios {
		name := sc.Name
		nameColor := color.RGBA{180, 180, 200, 255}
		if i == ss.selected {
			name = "> " + name + " <"
			nameColor = color.RGBA{255, 255, 255, 255}
		}

		nameScale := 2.0
		nameWidth := text.Advance(name, face) * nameScale
		nameOp := &text.DrawOptions{}
		nameOp.GeoM.Scale(nameScale, nameScale)
		nameOp.GeoM.Translate(centerX-nameWidth/2, y)
		nameOp.ColorScale.ScaleWithColor(nameColor)
		text.Draw(screen, name, face, nameOp)

		if i == ss.selected {
			descScale := 1.0
			descWidth := text.Advance(sc.Description, face) * descScale
			descOp := &text.DrawOptions{}
			descOp.GeoM.Scale(descScale, descScale)
			descOp.GeoM.Translate(centerX-descWidth/2, y+28)
			descOp.ColorScale.ScaleWithColor(color.RGBA{140, 140, 160, 255})
			text.Draw(screen, sc.Description, face, descOp)
		}

		y += 70
	}
}
