package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/jaywalker/pkg/audio"
	"github.com/golangdaddy/jaywalker/pkg/scenario"
	"github.com/golangdaddy/jaywalker/pkg/ui"
)

// Logical screen size.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Screen is one UI state: title, scenario select, or gameplay.
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and switches between
// screens via completion callbacks.
type Game struct {
	currentScreen Screen
	sound         *audio.System
}

// NewGame wires up the screen flow: title -> scenario select -> play,
// and back to the select screen when a round is quit.
func NewGame() *Game {
	g := &Game{}

	sound, err := audio.Init()
	if err != nil {
		// No audio device is not fatal; the game runs silent.
		log.Printf("audio disabled: %v", err)
	}
	g.sound = sound

	g.currentScreen = ui.NewTitleScreen(func() {
		g.showScenarioSelect()
	})
	return g
}

func (g *Game) showScenarioSelect() {
	g.currentScreen = ui.NewScenarioSelectScreen(func(sc scenario.Scenario) {
		g.startGameplay(sc)
	})
}

func (g *Game) startGameplay(sc scenario.Scenario) {
	gs, err := NewGameplayScreen(sc, g.sound, func() {
		g.showScenarioSelect()
	})
	if err != nil {
		// A scenario that fails validation is a programming error in
		// the catalog; surface it and stay on the menu.
		log.Printf("cannot start scenario %q: %v", sc.Name, err)
		g.showScenarioSelect()
		return
	}
	log.Printf("scenario started: %s", sc.Name)
	g.currentScreen = gs
}

// Update advances the active screen.
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the active screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}
