package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/jaywalker/pkg/audio"
	"github.com/golangdaddy/jaywalker/pkg/entity"
	"github.com/golangdaddy/jaywalker/pkg/geometry"
	"github.com/golangdaddy/jaywalker/pkg/obstacle"
	"github.com/golangdaddy/jaywalker/pkg/player"
	"github.com/golangdaddy/jaywalker/pkg/scenario"
	"github.com/golangdaddy/jaywalker/pkg/sprites"
	"github.com/golangdaddy/jaywalker/pkg/street"
)

// The simulation runs on two independent periods off the 60 TPS ebiten
// loop: obstacle movement at the fixed rate the braking math assumes,
// obstacle generation on its own slower cadence.
const (
	movementPeriodFrames   = 60 / obstacle.TicksPerSecond
	generationPeriodFrames = 30

	// bannerFrames is how long the FAILED/SUCCEEDED banner stays up
	// before the next attempt starts.
	bannerFrames = 90

	// sidewalkDepth is the strip above and below the lanes where the
	// player is safe.
	sidewalkDepth = 50
)

// AttemptState is the per-attempt state machine.
type AttemptState int

const (
	AttemptInProgress AttemptState = iota
	AttemptFailed
	AttemptSucceeded
)

// GameplayScreen runs one scenario: the street simulation, the player,
// and the attempt state machine.
type GameplayScreen struct {
	scenario scenario.Scenario
	street   street.Street
	player   *player.Player
	sound    *audio.System

	state       AttemptState
	stateFrames int
	frame       int

	// ghostSeen tracks which ghost cars already got their spawn sound.
	ghostSeen map[int64]bool

	// background caches the static playfield (grass, sidewalks,
	// lanes); only entities move, so it is painted once.
	background *ebiten.Image

	onExit func()
}

// NewGameplayScreen builds the street from the scenario and places the
// player on the near sidewalk.
func NewGameplayScreen(sc scenario.Scenario, sound *audio.System, onExit func()) (*GameplayScreen, error) {
	s, err := sc.Build()
	if err != nil {
		return nil, err
	}

	bounds := geometry.Rectangle{
		X:      0,
		Y:      sc.StreetTopY - sidewalkDepth,
		Width:  sc.StreetLength,
		Height: (s.BottomY() + sidewalkDepth) - (sc.StreetTopY - sidewalkDepth),
	}
	startX := (sc.StreetLength - sc.PlayerSize) / 2
	startY := s.BottomY() + (sidewalkDepth-sc.PlayerSize)/2

	gs := &GameplayScreen{
		scenario:  sc,
		street:    s,
		player:    player.New(startX, startY, sc.PlayerSize, sc.PlayerSize, sc.PlayerStep, bounds),
		sound:     sound,
		ghostSeen: map[int64]bool{},
		onExit:    onExit,
	}
	gs.background = gs.buildBackground()
	return gs, nil
}

// Update drives one frame: input, the two simulation triggers, then
// the collision and finish-line checks.
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onExit != nil {
			gs.onExit()
		}
		return nil
	}

	gs.frame++

	if gs.state != AttemptInProgress {
		gs.stateFrames--
		if gs.stateFrames <= 0 {
			gs.player.Reset()
			gs.state = AttemptInProgress
		}
		// Traffic keeps flowing behind the banner.
		gs.advanceStreet()
		return nil
	}

	gs.handleMovement()
	gs.advanceStreet()

	if gs.street.DetectCollision(gs.player.Rect) {
		gs.player.RecordCollision()
		gs.sound.Play(audio.SoundCrash)
		gs.state = AttemptFailed
		gs.stateFrames = bannerFrames
		return nil
	}

	if gs.player.Rect.Y < gs.scenario.FinishY() {
		gs.player.RecordCrossing()
		gs.sound.Play(audio.SoundSuccess)
		gs.state = AttemptSucceeded
		gs.stateFrames = bannerFrames
	}

	return nil
}

func (gs *GameplayScreen) handleMovement() {
	moved := false
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		gs.player.MoveUp()
		moved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		gs.player.MoveDown()
		moved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		gs.player.MoveLeft()
		moved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		gs.player.MoveRight()
		moved = true
	}
	if moved {
		gs.sound.Play(audio.SoundStep)
	}
}

// advanceStreet fires the two periodic triggers on their own cadences.
func (gs *GameplayScreen) advanceStreet() {
	playerEntity := gs.player.MovingEntity

	if gs.frame%generationPeriodFrames == 0 {
		gs.street = gs.street.GenerateObstacles(playerEntity, time.Now())
		gs.announceGhosts()
	}
	if gs.frame%movementPeriodFrames == 0 {
		gs.street = gs.street.UpdateObstacles(playerEntity, gs.street.AllObstacles())
	}
}

// announceGhosts plays the spawn whoosh once per new ghost car.
func (gs *GameplayScreen) announceGhosts() {
	for _, o := range gs.street.AllObstacles() {
		if o.Sprite != scenario.SpriteGhostCar || gs.ghostSeen[o.ID] {
			continue
		}
		gs.ghostSeen[o.ID] = true
		gs.sound.Play(audio.SoundGhostSpawn)
	}
}

// Draw renders the playfield: cached background, obstacles, player, HUD.
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.DrawImage(gs.background, nil)

	ox := (float64(ScreenWidth) - gs.scenario.StreetLength) / 2
	gs.drawObstacles(screen, ox)
	gs.drawPlayer(screen, ox)
	gs.drawHUD(screen)

	switch gs.state {
	case AttemptFailed:
		gs.drawBanner(screen, "SPLAT!", color.RGBA{255, 80, 80, 255})
	case AttemptSucceeded:
		gs.drawBanner(screen, "CROSSED!", color.RGBA{120, 255, 120, 255})
	}
}

// buildBackground paints the static playfield once: speckled grass,
// the two sidewalks, and the asphalt lanes with dashed dividers.
func (gs *GameplayScreen) buildBackground() *ebiten.Image {
	img := ebiten.NewImage(ScreenWidth, ScreenHeight)
	img.Fill(color.RGBA{34, 139, 34, 255})

	// Grass texture variation.
	for x := 0; x < ScreenWidth; x++ {
		for y := 0; y < ScreenHeight; y += 4 {
			if (x+y)%7 == 0 {
				img.Set(x, y, color.RGBA{50, 160, 50, 255})
			}
		}
	}

	ox := int((float64(ScreenWidth) - gs.scenario.StreetLength) / 2)
	w := int(gs.scenario.StreetLength)
	pavement := color.RGBA{160, 160, 150, 255}

	// Far and near sidewalks.
	for _, top := range []int{int(gs.scenario.StreetTopY) - sidewalkDepth, int(gs.street.BottomY())} {
		for y := top; y < top+sidewalkDepth; y++ {
			for x := ox; x < ox+w; x++ {
				img.Set(x, y, pavement)
			}
		}
	}

	asphalt := color.RGBA{60, 60, 60, 255}
	divider := color.RGBA{230, 230, 230, 255}
	for i, l := range gs.street.Lanes {
		top := int(l.CenterY - l.Width/2)
		for y := top; y < top+int(l.Width); y++ {
			for x := ox; x < ox+w; x++ {
				img.Set(x, y, asphalt)
			}
		}
		// Dashed divider along the lower edge of every lane but the last.
		if i < len(gs.street.Lanes)-1 {
			bottom := top + int(l.Width)
			for x := 0; x < w; x += 30 {
				for dx := 0; dx < 20 && x+dx < w; dx++ {
					img.Set(ox+x+dx, bottom-1, divider)
					img.Set(ox+x+dx, bottom-2, divider)
				}
			}
		}
	}

	return img
}

func (gs *GameplayScreen) drawObstacles(screen *ebiten.Image, ox float64) {
	for _, o := range gs.street.AllObstacles() {
		gs.drawEntity(screen, ox, o.MovingEntity)
	}
}

func (gs *GameplayScreen) drawPlayer(screen *ebiten.Image, ox float64) {
	gs.drawEntity(screen, ox, gs.player.MovingEntity)
}

// drawEntity scales the entity's sprite to its rectangle, flipping
// horizontally for mirrored entities.
func (gs *GameplayScreen) drawEntity(screen *ebiten.Image, ox float64, e entity.MovingEntity) {
	img := sprites.For(e.Sprite)
	sw := float64(img.Bounds().Dx())
	sh := float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	if e.Mirrored {
		op.GeoM.Scale(-e.Rect.Width/sw, e.Rect.Height/sh)
		op.GeoM.Translate(e.Rect.Width, 0)
	} else {
		op.GeoM.Scale(e.Rect.Width/sw, e.Rect.Height/sh)
	}
	op.GeoM.Translate(ox+e.Rect.X, e.Rect.Y)
	screen.DrawImage(img, op)
}

func (gs *GameplayScreen) drawHUD(screen *ebiten.Image) {
	face := text.NewGoXFace(bitmapfont.Face)
	stats := gs.player.Stats
	hud := fmt.Sprintf("%s   CROSSED %d   HIT %d   STREAK %d",
		gs.scenario.Name, stats.Crossings, stats.Collisions, stats.CurrentStreak)

	op := &text.DrawOptions{}
	op.GeoM.Scale(1.5, 1.5)
	op.GeoM.Translate(16, 8)
	op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, 255})
	text.Draw(screen, hud, face, op)
}

func (gs *GameplayScreen) drawBanner(screen *ebiten.Image, message string, c color.RGBA) {
	face := text.NewGoXFace(bitmapfont.Face)
	scale := 5.0
	width := text.Advance(message, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(ScreenWidth)-width)/2, float64(ScreenHeight)/2-30)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, message, face, op)
}
