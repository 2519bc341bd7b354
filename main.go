package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/jaywalker/pkg/game"
	"github.com/golangdaddy/jaywalker/pkg/scenario"
)

func main() {
	// Extra scenarios can be supplied as files on the command line;
	// they appear at the top of the street menu.
	for _, path := range os.Args[1:] {
		sc, err := scenario.LoadFile(path)
		if err != nil {
			log.Fatalf("loading scenario %s: %v", path, err)
		}
		scenario.Register(sc)
		log.Printf("registered scenario %q from %s", sc.Name, path)
	}

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Jaywalker")
	if err := ebiten.RunGame(game.NewGame()); err != nil {
		log.Fatal(err)
	}
}
