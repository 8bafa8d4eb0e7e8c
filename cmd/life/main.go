//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl, err := app.Setup(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(ctrl, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gridlife — " + cfg.Engine)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
