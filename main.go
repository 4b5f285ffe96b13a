package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avdeev/runaway-button/internal/config"
	"github.com/avdeev/runaway-button/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Just say yes - Esc/Q: Quit")

	g := game.New()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
