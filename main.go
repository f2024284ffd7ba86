package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"giftbag/internal/assets"
	"giftbag/internal/config"
	"giftbag/internal/sound"
)

func main() {
	// 1. Window Setup
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	// 2. Assets
	fonts, err := assets.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}
	chime := sound.New(audio.NewContext(config.SampleRate), config.ChimeVol)

	// 3. Run Loop
	game := NewGame(fonts, chime)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	log.Printf("bye: final score %d", game.Round.Score)
}
