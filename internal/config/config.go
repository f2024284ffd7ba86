// Package config centralizes all tunable game parameters.
package config

import "time"

// Screen (logical resolution, ebiten scales the window to fit)
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Collect the Gifts"
	TPS          = 60
)

// Round
const (
	RoundTime = 30 * time.Second
	GiftCount = 10
)

// Gifts
const (
	GiftSize        = 30
	GiftVelocityMin = -1.0
	GiftVelocityMax = 1.0

	// Spawn area: x in [SpawnMargin, W-SpawnMargin], y in [SpawnMargin, H-SpawnBottom]
	SpawnMargin = 50
	SpawnBottom = 150
	RibbonWidth = 3
)

// Bag
const (
	BagX    = ScreenWidth / 2
	BagY    = ScreenHeight - 80
	BagSize = 60
)

// HUD
const (
	FontSize      = 36
	LargeFontSize = 72
	OverlayAlpha  = 200

	RestartButtonWidth  = 220
	RestartButtonHeight = 56
)

// Audio
const (
	SampleRate = 44100
	ChimeVol   = 0.4
)
