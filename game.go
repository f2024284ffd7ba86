package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"giftbag/internal/assets"
	"giftbag/internal/config"
	"giftbag/internal/gamemode"
	"giftbag/internal/input"
	"giftbag/internal/sound"
)

// frameInput is everything read from the devices in one tick.
type frameInput struct {
	Events  []input.Event
	Quit    bool
	Restart bool
	Debug   bool
}

// Game holds global state
type Game struct {
	Round   *gamemode.Collect
	Tick    int
	Running bool

	fonts *assets.Fonts
	chime *sound.Chime

	pointer    input.Poller
	in         frameInput
	now        func() time.Time
	lastUpdate time.Time
	showDebug  bool
}

func NewGame(fonts *assets.Fonts, chime *sound.Chime) *Game {
	seed := uint64(time.Now().UnixNano())
	return &Game{
		Round:   gamemode.NewCollect(rand.New(rand.NewPCG(seed, seed>>1))),
		Running: true,
		fonts:   fonts,
		chime:   chime,
		now:     time.Now,
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	dt := g.delta(g.now())

	g.in = frameInput{
		Events:  g.pointer.Poll(g.in.Events[:0]),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Debug:   inpututil.IsKeyJustPressed(ebiten.KeyF3),
	}
	return g.step(dt, g.in)
}

// delta returns the time since the previous tick. The first tick counts as
// zero so window creation does not eat into the round.
func (g *Game) delta(now time.Time) time.Duration {
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
		return 0
	}
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now
	return dt
}

func (g *Game) step(dt time.Duration, in frameInput) error {
	g.Tick++

	if in.Quit {
		g.Running = false
	}
	if !g.Running {
		return ebiten.Termination
	}
	if in.Debug {
		g.showDebug = !g.showDebug
	}

	if in.Restart && g.Round.Phase == gamemode.PhaseOver {
		g.Round.Reset()
	}

	res := g.Round.Update(dt, in.Events)
	for range res.Collected {
		g.chime.Collect()
	}
	if res.TimeUp {
		g.chime.TimeUp()
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.Round.Draw(screen, g.fonts)

	if g.showDebug {
		msg := fmt.Sprintf("TPS: %0.1f FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, msg, 10, config.ScreenHeight-20)
	}
}

// Layout: fixed logical resolution, ebiten scales the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
