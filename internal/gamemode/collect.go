package gamemode

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"giftbag/internal/assets"
	"giftbag/internal/config"
	"giftbag/internal/entity"
	"giftbag/internal/input"
)

type Phase int

const (
	PhasePlaying Phase = iota // Timer ticking, gifts draggable
	PhaseOver                 // Time's up, only restart accepted
)

func (p Phase) String() string {
	if p == PhaseOver {
		return "over"
	}
	return "playing"
}

var (
	ColBg      = colornames.White
	ColHUD     = colornames.Black
	ColOverlay = color.RGBA{0x00, 0x00, 0x00, config.OverlayAlpha}
	ColTitle   = colornames.White
	ColScore   = colornames.Gold
	ColButton  = color.RGBA{0x00, 0xc8, 0x00, 0xff}
)

// Result reports what happened during one Update so the caller can react
// (sounds, logging).
type Result struct {
	Collected int
	TimeUp    bool
}

// Collect is one timed round of dragging gifts into the bag.
type Collect struct {
	Phase   Phase
	Score   int
	Timer   Countdown
	Gifts   []*entity.Gift
	Bag     entity.Bag
	Restart Button

	rng      *rand.Rand
	dragging *entity.Gift
}

func NewCollect(rng *rand.Rand) *Collect {
	c := &Collect{
		Timer: NewCountdown(config.RoundTime),
		Bag:   entity.NewBag(),
		Restart: Button{
			X:     (config.ScreenWidth - config.RestartButtonWidth) / 2,
			Y:     config.ScreenHeight/2 + 110,
			W:     config.RestartButtonWidth,
			H:     config.RestartButtonHeight,
			Label: "Play Again",
		},
		rng: rng,
	}
	c.spawnGifts()
	return c
}

func (c *Collect) spawnGifts() {
	for range config.GiftCount {
		c.Gifts = append(c.Gifts, entity.SpawnGift(c.rng))
	}
}

// Dragging returns the held gift, or nil when nothing is being dragged.
func (c *Collect) Dragging() *entity.Gift {
	return c.dragging
}

// Update runs one tick: advance the clock, apply pointer events, move gifts.
func (c *Collect) Update(dt time.Duration, events []input.Event) Result {
	var res Result

	if c.Phase == PhasePlaying {
		c.Timer.Advance(dt)
		if c.Timer.Expired() {
			c.end()
			res.TimeUp = true
		}
	}

	for _, e := range events {
		res.Collected += c.HandlePointer(e)
	}

	if c.Phase == PhasePlaying {
		for _, g := range c.Gifts {
			g.Update(config.ScreenWidth, config.ScreenHeight)
		}
	}

	return res
}

// HandlePointer applies a single pointer event and returns the number of
// gifts collected by it (0 or 1).
func (c *Collect) HandlePointer(e input.Event) int {
	if c.Phase == PhaseOver {
		c.handleRestart(e)
		return 0
	}

	switch e.Kind {
	case input.Down:
		if e.Button != input.ButtonPrimary || c.dragging != nil {
			return 0
		}
		for _, g := range c.Gifts {
			if g.ContainsPoint(e.X, e.Y) {
				c.dragging = g
				g.Held = true
				g.MoveTo(e.X, e.Y)
				break
			}
		}

	case input.Move:
		if c.dragging != nil {
			c.dragging.MoveTo(e.X, e.Y)
		}

	case input.Up:
		if e.Button != input.ButtonPrimary || c.dragging == nil {
			return 0
		}
		return c.drop(e.X, e.Y)
	}
	return 0
}

func (c *Collect) drop(x, y float64) int {
	g := c.dragging
	c.dragging = nil
	g.Held = false
	g.MoveTo(x, y)

	if !c.Bag.Accepts(g) {
		return 0
	}

	c.Gifts = slices.DeleteFunc(c.Gifts, func(o *entity.Gift) bool { return o == g })
	c.Score++
	if len(c.Gifts) == 0 {
		c.spawnGifts()
	}
	return 1
}

func (c *Collect) handleRestart(e input.Event) {
	if e.Button != input.ButtonPrimary {
		return
	}
	switch e.Kind {
	case input.Down:
		c.Restart.Press(e.X, e.Y)
	case input.Up:
		if c.Restart.Release(e.X, e.Y) {
			c.Reset()
		}
	}
}

func (c *Collect) end() {
	c.Phase = PhaseOver
	if c.dragging != nil {
		c.dragging.Held = false
		c.dragging.Clamp(config.ScreenWidth, config.ScreenHeight)
		c.dragging = nil
	}
	log.Printf("round over: score=%d", c.Score)
}

// Reset starts a fresh round: score 0, full timer, new batch of gifts.
func (c *Collect) Reset() {
	c.Phase = PhasePlaying
	c.Score = 0
	c.Timer.Reset()
	c.dragging = nil
	c.Restart.armed = false
	c.Gifts = c.Gifts[:0]
	c.spawnGifts()
	log.Printf("round restarted")
}

func (c *Collect) Draw(screen *ebiten.Image, fonts *assets.Fonts) {
	screen.Fill(ColBg)

	c.Bag.Draw(screen)
	for _, g := range c.Gifts {
		g.Draw(screen)
	}

	// HUD
	drawText(screen, fmt.Sprintf("Score: %d", c.Score), fonts.Regular, 10, 10, ColHUD, text.AlignStart, text.AlignStart)
	drawText(screen, "Time: "+c.Timer.String(), fonts.Regular, config.ScreenWidth-150, 10, ColHUD, text.AlignStart, text.AlignStart)

	if c.Phase != PhaseOver {
		return
	}

	vector.FillRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, ColOverlay, false)

	cx := float64(config.ScreenWidth / 2)
	cy := float64(config.ScreenHeight / 2)
	drawText(screen, "TIME'S UP!", fonts.Large, cx, cy-80, ColTitle, text.AlignCenter, text.AlignStart)
	drawText(screen, fmt.Sprintf("Score: %d", c.Score), fonts.Large, cx, cy+20, ColScore, text.AlignCenter, text.AlignStart)
	c.Restart.Draw(screen, fonts.Regular, ColButton, ColTitle)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, primary, secondary text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	text.Draw(dst, s, face, op)
}
