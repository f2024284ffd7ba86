package entity

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/peterhellberg/gfx"
	"golang.org/x/image/colornames"

	"giftbag/internal/config"
)

// Kind is the gift variant. It only changes the box color.
type Kind int

const (
	KindRed Kind = iota
	KindBlue
	KindPurple

	kindCount
)

var kindColors = [kindCount]color.RGBA{
	KindRed:    colornames.Red,
	KindBlue:   colornames.Royalblue,
	KindPurple: colornames.Mediumpurple,
}

// ColRibbon is shared by every kind.
var ColRibbon = colornames.Gold

func (k Kind) Color() color.RGBA {
	if k < 0 || k >= kindCount {
		return kindColors[KindRed]
	}
	return kindColors[k]
}

func (k Kind) String() string {
	switch k {
	case KindRed:
		return "red"
	case KindBlue:
		return "blue"
	case KindPurple:
		return "purple"
	}
	return "unknown"
}

type Gift struct {
	X, Y   float64
	VX, VY float64
	Size   int
	Kind   Kind

	// Held is set while the pointer drags the gift; motion is suspended.
	Held bool
}

func NewGift(x, y, vx, vy float64, kind Kind) *Gift {
	return &Gift{
		X:    x,
		Y:    y,
		VX:   vx,
		VY:   vy,
		Size: config.GiftSize,
		Kind: kind,
	}
}

// SpawnGift places a gift at a random spot in the upper play area with a
// random slow velocity.
func SpawnGift(rng *rand.Rand) *Gift {
	x := config.SpawnMargin + rng.IntN(config.ScreenWidth-2*config.SpawnMargin+1)
	y := config.SpawnMargin + rng.IntN(config.ScreenHeight-config.SpawnMargin-config.SpawnBottom+1)

	return NewGift(
		float64(x),
		float64(y),
		uniform(rng, config.GiftVelocityMin, config.GiftVelocityMax),
		uniform(rng, config.GiftVelocityMin, config.GiftVelocityMax),
		Kind(rng.IntN(int(kindCount))),
	)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Update moves the gift one tick and bounces it off the walls of a
// width x height field.
func (g *Gift) Update(width, height float64) {
	if g.Held {
		return
	}

	g.X += g.VX
	g.Y += g.VY

	size := float64(g.Size)
	if g.X <= size || g.X >= width-size {
		g.VX = -g.VX
	}
	if g.Y <= size || g.Y >= height-size {
		g.VY = -g.VY
	}

	g.Clamp(width, height)
}

// Clamp pulls the gift back inside the walls without touching its velocity.
func (g *Gift) Clamp(width, height float64) {
	size := float64(g.Size)
	g.X = gfx.Clamp(g.X, size, width-size)
	g.Y = gfx.Clamp(g.Y, size, height-size)
}

func (g *Gift) half() float64 {
	return float64(g.Size / 2)
}

// ContainsPoint reports whether (px, py) is inside the gift box.
func (g *Gift) ContainsPoint(px, py float64) bool {
	h := g.half()
	return math.Abs(px-g.X) <= h && math.Abs(py-g.Y) <= h
}

// CollidesWith treats the gift and the other object as circles of half their
// size and reports whether they overlap.
func (g *Gift) CollidesWith(x, y float64, size int) bool {
	dist := gfx.V(g.X, g.Y).Sub(gfx.V(x, y)).Len()
	return dist < g.half()+float64(size/2)
}

func (g *Gift) MoveTo(x, y float64) {
	g.X, g.Y = x, y
}

func (g *Gift) Draw(screen *ebiten.Image) {
	x, y := float32(g.X), float32(g.Y)
	s := float32(g.Size)
	h := float32(g.half())

	// Box
	vector.FillRect(screen, x-h, y-h, s, s, g.Kind.Color(), false)

	// Ribbon
	vector.StrokeLine(screen, x-h, y, x+h, y, config.RibbonWidth, ColRibbon, false)
	vector.StrokeLine(screen, x, y-h, x, y+h, config.RibbonWidth, ColRibbon, false)
}
