package gamemode

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centered label. A click is a
// primary press and release that both land inside it.
type Button struct {
	X, Y, W, H float64
	Label      string

	armed bool
}

func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Press arms the button if (x, y) is inside it.
func (b *Button) Press(x, y float64) {
	b.armed = b.Contains(x, y)
}

// Release reports whether the press/release pair was a click.
func (b *Button) Release(x, y float64) bool {
	clicked := b.armed && b.Contains(x, y)
	b.armed = false
	return clicked
}

func (b *Button) Draw(screen *ebiten.Image, face text.Face, fill, label color.Color) {
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	drawText(screen, b.Label, face, b.X+b.W/2, b.Y+b.H/2, label, text.AlignCenter, text.AlignCenter)
}
