package entity

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"giftbag/internal/config"
)

var (
	ColBag        = color.RGBA{0x00, 0xc8, 0x00, 0xff}
	ColBagOpening = color.RGBA{0x00, 0x96, 0x00, 0xff}
)

// Bag is the stationary drop target.
type Bag struct {
	X, Y float64
	Size int
}

func NewBag() Bag {
	return Bag{
		X:    config.BagX,
		Y:    config.BagY,
		Size: config.BagSize,
	}
}

// Accepts reports whether a gift released at its current position lands in the bag.
func (b Bag) Accepts(g *Gift) bool {
	return g.CollidesWith(b.X, b.Y, b.Size)
}

// Opening returns the center and radii of the darker ellipse on the sack's
// top edge.
func (b Bag) Opening() (cx, cy, rx, ry float64) {
	s := float64(b.Size)
	w, h := math.Floor(s/1.5), math.Floor(s/3)
	return b.X, b.Y - s/2 + h/2, w / 2, h / 2
}

func (b Bag) Draw(screen *ebiten.Image) {
	// Sack
	vector.FillCircle(screen, float32(b.X), float32(b.Y), float32(b.Size)/2, ColBag, true)

	// Opening: unit circle stretched into an ellipse
	cx, cy, rx, ry := b.Opening()
	var unit, opening vector.Path
	unit.Arc(0, 0, 1, 0, 2*math.Pi, vector.Clockwise)
	unit.Close()

	op := &vector.AddPathOptions{}
	op.GeoM.Scale(rx, ry)
	op.GeoM.Translate(cx, cy)
	opening.AddPath(&unit, op)

	dop := &vector.DrawPathOptions{AntiAlias: true}
	dop.ColorScale.ScaleWithColor(ColBagOpening)
	vector.FillPath(screen, &opening, nil, dop)
}
