// Package input turns mouse and touch state into pointer events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Kind int

const (
	Down Kind = iota
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return "unknown"
}

// Button identifies which button produced a Down or Up. Move events carry
// ButtonPrimary.
type Button int

const (
	ButtonPrimary   Button = iota // left mouse or first touch
	ButtonSecondary               // right mouse
	ButtonMiddle

	buttonCount
)

// Event is a single pointer transition in logical screen coordinates.
type Event struct {
	Kind   Kind
	X, Y   float64
	Button Button
}

// Sample is the raw pointer state for one tick.
type Sample struct {
	X, Y    int
	Pressed [buttonCount]bool
}

// Tracker diffs consecutive samples into edge events.
type Tracker struct {
	lastX, lastY int
	seen         bool
	pressed      [buttonCount]bool
}

// Observe appends the events implied by s to dst. Moves are reported before
// button edges so an Up lands where the pointer was released.
func (t *Tracker) Observe(dst []Event, s Sample) []Event {
	if t.seen && (s.X != t.lastX || s.Y != t.lastY) {
		dst = append(dst, Event{Kind: Move, X: float64(s.X), Y: float64(s.Y), Button: ButtonPrimary})
	}
	t.lastX, t.lastY, t.seen = s.X, s.Y, true

	for b := Button(0); b < buttonCount; b++ {
		switch {
		case s.Pressed[b] && !t.pressed[b]:
			dst = append(dst, Event{Kind: Down, X: float64(s.X), Y: float64(s.Y), Button: b})
		case !s.Pressed[b] && t.pressed[b]:
			dst = append(dst, Event{Kind: Up, X: float64(s.X), Y: float64(s.Y), Button: b})
		}
		t.pressed[b] = s.Pressed[b]
	}
	return dst
}

var mouseButtons = [buttonCount]ebiten.MouseButton{
	ButtonPrimary:   ebiten.MouseButtonLeft,
	ButtonSecondary: ebiten.MouseButtonRight,
	ButtonMiddle:    ebiten.MouseButtonMiddle,
}

// Touch is the position of an active touch.
type Touch struct {
	X, Y int
}

// mergeTouches folds touch state into the mouse sample. The first touch takes
// over the primary button. When the last touch lifts (wasTouching with no
// touches left) the cursor is stale, so the sample is moved back to the last
// observed position (lastX, lastY). It reports whether a touch is down now.
func mergeTouches(mouse Sample, touches []Touch, wasTouching bool, lastX, lastY int) (Sample, bool) {
	switch {
	case len(touches) > 0:
		mouse.X, mouse.Y = touches[0].X, touches[0].Y
		mouse.Pressed[ButtonPrimary] = true
		return mouse, true
	case wasTouching:
		mouse.X, mouse.Y = lastX, lastY
	}
	return mouse, false
}

// Poller reads the current ebiten pointer state.
type Poller struct {
	Tracker
	ids      []ebiten.TouchID
	touches  []Touch
	touching bool
}

func (p *Poller) Poll(dst []Event) []Event {
	var s Sample
	s.X, s.Y = ebiten.CursorPosition()
	for b, mb := range mouseButtons {
		s.Pressed[b] = ebiten.IsMouseButtonPressed(mb)
	}

	p.ids = ebiten.AppendTouchIDs(p.ids[:0])
	p.touches = p.touches[:0]
	for _, id := range p.ids {
		x, y := ebiten.TouchPosition(id)
		p.touches = append(p.touches, Touch{X: x, Y: y})
	}

	s, p.touching = mergeTouches(s, p.touches, p.touching, p.lastX, p.lastY)
	return p.Observe(dst, s)
}
