package main

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"giftbag/internal/config"
	"giftbag/internal/gamemode"
	"giftbag/internal/input"
)

func TestStepQuit(t *testing.T) {
	g := NewGame(nil, nil)
	if err := g.step(time.Millisecond, frameInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := g.step(time.Millisecond, frameInput{Quit: true})
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("err = %v, want ebiten.Termination", err)
	}
	if g.Running {
		t.Fatal("still running after quit")
	}
}

func TestStepRestartKeyOnlyWhenOver(t *testing.T) {
	g := NewGame(nil, nil)
	gift := g.Round.Gifts[0]
	bag := g.Round.Bag
	collect := []input.Event{
		{Kind: input.Down, X: gift.X, Y: gift.Y},
		{Kind: input.Up, X: bag.X, Y: bag.Y},
	}
	if err := g.step(time.Millisecond, frameInput{Events: collect}); err != nil {
		t.Fatal(err)
	}
	if g.Round.Score != 1 {
		t.Fatalf("score = %d, want 1", g.Round.Score)
	}

	// R during play is ignored.
	g.step(time.Millisecond, frameInput{Restart: true})
	if g.Round.Score != 1 {
		t.Fatal("restart key reset a running round")
	}

	g.step(config.RoundTime, frameInput{})
	if g.Round.Phase != gamemode.PhaseOver {
		t.Fatal("round did not end")
	}

	g.step(time.Millisecond, frameInput{Restart: true})
	if g.Round.Phase != gamemode.PhasePlaying || g.Round.Score != 0 {
		t.Fatalf("restart key: phase=%v score=%d", g.Round.Phase, g.Round.Score)
	}
	if g.Round.Timer.Remaining() != config.RoundTime-time.Millisecond {
		t.Fatalf("remaining = %v", g.Round.Timer.Remaining())
	}
}

func TestStepAdvancesTimer(t *testing.T) {
	g := NewGame(nil, nil)
	g.step(2*time.Second, frameInput{})
	if got := g.Round.Timer.Elapsed; got != 2*time.Second {
		t.Fatalf("elapsed = %v, want 2s", got)
	}
	if g.Tick != 1 {
		t.Fatalf("tick = %d, want 1", g.Tick)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := NewGame(nil, nil)
	w, h := g.Layout(1920, 1080)
	if w != config.ScreenWidth || h != config.ScreenHeight {
		t.Fatalf("layout = %dx%d", w, h)
	}
}

func TestFirstTickDeltaIsZero(t *testing.T) {
	g := NewGame(nil, nil)
	start := time.Unix(1000, 0)

	if dt := g.delta(start); dt != 0 {
		t.Fatalf("first dt = %v, want 0", dt)
	}
	if dt := g.delta(start.Add(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Fatalf("second dt = %v, want 16ms", dt)
	}
	if dt := g.delta(start.Add(50 * time.Millisecond)); dt != 34*time.Millisecond {
		t.Fatalf("third dt = %v, want 34ms", dt)
	}
}
