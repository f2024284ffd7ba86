package gamemode

import (
	"testing"
	"time"
)

func TestCountdown(t *testing.T) {
	c := NewCountdown(30 * time.Second)

	if c.Expired() || c.Remaining() != 30*time.Second {
		t.Fatalf("fresh countdown: expired=%v remaining=%v", c.Expired(), c.Remaining())
	}
	if got := c.String(); got != "30.0s" {
		t.Fatalf("String() = %q, want 30.0s", got)
	}

	c.Advance(12500 * time.Millisecond)
	if c.Remaining() != 17500*time.Millisecond {
		t.Fatalf("remaining = %v", c.Remaining())
	}
	if got := c.String(); got != "17.5s" {
		t.Fatalf("String() = %q, want 17.5s", got)
	}

	c.Advance(-time.Second)
	if c.Elapsed != 12500*time.Millisecond {
		t.Fatalf("negative delta changed elapsed: %v", c.Elapsed)
	}

	c.Advance(time.Minute)
	if !c.Expired() || c.Remaining() != 0 {
		t.Fatalf("expected expiry, remaining=%v", c.Remaining())
	}
	if got := c.String(); got != "0.0s" {
		t.Fatalf("String() = %q, want 0.0s", got)
	}

	c.Reset()
	if c.Expired() || c.Remaining() != 30*time.Second {
		t.Fatal("reset did not restore the full limit")
	}
}

func TestCountdownExpiresExactlyAtLimit(t *testing.T) {
	c := NewCountdown(time.Second)
	c.Advance(999 * time.Millisecond)
	if c.Expired() {
		t.Fatal("expired early")
	}
	c.Advance(time.Millisecond)
	if !c.Expired() {
		t.Fatal("not expired at limit")
	}
}

func TestButtonClick(t *testing.T) {
	b := Button{X: 10, Y: 10, W: 100, H: 40}

	tests := []struct {
		name           string
		px, py, rx, ry float64
		want           bool
	}{
		{"inside", 50, 30, 60, 30, true},
		{"press outside", 0, 0, 50, 30, false},
		{"release outside", 50, 30, 200, 30, false},
		{"edges", 10, 10, 110, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.Press(tt.px, tt.py)
			if got := b.Release(tt.rx, tt.ry); got != tt.want {
				t.Fatalf("click = %v, want %v", got, tt.want)
			}
		})
	}

	if b.Release(50, 30) {
		t.Fatal("release without press counted as click")
	}
}
