package gamemode

import (
	"fmt"
	"time"
)

// Countdown tracks how much of a fixed time limit is left.
type Countdown struct {
	Limit   time.Duration
	Elapsed time.Duration
}

func NewCountdown(limit time.Duration) Countdown {
	return Countdown{Limit: limit}
}

// Advance adds the time passed since the last tick. Negative deltas
// (clock going backwards) are ignored.
func (c *Countdown) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.Elapsed += dt
}

func (c Countdown) Remaining() time.Duration {
	if c.Elapsed >= c.Limit {
		return 0
	}
	return c.Limit - c.Elapsed
}

func (c Countdown) Expired() bool {
	return c.Elapsed >= c.Limit
}

func (c *Countdown) Reset() {
	c.Elapsed = 0
}

// String formats the remaining time as "12.3s".
func (c Countdown) String() string {
	return fmt.Sprintf("%.1fs", c.Remaining().Seconds())
}
