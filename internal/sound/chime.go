// Package sound synthesizes the short square-wave cues played during a round.
package sound

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue note sequences (Hz).
var (
	collectNotes = []float64{523, 784}      // C5 G5
	timeUpNotes  = []float64{392, 330, 262} // G4 E4 C4
)

const noteLength = 80 * time.Millisecond

// Chime plays pre-rendered cues. A nil *Chime is silent.
type Chime struct {
	ctx     *audio.Context
	vol     float64
	collect []byte
	timeUp  []byte
}

func New(ctx *audio.Context, vol float64) *Chime {
	rate := ctx.SampleRate()
	return &Chime{
		ctx:     ctx,
		vol:     vol,
		collect: Render(collectNotes, noteLength, rate),
		timeUp:  Render(timeUpNotes, 2*noteLength, rate),
	}
}

func (c *Chime) Collect() {
	if c != nil {
		c.play(c.collect)
	}
}

func (c *Chime) TimeUp() {
	if c != nil {
		c.play(c.timeUp)
	}
}

func (c *Chime) play(pcm []byte) {
	p := c.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(c.vol)
	p.Play()
}

// Render produces 16-bit little-endian stereo PCM for a run of square-wave
// notes. Each note decays linearly to silence.
func Render(notes []float64, length time.Duration, sampleRate int) []byte {
	perNote := int(int64(length) * int64(sampleRate) / int64(time.Second))
	buf := make([]byte, 0, len(notes)*perNote*4)

	for _, freq := range notes {
		for i := 0; i < perNote; i++ {
			env := 1 - float64(i)/float64(perNote)
			phase := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))

			val := 0.3 * env
			if phase < 0 {
				val = -val
			}

			v := int16(val * math.MaxInt16)
			buf = append(buf, byte(v), byte(v>>8), byte(v), byte(v>>8))
		}
	}
	return buf
}
