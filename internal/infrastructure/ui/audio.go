package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// BlipSampleRate is the sample rate the hover cue is generated at and the
// audio context must be created with.
const BlipSampleRate = 44100

// Blip is the short synthesized hover cue. It exists so the menu does not
// need an asset pipeline for a single 60 ms beep. Implements hover.Sound.
type Blip struct {
	player *audio.Player
}

// NewBlip creates the hover cue on the given audio context.
func NewBlip(ctx *audio.Context) *Blip {
	return &Blip{player: ctx.NewPlayerFromBytes(blipPCM())}
}

// Play restarts the cue from the beginning. Fire-and-forget: playback
// errors are not observable and not actionable here.
func (b *Blip) Play() {
	if b == nil || b.player == nil {
		return
	}
	_ = b.player.Rewind()
	b.player.Play()
}

// blipPCM synthesizes a 60 ms 880 Hz sine with a linear decay envelope as
// 16-bit little-endian stereo PCM.
func blipPCM() []byte {
	const (
		freq     = 880.0
		duration = 0.06
	)
	samples := int(duration * BlipSampleRate)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := 1.0 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*float64(i)/BlipSampleRate) * envelope * 0.25
		s := int16(v * math.MaxInt16)
		buf[i*4] = byte(s)
		buf[i*4+1] = byte(s >> 8)
		buf[i*4+2] = byte(s)
		buf[i*4+3] = byte(s >> 8)
	}
	return buf
}
