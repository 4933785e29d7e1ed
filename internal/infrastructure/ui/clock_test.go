package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_FiresOnceAfterDelay(t *testing.T) {
	c := NewClock()
	var fired int
	c.After(2*time.Second, func() { fired++ })

	c.Advance(1.0)
	assert.Equal(t, 0, fired, "not due yet")
	assert.Equal(t, 1, c.Pending())

	c.Advance(1.0)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, c.Pending())

	// Exactly once: further advances change nothing
	c.Advance(10.0)
	assert.Equal(t, 1, fired)
}

func TestClock_FractionalFrames(t *testing.T) {
	c := NewClock()
	var fired int
	c.After(2*time.Second, func() { fired++ })

	// 60 FPS frames
	for i := 0; i < 119; i++ {
		c.Advance(1.0 / 60.0)
	}
	assert.Equal(t, 0, fired)

	c.Advance(1.0 / 60.0)
	c.Advance(1.0 / 60.0)
	assert.Equal(t, 1, fired)
}

func TestClock_ZeroDelayFiresOnNextAdvance(t *testing.T) {
	c := NewClock()
	var fired int
	c.After(0, func() { fired++ })

	assert.Equal(t, 0, fired, "nothing fires before the loop ticks")
	c.Advance(1.0 / 60.0)
	assert.Equal(t, 1, fired)
}

func TestClock_MultipleTimers(t *testing.T) {
	c := NewClock()
	var order []string
	c.After(time.Second, func() { order = append(order, "a") })
	c.After(3*time.Second, func() { order = append(order, "b") })

	c.Advance(1.5)
	assert.Equal(t, []string{"a"}, order)

	c.Advance(1.5)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestClock_CallbackMaySchedule(t *testing.T) {
	c := NewClock()
	var fired int
	c.After(time.Second, func() {
		c.After(time.Second, func() { fired++ })
	})

	c.Advance(1.0)
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, c.Pending(), "callback scheduled a follow-up")

	c.Advance(1.0)
	assert.Equal(t, 1, fired)
}

func TestBlipPCM_Shape(t *testing.T) {
	pcm := blipPCM()

	// 60 ms of 16-bit stereo
	assert.Equal(t, int(0.06*BlipSampleRate)*4, len(pcm))

	// Envelope decays: the first quarter carries more energy than the last
	quarter := len(pcm) / 4
	assert.Greater(t, pcmEnergy(pcm[:quarter]), pcmEnergy(pcm[len(pcm)-quarter:]))
}

func pcmEnergy(b []byte) int64 {
	var sum int64
	for i := 0; i+1 < len(b); i += 2 {
		s := int64(int16(uint16(b[i]) | uint16(b[i+1])<<8))
		sum += s * s
	}
	return sum
}
