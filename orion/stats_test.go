package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimes(t *testing.T) {
	var now time.Time

	times := FrameTimes{
		now: func() time.Time { return now },
	}

	var reports int
	for range 120 {
		if times.Tick() {
			reports++
		}

		now = now.Add(20 * time.Millisecond)
	}

	assert.Equal(t, 2, reports)
	assert.Equal(t, uint64(120), times.FrameCount)
	assert.Equal(t, 20*time.Millisecond, times.Delta)
	assert.Equal(t, 20*time.Millisecond, times.MaxDuration)
	assert.InDelta(t, 50.0, times.FPS(), 1e-6)
}

func TestFrameTimesWithoutFrames(t *testing.T) {
	var times FrameTimes
	assert.Zero(t, times.FPS())
}

func TestHandle(t *testing.T) {
	assert.NotPanics(t, func() { Handle(nil, "load %s", "texture") })

	assert.PanicsWithValue(t, "load texture: broken", func() {
		Handle(stringError("broken"), "load %s", "texture")
	})
}

type stringError string

func (e stringError) Error() string { return string(e) }
