package courier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownExpiresExactlyOnce(t *testing.T) {

	countdown := NewCountdown(60*time.Second, time.Second)
	assert.Equal(t, 60, countdown.Remaining)

	frame := time.Second / 60
	expirations := 0
	frames := 0

	for i := 0; i < 60*90; i++ {
		if countdown.Advance(frame) {
			expirations++
			frames = i + 1
		}
	}

	assert.Equal(t, 1, expirations)
	assert.Equal(t, Expired, countdown.State)
	assert.Equal(t, 0, countdown.Remaining)
	// time.Second / 60 truncates, so the last tick lands a frame late at most.
	assert.InDelta(t, 3600, frames, 1)

}

func TestCountdownTicksSeveralIntervalsAtOnce(t *testing.T) {

	countdown := NewCountdown(10*time.Second, time.Second)

	assert.False(t, countdown.Advance(3500*time.Millisecond))
	assert.Equal(t, 7, countdown.Remaining)
	assert.Equal(t, 7*time.Second, countdown.RemainingTime())

	assert.False(t, countdown.Advance(500*time.Millisecond))
	assert.Equal(t, 6, countdown.Remaining)

	assert.True(t, countdown.Advance(time.Minute))
	assert.Equal(t, 0, countdown.Remaining)
	assert.False(t, countdown.Advance(time.Minute))

}

func TestCountdownRoundsPartialTicksUp(t *testing.T) {

	assert.Equal(t, 3, NewCountdown(2500*time.Millisecond, time.Second).Remaining)
	assert.Equal(t, 60, NewCountdown(time.Minute, 0).Remaining)

	none := NewCountdown(0, time.Second)
	assert.Equal(t, Expired, none.State)
	assert.False(t, none.Advance(time.Second))

}
