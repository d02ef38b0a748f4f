package courier

import "time"

// TimerState is the state of a Countdown. Expired is terminal.
type TimerState int

const (
	Running TimerState = iota
	Expired
)

func (state TimerState) String() string {
	if state == Expired {
		return "expired"
	}
	return "running"
}

// Countdown counts whole ticks down to zero as wall-clock time is fed to it.
type Countdown struct {
	Remaining int           // Ticks left
	Interval  time.Duration // Length of one tick
	State     TimerState

	elapsed time.Duration
}

// NewCountdown creates a Countdown lasting duration, ticking every interval. A partial last tick counts as a whole one.
func NewCountdown(duration, interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	ticks := int((duration + interval - 1) / interval)
	countdown := &Countdown{
		Remaining: ticks,
		Interval:  interval,
	}
	if ticks <= 0 {
		countdown.Remaining = 0
		countdown.State = Expired
	}
	return countdown
}

// Advance feeds dt of elapsed time to the Countdown, taking one tick off for every full Interval accumulated. It returns true
// exactly once: on the call that takes the Countdown to Expired.
func (countdown *Countdown) Advance(dt time.Duration) bool {

	if countdown.State == Expired {
		return false
	}

	countdown.elapsed += dt

	for countdown.elapsed >= countdown.Interval {
		countdown.elapsed -= countdown.Interval
		countdown.Remaining--
		if countdown.Remaining <= 0 {
			countdown.Remaining = 0
			countdown.State = Expired
			return true
		}
	}

	return false

}

// RemainingTime returns the time left, as of the last tick.
func (countdown *Countdown) RemainingTime() time.Duration {
	return time.Duration(countdown.Remaining) * countdown.Interval
}
