package boy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepTime struct {
	t time.Time
}

func (s *stepTime) now() time.Time { return s.t }

func (s *stepTime) advance(seconds float64) {
	s.t = s.t.Add(time.Duration(seconds * float64(time.Second)))
}

func TestPausableClock(t *testing.T) {
	wall := &stepTime{t: time.Unix(1000, 0)}
	c := newPausableClock(wall.now)
	require.Zero(t, c.Now())

	wall.advance(1)
	assert.InDelta(t, 1.0, c.Now(), 1e-9)

	c.SetPaused(true)
	c.SetPaused(true)
	wall.advance(6)
	assert.True(t, c.Paused())
	assert.InDelta(t, 1.0, c.Now(), 1e-9, "clock stands still while paused")

	c.SetPaused(false)
	c.SetPaused(false)
	assert.InDelta(t, 1.0, c.Now(), 1e-9)

	wall.advance(0.5)
	assert.InDelta(t, 1.5, c.Now(), 1e-9)
}

func TestPauseDoesNotFireTimeout(t *testing.T) {
	wall := &stepTime{t: time.Unix(1000, 0)}
	clock := newPausableClock(wall.now)
	b, _, _ := newTestBoy(t, WithClock(clock))

	require.True(t, b.HandleEvent(Press(KeyA)))
	wall.advance(0.5)
	b.Update()

	clock.SetPaused(true)
	wall.advance(6)
	clock.SetPaused(false)

	b.Update()
	assert.Equal(t, AutoRunning, b.State())

	wall.advance(4.5)
	b.Update()
	assert.Equal(t, Idle, b.State())
}
