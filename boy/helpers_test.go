package boy

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

func (c *fakeClock) Advance(d float64) { c.now += d }

type drawCall struct {
	clip    Clip
	rotated bool
	angle   float64
	x, y    float64
	w, h    float64
}

type fakeSheet struct {
	calls  []drawCall
	closed int
}

func (s *fakeSheet) ClipDraw(c Clip, x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{clip: c, x: x, y: y, w: w, h: h})
}

func (s *fakeSheet) ClipDrawRotated(c Clip, angle, x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{clip: c, rotated: true, angle: angle, x: x, y: y, w: w, h: h})
}

func (s *fakeSheet) Close() error {
	s.closed++
	return nil
}

func newTestBoy(t *testing.T, opts ...Option) (*Boy, *fakeClock, *fakeSheet) {
	t.Helper()
	clock := &fakeClock{}
	sheet := &fakeSheet{}
	opts = append([]Option{WithClock(clock), WithLogger(slogt.New(t))}, opts...)
	b, err := New(sheet, opts...)
	require.NoError(t, err)
	return b, clock, sheet
}

func allEvents() []Event {
	events := []Event{Start(), Timeout()}
	for _, k := range []Key{KeyUnknown, KeySpace, KeyLeft, KeyRight, KeyA} {
		events = append(events, Input(Press(k)), Input(Release(k)))
	}
	return events
}

var allStates = []StateID{Idle, Running, AutoRunning, Sleeping}
