package boy

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsValid(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())
	assert.ElementsMatch(t, allStates, table.Reachable(Idle))
}

func TestTableValidate(t *testing.T) {
	cases := []struct {
		name  string
		table Table
	}{
		{"unknown_source", Table{StateID(9): nil}},
		{"unknown_target", Table{Idle: {{Name: "x", When: TimedOut, To: StateID(-1)}}}},
		{"nil_predicate", Table{Idle: {{Name: "x", To: Running}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Error(t, c.table.Validate())
		})
	}
}

func TestTableFirstMatchWins(t *testing.T) {
	table := Table{
		Idle: {
			{Name: "first", When: AnyDirection, To: Sleeping},
			{Name: "second", When: RightDown, To: Running},
		},
	}
	tr, ok := table.Match(Idle, Input(Press(KeyRight)))
	require.True(t, ok)
	assert.Equal(t, "first", tr.Name)
	assert.Equal(t, Sleeping, tr.To)
}

func TestHandleEventFollowsTable(t *testing.T) {
	table := DefaultTable()

	for _, from := range allStates {
		for _, e := range allEvents() {
			t.Run(from.String()+"/"+e.String(), func(t *testing.T) {
				b, _, _ := newTestBoy(t)
				b.machine.current = from
				transitions := 0
				b.machine.OnTransition(func(StateID, StateID, Event) { transitions++ })

				want, ok := table.Match(from, e)
				got := b.machine.HandleEvent(e)

				assert.Equal(t, ok, got)
				if !ok {
					assert.Equal(t, from, b.State())
					assert.Zero(t, transitions)
					return
				}
				assert.Equal(t, want.To, b.State())
				assert.Equal(t, 1, transitions)
			})
		}
	}
}

func TestStartOnlyOnce(t *testing.T) {
	b, clock, _ := newTestBoy(t)
	require.Equal(t, Idle, b.State())
	require.Zero(t, b.StartTime)

	clock.Advance(2)
	b.Frame = 4
	b.machine.Start()
	assert.Zero(t, b.StartTime)
	assert.Equal(t, 4, b.Frame)
}

func TestExitRunsBeforeEnter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b, _, _ := newTestBoy(t, WithLogger(logger))

	require.True(t, b.HandleEvent(Press(KeyRight)))
	buf.Reset()
	require.True(t, b.HandleEvent(Release(KeyRight)))

	out := buf.String()
	exitAt := strings.Index(out, "running exit")
	transitionAt := strings.Index(out, "msg=transition")
	require.NotEqual(t, -1, exitAt)
	require.NotEqual(t, -1, transitionAt)
	assert.Less(t, exitAt, transitionAt)
	// Idle.enter saw the pose Running left behind.
	assert.Equal(t, ActionIdleRight, b.Action)
}

func TestObserverSeesTransition(t *testing.T) {
	b, _, _ := newTestBoy(t)
	type seen struct {
		from, to StateID
		e        Event
	}
	var got []seen
	b.Machine().OnTransition(func(from, to StateID, e Event) {
		got = append(got, seen{from, to, e})
	})

	b.HandleEvent(Press(KeyA))
	b.HandleEvent(Press(KeyLeft))

	assert.Equal(t, []seen{
		{Idle, AutoRunning, Input(Press(KeyA))},
		{AutoRunning, Running, Input(Press(KeyLeft))},
	}, got)
}

func TestReentrantDispatchRefused(t *testing.T) {
	saved := states[Sleeping]
	t.Cleanup(func() { states[Sleeping] = saved })

	var inner bool
	hooked := saved
	hooked.Enter = func(b *Boy, e Event) {
		inner = b.machine.HandleEvent(Input(Press(KeySpace)))
	}
	states[Sleeping] = hooked

	b, _, _ := newTestBoy(t)
	require.True(t, b.machine.HandleEvent(Timeout()))
	assert.False(t, inner)
	assert.Equal(t, Sleeping, b.State())
}

func TestObserverCannotDispatch(t *testing.T) {
	b, _, _ := newTestBoy(t)
	var inner []bool
	b.Machine().OnTransition(func(_, _ StateID, _ Event) {
		inner = append(inner, b.machine.HandleEvent(Input(Release(KeyRight))))
	})

	require.True(t, b.HandleEvent(Press(KeyRight)))
	assert.Equal(t, []bool{false}, inner)
	assert.Equal(t, Running, b.State())

	// the guard is released once the transition completes
	require.True(t, b.HandleEvent(Release(KeyRight)))
	assert.Equal(t, Idle, b.State())
}

func TestFrameStaysInRange(t *testing.T) {
	b, clock, _ := newTestBoy(t)
	rng := rand.New(rand.NewSource(7))
	events := allEvents()

	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			b.machine.HandleEvent(events[rng.Intn(len(events))])
		case 1:
			clock.Advance(rng.Float64())
			fallthrough
		default:
			b.Update()
		}
		require.GreaterOrEqual(t, b.Frame, 0)
		require.Less(t, b.Frame, b.Tuning().FrameCount)
	}
}
