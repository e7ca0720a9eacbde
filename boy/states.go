package boy

import (
	"fmt"
	"math"
)

// StateID names one of the character's behaviours.
type StateID int

const (
	Idle StateID = iota
	Running
	AutoRunning
	Sleeping
)

var stateNames = [...]string{
	Idle:        "idle",
	Running:     "running",
	AutoRunning: "autorunning",
	Sleeping:    "sleeping",
}

func (s StateID) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

func (s StateID) valid() bool {
	return s >= 0 && int(s) < len(stateNames)
}

// ParseStateID is the inverse of StateID.String.
func ParseStateID(name string) (StateID, bool) {
	for i, n := range stateNames {
		if n == name {
			return StateID(i), true
		}
	}
	return 0, false
}

// Action selects the sprite sheet row.
type Action int

const (
	ActionRunLeft Action = iota
	ActionRunRight
	ActionIdleLeft
	ActionIdleRight
)

// State is the behaviour bound to a StateID. States hold no data; everything
// they touch lives on the Boy.
type State struct {
	Enter  func(b *Boy, e Event)
	Exit   func(b *Boy, e Event)
	Update func(b *Boy)
	Render func(b *Boy)
}

// states is filled in init: the hooks reach back into Machine, which reads
// states, and a package-level initializer would form a cycle.
var states map[StateID]State

func init() {
	states = map[StateID]State{
		Idle: {
			Enter:  idleEnter,
			Exit:   noopExit,
			Update: idleUpdate,
			Render: drawUpright,
		},
		Running: {
			Enter:  runEnter,
			Exit:   runExit,
			Update: runUpdate,
			Render: drawUpright,
		},
		AutoRunning: {
			Enter:  autoRunEnter,
			Exit:   noopExit,
			Update: autoRunUpdate,
			Render: autoRunRender,
		},
		Sleeping: {
			Enter:  sleepEnter,
			Exit:   noopExit,
			Update: advanceFrame,
			Render: sleepRender,
		},
	}
}

func noopExit(*Boy, Event) {}

func advanceFrame(b *Boy) {
	b.Frame = (b.Frame + 1) % b.tuning.FrameCount
}

func (b *Boy) elapsed() float64 {
	return b.clock.Now() - b.StartTime
}

// Idle is only entered with Action in {RunLeft, RunRight} (mapped to the
// matching idle pose) or already holding an idle pose.
func idleEnter(b *Boy, _ Event) {
	b.Frame = 0
	switch b.Action {
	case ActionRunLeft:
		b.Action = ActionIdleLeft
	case ActionRunRight:
		b.Action = ActionIdleRight
	}
	b.StartTime = b.clock.Now()
}

func idleUpdate(b *Boy) {
	advanceFrame(b)
	if b.elapsed() >= b.tuning.IdleTimeout {
		b.machine.HandleEvent(Timeout())
	}
}

func runEnter(b *Boy, e Event) {
	switch {
	case RightDown(e) || LeftUp(e):
		b.Dir, b.Action = 1, ActionRunRight
	case LeftDown(e) || RightUp(e):
		b.Dir, b.Action = -1, ActionRunLeft
	}
	b.Frame = 0
}

func runExit(b *Boy, e Event) {
	b.logger.Debug("running exit", "event", e.String(), "x", b.X)
}

func runUpdate(b *Boy) {
	advanceFrame(b)
	b.X += float64(b.Dir) * b.tuning.RunSpeed
}

func autoRunEnter(b *Boy, _ Event) {
	b.Action = ActionRunRight
	b.StartTime = b.clock.Now()
	b.Dir = 1
	b.Frame = 0
}

func autoRunUpdate(b *Boy) {
	advanceFrame(b)
	if b.elapsed() >= b.tuning.AutoRunTimeout && b.machine.HandleEvent(Timeout()) {
		return
	}
	if b.X >= b.tuning.RightBound || b.X <= b.tuning.LeftBound {
		b.Dir = -b.Dir
		if b.Action == ActionRunLeft {
			b.Action = ActionRunRight
		} else {
			b.Action = ActionRunLeft
		}
	}
	b.X += float64(b.Dir) * b.tuning.AutoRunSpeed
}

func sleepEnter(b *Boy, _ Event) {
	b.Frame = 0
}

func (b *Boy) clip() Clip {
	size := b.tuning.FrameSize
	return Clip{X: b.Frame * size, Y: int(b.Action) * size, W: size, H: size}
}

func drawUpright(b *Boy) {
	size := float64(b.tuning.FrameSize)
	b.sheet.ClipDraw(b.clip(), b.X, b.Y, size, size)
}

func autoRunRender(b *Boy) {
	size := float64(b.tuning.FrameSize)
	b.sheet.ClipDraw(b.clip(), b.X, b.Y+35, size*2, size*2)
}

// sleepRender lays the idle pose on its back, rotated toward the facing side.
func sleepRender(b *Boy) {
	size := float64(b.tuning.FrameSize)
	off := size / 4
	switch b.Action {
	case ActionIdleRight:
		b.sheet.ClipDrawRotated(b.clip(), math.Pi/2, b.X-off, b.Y-off, size, size)
	case ActionIdleLeft:
		b.sheet.ClipDrawRotated(b.clip(), -math.Pi/2, b.X+off, b.Y-off, size, size)
	}
}
