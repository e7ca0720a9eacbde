package boy

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	EventStart EventKind = iota
	EventInput
	EventTimeout
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventInput:
		return "input"
	case EventTimeout:
		return "timeout"
	}
	return "unknown"
}

// KeyAction is the edge of a key event.
type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

// Key identifies the keys the character reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyLeft
	KeyRight
	KeyA
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyA:
		return "a"
	}
	return "unknown"
}

// KeyEvent is a raw keyboard edge delivered by the environment.
type KeyEvent struct {
	Action KeyAction
	Key    Key
}

func (k KeyEvent) String() string {
	if k.Action == KeyUp {
		return k.Key.String() + "_up"
	}
	return k.Key.String() + "_down"
}

// Press and Release build key events.
func Press(k Key) KeyEvent   { return KeyEvent{Action: KeyDown, Key: k} }
func Release(k Key) KeyEvent { return KeyEvent{Action: KeyUp, Key: k} }

// Event is what the machine consumes. Input is only meaningful when Kind is
// EventInput.
type Event struct {
	Kind  EventKind
	Input KeyEvent
}

func Input(k KeyEvent) Event { return Event{Kind: EventInput, Input: k} }
func Timeout() Event         { return Event{Kind: EventTimeout} }
func Start() Event           { return Event{Kind: EventStart} }

func (e Event) String() string {
	if e.Kind == EventInput {
		return e.Input.String()
	}
	return e.Kind.String()
}

// Predicate classifies an event. Predicates must depend on the event only.
type Predicate func(Event) bool

func keyEdge(action KeyAction, key Key) Predicate {
	return func(e Event) bool {
		return e.Kind == EventInput && e.Input.Action == action && e.Input.Key == key
	}
}

var (
	SpaceDown = keyEdge(KeyDown, KeySpace)
	RightDown = keyEdge(KeyDown, KeyRight)
	RightUp   = keyEdge(KeyUp, KeyRight)
	LeftDown  = keyEdge(KeyDown, KeyLeft)
	LeftUp    = keyEdge(KeyUp, KeyLeft)
	ADown     = keyEdge(KeyDown, KeyA)
)

// TimedOut matches the synthetic timeout pushed by time-bounded states.
func TimedOut(e Event) bool { return e.Kind == EventTimeout }

// AnyDirection matches a press or release of either arrow key.
func AnyDirection(e Event) bool {
	return RightDown(e) || RightUp(e) || LeftDown(e) || LeftUp(e)
}
