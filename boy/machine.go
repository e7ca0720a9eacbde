package boy

import "log/slog"

// Machine drives a Boy through the states of a Table. It is not safe for
// concurrent use; the game loop calls it from one goroutine.
type Machine struct {
	boy     *Boy
	table   Table
	current StateID
	logger  *slog.Logger

	started     bool
	dispatching bool
	observers   []func(from, to StateID, e Event)
}

func newMachine(b *Boy, table Table, logger *slog.Logger) *Machine {
	return &Machine{
		boy:     b,
		table:   table,
		current: Idle,
		logger:  logger,
	}
}

// Current returns the active state.
func (m *Machine) Current() StateID { return m.current }

// OnTransition registers fn to run after every transition. HandleEvent
// called from fn is refused.
func (m *Machine) OnTransition(fn func(from, to StateID, e Event)) {
	m.observers = append(m.observers, fn)
}

// Start enters the initial state. Only the first call has an effect.
func (m *Machine) Start() {
	if m.started {
		m.logger.Warn("machine already started", "state", m.current.String())
		return
	}
	m.started = true
	m.enter(m.current, Start())
}

func (m *Machine) Update() {
	states[m.current].Update(m.boy)
}

func (m *Machine) Draw() {
	states[m.current].Render(m.boy)
}

// HandleEvent applies the first transition in the current row matching e.
// It reports whether a transition happened.
func (m *Machine) HandleEvent(e Event) bool {
	if m.dispatching {
		m.logger.Warn("refusing re-entrant event", "state", m.current.String(), "event", e.String())
		return false
	}

	tr, ok := m.table.Match(m.current, e)
	if !ok {
		return false
	}

	from := m.current
	m.dispatching = true
	states[from].Exit(m.boy, e)
	m.current = tr.To
	m.enter(tr.To, e)

	m.logger.Debug("transition", "from", from.String(), "to", tr.To.String(), "trigger", tr.Name, "event", e.String())
	// observers run under the guard too; they watch, they do not dispatch
	for _, fn := range m.observers {
		fn(from, tr.To, e)
	}
	m.dispatching = false
	return true
}

func (m *Machine) enter(s StateID, e Event) {
	dispatching := m.dispatching
	m.dispatching = true
	states[s].Enter(m.boy, e)
	m.dispatching = dispatching
}
