package boy

import "github.com/pkg/errors"

// Transition is one row entry: when When matches, move to To.
type Transition struct {
	Name string
	When Predicate
	To   StateID
}

// Table maps a state to its ordered transitions. Rows are scanned in order and
// the first match wins. A missing match means the event is ignored.
type Table map[StateID][]Transition

func directionRow(to StateID) []Transition {
	return []Transition{
		{Name: "right_down", When: RightDown, To: to},
		{Name: "left_down", When: LeftDown, To: to},
		{Name: "right_up", When: RightUp, To: to},
		{Name: "left_up", When: LeftUp, To: to},
	}
}

// DefaultTable is the character's behaviour graph.
func DefaultTable() Table {
	return Table{
		Sleeping: append(
			[]Transition{{Name: "space_down", When: SpaceDown, To: Idle}},
			directionRow(Running)...,
		),
		Idle: append(
			append([]Transition{{Name: "time_out", When: TimedOut, To: Sleeping}}, directionRow(Running)...),
			Transition{Name: "a_down", When: ADown, To: AutoRunning},
		),
		Running: directionRow(Idle),
		AutoRunning: append(
			directionRow(Running),
			Transition{Name: "time_out", When: TimedOut, To: Idle},
		),
	}
}

// Match returns the first transition in from's row accepting e.
func (t Table) Match(from StateID, e Event) (Transition, bool) {
	for _, tr := range t[from] {
		if tr.When(e) {
			return tr, true
		}
	}
	return Transition{}, false
}

// Validate checks that every row and destination names a known state and has
// a predicate.
func (t Table) Validate() error {
	for from, row := range t {
		if !from.valid() {
			return errors.Errorf("table: unknown source state %s", from)
		}
		for i, tr := range row {
			if tr.When == nil {
				return errors.Errorf("table: %s[%d] %q has no predicate", from, i, tr.Name)
			}
			if !tr.To.valid() {
				return errors.Errorf("table: %s[%d] %q targets unknown state %s", from, i, tr.Name, tr.To)
			}
		}
	}
	return nil
}

// Reachable lists the states reachable from start, start included.
func (t Table) Reachable(start StateID) []StateID {
	seen := map[StateID]bool{start: true}
	order := []StateID{start}
	for i := 0; i < len(order); i++ {
		for _, tr := range t[order[i]] {
			if !seen[tr.To] {
				seen[tr.To] = true
				order = append(order, tr.To)
			}
		}
	}
	return order
}
