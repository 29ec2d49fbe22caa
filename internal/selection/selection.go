// Package selection tracks which single movie, if any, is expanded for detail view.
package selection

// State is the selection state
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// Machine is a two-state machine: Closed, or Open(id).
// Selecting the open id again closes it; selecting another id switches to it.
// The zero value is Closed.
type Machine struct {
	id string
}

// Select applies a selection and returns the resulting selected id ("" when closed).
// An empty id is ignored.
func (m *Machine) Select(id string) string {
	switch {
	case id == "":
	case m.id == id:
		m.id = ""
	default:
		m.id = id
	}
	return m.id
}

// Close returns the machine to Closed from any state
func (m *Machine) Close() {
	m.id = ""
}

// State returns the current state
func (m Machine) State() State {
	if m.id == "" {
		return Closed
	}
	return Open
}

// ID returns the open id, or "" when closed
func (m Machine) ID() string {
	return m.id
}

// IsOpen returns true if a movie is expanded
func (m Machine) IsOpen() bool {
	return m.id != ""
}

// IsSelected returns true if id is the open one
func (m Machine) IsSelected(id string) bool {
	return id != "" && m.id == id
}
