package pm

import "fmt"

// A StateID identifies one power state of a slave resource.
type StateID int

// Power states of a memory slave. The set is closed per FSM flavor.
const (
	StateOff StateID = iota
	StateRetention
	StateOn

	numStates
)

// String returns the name of the state.
func (s StateID) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateRetention:
		return "Retention"
	case StateOn:
		return "On"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// A CapabilityTable maps each state of an FSM flavor to the capability set
// that the state guarantees.
type CapabilityTable [numStates]Capability

// Valid returns true if state is a member of the table's state set.
func (t CapabilityTable) Valid(state StateID) bool {
	return state >= 0 && int(state) < len(t)
}

// CapabilitiesOf returns the capability set guaranteed by state. Passing a
// state outside the table's closed set is a contract violation.
func (t CapabilityTable) CapabilitiesOf(state StateID) Capability {
	if !t.Valid(state) {
		panic(fmt.Sprintf("state %d is not in the state set", int(state)))
	}

	return t[state]
}
