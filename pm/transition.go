package pm

import "math"

// Latency is a worst-case transition or wake-up delay in abstract time
// units.
type Latency uint32

// Latency values shared by the memory-bank FSM flavors.
const (
	DefaultLatency Latency = 1000
	MaxLatency     Latency = math.MaxUint32
)

// A Transition is one directed legal edge between two states, annotated
// with the worst-case latency of taking it.
type Transition struct {
	From    StateID
	To      StateID
	Latency Latency
}

// A TransitionTable is the closed set of legal one-hop transitions of an
// FSM flavor. A (from, to) pair not listed is rejected, never routed
// through intermediate states.
type TransitionTable []Transition

// IsLegal returns true if (from, to) is a declared edge.
func (t TransitionTable) IsLegal(from, to StateID) bool {
	_, ok := t.CostOf(from, to)
	return ok
}

// CostOf returns the worst-case latency of the (from, to) edge. The second
// return value is false if the edge is not declared.
func (t TransitionTable) CostOf(from, to StateID) (Latency, bool) {
	for _, tr := range t {
		if tr.From == from && tr.To == to {
			return tr.Latency, true
		}
	}

	return 0, false
}
