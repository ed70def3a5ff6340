package hw

import (
	"errors"

	"github.com/fetaleksej/pmc/pm"
)

// A PowerSequencer performs the opaque power-rail sequencing for one node.
// Both primitives poll to completion before returning and are atomic from
// the engine's point of view.
type PowerSequencer interface {
	PowerUp(node pm.NodeID) error
	PowerDown(node pm.NodeID) error
}

// ErrSequenceFailed is the generic failure a modeled sequencer reports
// when no more specific cause is injected.
var ErrSequenceFailed = errors.New("power sequence failed")

// A SequencerCall records one invocation of a modeled sequencer.
type SequencerCall struct {
	Node pm.NodeID
	Op   string
}

// A ModelSequencer is a PowerSequencer that always succeeds unless a
// failure is injected for a node. It logs every invocation, which lets
// tests assert the exact primitive sequence a handler produced.
type ModelSequencer struct {
	calls    []SequencerCall
	failUp   map[pm.NodeID]error
	failDown map[pm.NodeID]error
}

// NewModelSequencer creates a sequencer with no injected failures.
func NewModelSequencer() *ModelSequencer {
	return &ModelSequencer{
		failUp:   make(map[pm.NodeID]error),
		failDown: make(map[pm.NodeID]error),
	}
}

// FailPowerUp makes every subsequent PowerUp for node return err. Passing
// a nil err clears the injection.
func (s *ModelSequencer) FailPowerUp(node pm.NodeID, err error) {
	if err == nil {
		delete(s.failUp, node)
		return
	}

	s.failUp[node] = err
}

// FailPowerDown makes every subsequent PowerDown for node return err.
// Passing a nil err clears the injection.
func (s *ModelSequencer) FailPowerDown(node pm.NodeID, err error) {
	if err == nil {
		delete(s.failDown, node)
		return
	}

	s.failDown[node] = err
}

// PowerUp records the call and returns the injected failure, if any.
func (s *ModelSequencer) PowerUp(node pm.NodeID) error {
	s.calls = append(s.calls, SequencerCall{Node: node, Op: "power-up"})
	return s.failUp[node]
}

// PowerDown records the call and returns the injected failure, if any.
func (s *ModelSequencer) PowerDown(node pm.NodeID) error {
	s.calls = append(s.calls, SequencerCall{Node: node, Op: "power-down"})
	return s.failDown[node]
}

// Calls returns the invocations recorded so far, in call order.
func (s *ModelSequencer) Calls() []SequencerCall {
	out := make([]SequencerCall, len(s.calls))
	copy(out, s.calls)
	return out
}

// Reset clears the recorded invocations.
func (s *ModelSequencer) Reset() {
	s.calls = nil
}
