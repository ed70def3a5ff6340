package pm

import (
	"fmt"
	"log"
)

// A TransitionInfo describes one transition attempt. It is the hook item
// for all transition hook positions.
type TransitionInfo struct {
	Node    NodeID
	Name    string
	From    StateID
	To      StateID
	Latency Latency
}

// An Engine drives slave state transitions against their FSM tables. It
// validates that a requested transition is a declared edge, runs the
// class-specific handler, and commits the new recorded state only when the
// handler succeeded.
//
// The engine runs on the controller's single dispatch thread and holds no
// internal locks. If the host is multi-threaded, calls for a given slave
// must be externally serialized.
type Engine struct {
	HookableBase

	registry *Registry
}

// NewEngine creates an engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Registry returns the registry the engine drives.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// RequestTransition moves the slave with the given node id to the target
// state.
//
// The request fails with ErrUnsupportedTransition if (current, target) is
// not a declared edge, with a *HardwareError if the power-sequencing
// primitive failed, and with ErrInternalInconsistency if the slave's
// recorded state is not a known state id. On any failure the recorded
// state is untouched, so retrying the identical request is always safe.
func (e *Engine) RequestTransition(id NodeID, target StateID) error {
	slave := e.registry.MustGet(id)
	fsm := slave.FSM()
	current := slave.CurrentState()

	if !fsm.States.Valid(current) {
		log.Printf("pm: node %d (%s) records unknown state %d",
			int(id), slave.Name(), int(current))
		return fmt.Errorf("%w: node %d records unknown state %d",
			ErrInternalInconsistency, int(id), int(current))
	}

	cost, legal := fsm.Transitions.CostOf(current, target)
	if !legal {
		return fmt.Errorf("%w: %s has no %v -> %v edge",
			ErrUnsupportedTransition, fsm.Name, current, target)
	}

	info := TransitionInfo{
		Node:    id,
		Name:    slave.Name(),
		From:    current,
		To:      target,
		Latency: cost,
	}

	e.InvokeHook(HookCtx{
		Domain: e,
		Pos:    HookPosBeforeTransition,
		Item:   info,
	})

	if err := fsm.Handler.Execute(slave, current, target); err != nil {
		e.InvokeHook(HookCtx{
			Domain: e,
			Pos:    HookPosTransitionFailed,
			Item:   info,
			Detail: err,
		})

		return err
	}

	slave.setCurrentState(target)

	e.InvokeHook(HookCtx{
		Domain: e,
		Pos:    HookPosAfterTransition,
		Item:   info,
	})

	return nil
}

// CurrentState returns the authoritative recorded state of a slave.
func (e *Engine) CurrentState(id NodeID) StateID {
	return e.registry.MustGet(id).CurrentState()
}

// Capabilities returns the capability set the given state guarantees for a
// slave.
func (e *Engine) Capabilities(id NodeID, state StateID) Capability {
	return e.registry.MustGet(id).FSM().States.CapabilitiesOf(state)
}
