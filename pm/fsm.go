package pm

// A TransitionHandler performs the register-level side effects that move a
// slave from one state to another. There is one handler per resource class,
// not per resource.
//
// A handler must not update the slave's recorded state. The engine commits
// the new state centrally, and only when Execute returns nil.
type TransitionHandler interface {
	Execute(slave *Slave, from, to StateID) error
}

// An FSM bundles a capability table, a transition table, and a transition
// handler into one flavor. One FSM instance is shared, read-only, by every
// slave of the same hardware class.
type FSM struct {
	Name        string
	States      CapabilityTable
	Transitions TransitionTable
	Handler     TransitionHandler
}
