package pm

import "fmt"

// A Registry is an arena of slave resources indexed by node id. It is
// populated once at startup; slaves are never removed.
type Registry struct {
	slaves    []*Slave
	nameIndex map[string]NodeID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nameIndex: make(map[string]NodeID),
	}
}

// Register adds a slave to the registry. Registering two slaves with the
// same id or name is a wiring error.
func (r *Registry) Register(s *Slave) {
	id := int(s.ID())
	if id < 0 {
		panic(fmt.Sprintf("slave %s has invalid node id %d", s.Name(), id))
	}

	for id >= len(r.slaves) {
		r.slaves = append(r.slaves, nil)
	}

	if r.slaves[id] != nil {
		panic(fmt.Sprintf("node id %d already registered", id))
	}

	if _, exists := r.nameIndex[s.Name()]; exists {
		panic("slave " + s.Name() + " already registered")
	}

	r.slaves[id] = s
	r.nameIndex[s.Name()] = s.ID()
}

// Get returns the slave with the given node id.
func (r *Registry) Get(id NodeID) (*Slave, bool) {
	if int(id) < 0 || int(id) >= len(r.slaves) || r.slaves[id] == nil {
		return nil, false
	}

	return r.slaves[id], true
}

// MustGet returns the slave with the given node id, panicking if the id is
// not registered. Passing an unknown id is a programming error.
func (r *Registry) MustGet(id NodeID) *Slave {
	s, ok := r.Get(id)
	if !ok {
		panic(fmt.Sprintf("node id %d is not registered", int(id)))
	}

	return s
}

// GetByName returns the slave with the given name.
func (r *Registry) GetByName(name string) (*Slave, bool) {
	id, ok := r.nameIndex[name]
	if !ok {
		return nil, false
	}

	return r.slaves[id], true
}

// All returns the registered slaves in node id order.
func (r *Registry) All() []*Slave {
	out := make([]*Slave, 0, len(r.nameIndex))
	for _, s := range r.slaves {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

// A SlaveSnapshot is a point-in-time view of one slave, for diagnostics
// and serialization of the whole registry state.
type SlaveSnapshot struct {
	Node         NodeID
	Name         string
	State        StateID
	Capabilities Capability
	Shareable    bool
	Power        Power
	Requirements []RequirementRecord
}

// Snapshot captures the state of every registered slave in node id order.
func (r *Registry) Snapshot() []SlaveSnapshot {
	slaves := r.All()
	out := make([]SlaveSnapshot, 0, len(slaves))

	for _, s := range slaves {
		snap := SlaveSnapshot{
			Node:         s.ID(),
			Name:         s.Name(),
			State:        s.CurrentState(),
			Shareable:    s.Shareable(),
			Power:        s.PowerAt(s.CurrentState()),
			Requirements: s.Requirements().Records(),
		}

		if s.FSM().States.Valid(s.CurrentState()) {
			snap.Capabilities = s.FSM().States.CapabilitiesOf(s.CurrentState())
		}

		out = append(out, snap)
	}

	return out
}
