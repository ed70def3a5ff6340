package pm

// A NodeID is the stable small integer id of one node in the registry.
// Cross-resource links are stored as NodeIDs, never as direct references.
type NodeID int

// NodeNone marks the absence of a node link.
const NodeNone NodeID = -1

// Power is a power consumption figure in abstract power units, used for
// accounting only, never for control.
type Power uint32

// A Payload is the resource-class specific extension of a slave. It is
// selected by an explicit kind tag and reached through checked accessors
// in the class package.
type Payload interface {
	Kind() string
}

// A Slave is one physical memory bank whose power state is managed. Slaves
// are enumerated once at startup and live for the whole process.
type Slave struct {
	id            NodeID
	name          string
	fsm           *FSM
	currentState  StateID
	reqs          RequirementSet
	shareable     bool
	latencyMargin Latency
	parent        NodeID
	powerInfo     []Power
	payload       Payload
}

// NewSlave creates a slave in the fully-on state with no parent domain and
// the maximum latency margin.
func NewSlave(id NodeID, name string, fsm *FSM) *Slave {
	return &Slave{
		id:            id,
		name:          name,
		fsm:           fsm,
		currentState:  StateOn,
		latencyMargin: MaxLatency,
		parent:        NodeNone,
	}
}

// ID returns the node id of the slave.
func (s *Slave) ID() NodeID {
	return s.id
}

// Name returns the name of the slave.
func (s *Slave) Name() string {
	return s.name
}

// FSM returns the FSM flavor shared by the slave's hardware class.
func (s *Slave) FSM() *FSM {
	return s.fsm
}

// CurrentState returns the authoritative recorded state of the slave.
func (s *Slave) CurrentState() StateID {
	return s.currentState
}

// setCurrentState commits a new recorded state. Only the engine calls it,
// and only after the transition handler reported success.
func (s *Slave) setCurrentState(state StateID) {
	s.currentState = state
}

// Requirements returns the slave's requirement set.
func (s *Slave) Requirements() *RequirementSet {
	return &s.reqs
}

// Shareable returns true if more than one master may simultaneously hold
// requirements on the slave.
func (s *Slave) Shareable() bool {
	return s.shareable
}

// SetShareable marks the slave as shareable.
func (s *Slave) SetShareable(shareable bool) {
	s.shareable = shareable
}

// Parent returns the node id of the enclosing power domain. The second
// return value is false if the slave has no parent. The link is a relation
// only; the parent's own FSM is a separate engine instance.
func (s *Slave) Parent() (NodeID, bool) {
	if s.parent == NodeNone {
		return NodeNone, false
	}

	return s.parent, true
}

// SetParent records the enclosing power domain of the slave.
func (s *Slave) SetParent(parent NodeID) {
	s.parent = parent
}

// LatencyMargin returns the slave's current latency budget tolerance.
func (s *Slave) LatencyMargin() Latency {
	return s.latencyMargin
}

// SetLatencyMargin updates the slave's latency budget tolerance.
func (s *Slave) SetLatencyMargin(margin Latency) {
	s.latencyMargin = margin
}

// PowerAt returns the power the slave consumes in the given state. Slaves
// without power info report zero.
func (s *Slave) PowerAt(state StateID) Power {
	if int(state) < 0 || int(state) >= len(s.powerInfo) {
		return 0
	}

	return s.powerInfo[state]
}

// SetPowerInfo installs the per-state power consumption table, indexed by
// state id.
func (s *Slave) SetPowerInfo(info []Power) {
	s.powerInfo = info
}

// Payload returns the resource-class specific payload of the slave.
func (s *Slave) Payload() Payload {
	return s.payload
}

// SetPayload installs the resource-class specific payload.
func (s *Slave) SetPayload(p Payload) {
	s.payload = p
}
