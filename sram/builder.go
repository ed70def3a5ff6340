package sram

import (
	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/pm"
)

// Builder builds a memory-bank slave.
type Builder struct {
	fsm         *pm.FSM
	retCtrlAddr hw.Addr
	retCtrlMask uint32
	resetAddr   hw.Addr
	resetMask   uint32
	parent      pm.NodeID
	shareable   bool
	powers      []pm.Power
}

// MakeBuilder returns a builder with the default power consumption table
// and no parent domain.
func MakeBuilder() Builder {
	return Builder{
		parent: pm.NodeNone,
		powers: DefaultPowers(),
	}
}

// WithFSM sets the FSM flavor of the bank.
func (b Builder) WithFSM(fsm *pm.FSM) Builder {
	b.fsm = fsm
	return b
}

// WithRetentionCtrl sets the location of the bank's retention control bit.
func (b Builder) WithRetentionCtrl(addr hw.Addr, mask uint32) Builder {
	b.retCtrlAddr = addr
	b.retCtrlMask = mask
	return b
}

// WithResetAssert sets a reset bit to assert right after the bank powers
// down.
func (b Builder) WithResetAssert(addr hw.Addr, mask uint32) Builder {
	b.resetAddr = addr
	b.resetMask = mask
	return b
}

// WithParent sets the node id of the bank's enclosing power domain.
func (b Builder) WithParent(parent pm.NodeID) Builder {
	b.parent = parent
	return b
}

// WithShareable allows more than one master to hold requirements on the
// bank at the same time.
func (b Builder) WithShareable() Builder {
	b.shareable = true
	return b
}

// WithPowers overrides the per-state power consumption table.
func (b Builder) WithPowers(powers []pm.Power) Builder {
	b.powers = powers
	return b
}

// Build builds the bank slave. The bank starts in the fully-on state.
func (b Builder) Build(id pm.NodeID, name string) *pm.Slave {
	if b.fsm == nil {
		panic("bank " + name + " built without an FSM flavor")
	}

	s := pm.NewSlave(id, name, b.fsm)
	s.SetShareable(b.shareable)
	s.SetPowerInfo(b.powers)
	s.SetPayload(&Bank{
		RetCtrlAddr: b.retCtrlAddr,
		RetCtrlMask: b.retCtrlMask,
		ResetAddr:   b.resetAddr,
		ResetMask:   b.resetMask,
	})

	if b.parent != pm.NodeNone {
		s.SetParent(b.parent)
	}

	return s
}
