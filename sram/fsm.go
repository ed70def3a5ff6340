package sram

import (
	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/pm"
)

// Default per-state power consumption of a memory bank, in power units.
const (
	DefaultPowerOff       pm.Power = 0
	DefaultPowerRetention pm.Power = 50
	DefaultPowerOn        pm.Power = 100
)

// DefaultPowers is the per-state power consumption table shared by banks
// that do not override it. Indexed by state id.
func DefaultPowers() []pm.Power {
	return []pm.Power{
		pm.StateOff:       DefaultPowerOff,
		pm.StateRetention: DefaultPowerRetention,
		pm.StateOn:        DefaultPowerOn,
	}
}

// Bank states for the generic RAM flavor. Retention keeps power on the
// retaining logic.
var sramStates = pm.CapabilityTable{
	pm.StateOff:       0,
	pm.StateRetention: pm.CapContext | pm.CapPower,
	pm.StateOn:        pm.CapAccess | pm.CapContext | pm.CapPower,
}

// TCM banks in retention do not require their power parent to be on.
var tcmStates = pm.CapabilityTable{
	pm.StateOff:       0,
	pm.StateRetention: pm.CapContext,
	pm.StateOn:        pm.CapAccess | pm.CapContext | pm.CapPower,
}

// Bank transition table, shared by both flavors. Retention and off are
// deliberately not connected by a direct edge: callers route through on,
// as a documented two-hop sequence.
var bankTransitions = pm.TransitionTable{
	{From: pm.StateOn, To: pm.StateRetention, Latency: pm.DefaultLatency},
	{From: pm.StateRetention, To: pm.StateOn, Latency: pm.DefaultLatency},
	{From: pm.StateOn, To: pm.StateOff, Latency: pm.DefaultLatency},
	{From: pm.StateOff, To: pm.StateOn, Latency: pm.DefaultLatency},
}

// NewSramFSM creates the FSM flavor shared by general-purpose RAM and
// cache banks.
func NewSramFSM(regs hw.RegisterFile, seq hw.PowerSequencer) *pm.FSM {
	return &pm.FSM{
		Name:        "sram",
		States:      sramStates,
		Transitions: bankTransitions,
		Handler:     &Handler{regs: regs, seq: seq},
	}
}

// NewTcmFSM creates the FSM flavor for tightly-coupled memory banks. The
// states and transitions match the generic flavor; the retention control
// bit is encoded with the opposite sense.
func NewTcmFSM(regs hw.RegisterFile, seq hw.PowerSequencer) *pm.FSM {
	return &pm.FSM{
		Name:        "tcm",
		States:      tcmStates,
		Transitions: bankTransitions,
		Handler:     &Handler{regs: regs, seq: seq, invertRetention: true},
	}
}
