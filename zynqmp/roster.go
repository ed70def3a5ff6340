package zynqmp

import (
	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/pm"
	"github.com/fetaleksej/pmc/sram"
)

// Builder assembles the platform's memory-bank roster into a registry.
type Builder struct {
	regs hw.RegisterFile
	seq  hw.PowerSequencer
}

// MakeBuilder returns a roster builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithRegisterFile sets the register file the bank handlers write through.
func (b Builder) WithRegisterFile(regs hw.RegisterFile) Builder {
	b.regs = regs
	return b
}

// WithPowerSequencer sets the power-sequencing collaborator.
func (b Builder) WithPowerSequencer(seq hw.PowerSequencer) Builder {
	b.seq = seq
	return b
}

// Build builds the registry. Every bank starts fully on, and the masters
// that may use each bank hold a zero-capability record, mirroring the
// platform's static master/slave matrix.
func (b Builder) Build() *pm.Registry {
	if b.regs == nil || b.seq == nil {
		panic("roster built without a register file or power sequencer")
	}

	sramFSM := sram.NewSramFSM(b.regs, b.seq)
	tcmFSM := sram.NewTcmFSM(b.regs, b.seq)

	registry := pm.NewRegistry()

	l2 := sram.MakeBuilder().
		WithFSM(sramFSM).
		WithRetentionCtrl(RAMRetCtrl, RAMRetCtrlL2Bank0).
		WithResetAssert(RstFPDAPU, RstFPDAPUL2Reset).
		WithParent(NodeFPD).
		Build(NodeL2, "L2")
	l2.Requirements().Require(MasterAPU, 0)
	registry.Register(l2)

	ocmMasks := []uint32{
		RAMRetCtrlOCMBank0,
		RAMRetCtrlOCMBank1,
		RAMRetCtrlOCMBank2,
		RAMRetCtrlOCMBank3,
	}
	ocmIDs := []pm.NodeID{NodeOCMBank0, NodeOCMBank1, NodeOCMBank2, NodeOCMBank3}
	ocmNames := []string{"OCMBank0", "OCMBank1", "OCMBank2", "OCMBank3"}

	for i := range ocmIDs {
		ocm := sram.MakeBuilder().
			WithFSM(sramFSM).
			WithRetentionCtrl(RAMRetCtrl, ocmMasks[i]).
			WithShareable().
			Build(ocmIDs[i], ocmNames[i])
		ocm.Requirements().Require(MasterAPU, 0)
		ocm.Requirements().Require(MasterRPU0, 0)
		registry.Register(ocm)
	}

	tcmMasks := []uint32{
		RAMRetCtrlTCM0A,
		RAMRetCtrlTCM0B,
		RAMRetCtrlTCM1A,
		RAMRetCtrlTCM1B,
	}
	tcmIDs := []pm.NodeID{NodeTCM0A, NodeTCM0B, NodeTCM1A, NodeTCM1B}
	tcmNames := []string{"TCM0A", "TCM0B", "TCM1A", "TCM1B"}

	for i := range tcmIDs {
		tcm := sram.MakeBuilder().
			WithFSM(tcmFSM).
			WithRetentionCtrl(RAMRetCtrl, tcmMasks[i]).
			WithParent(NodeRPUIsland).
			WithShareable().
			Build(tcmIDs[i], tcmNames[i])
		tcm.Requirements().Require(MasterRPU0, 0)
		tcm.Requirements().Require(MasterAPU, 0)
		registry.Register(tcm)
	}

	return registry
}
