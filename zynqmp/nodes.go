// Package zynqmp wires the on-chip memory banks of a ZynqMP-class SoC
// into a registry: the L2 cache bank, four OCM banks, and four TCM banks,
// with their retention control bits and default master interest.
package zynqmp

import "github.com/fetaleksej/pmc/pm"

// Node ids of the power domains and memory banks on the platform.
const (
	NodeFPD pm.NodeID = iota
	NodeRPUIsland
	NodeL2
	NodeOCMBank0
	NodeOCMBank1
	NodeOCMBank2
	NodeOCMBank3
	NodeTCM0A
	NodeTCM0B
	NodeTCM1A
	NodeTCM1B
)

// Masters that hold requirements on the memory banks.
const (
	MasterAPU pm.MasterID = iota
	MasterRPU0
)
