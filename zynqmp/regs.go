package zynqmp

import "github.com/fetaleksej/pmc/hw"

// RAM retention control register in the PMU global register block. Each
// bank owns one bit.
const RAMRetCtrl hw.Addr = 0xFFD80520

// Per-bank masks in RAMRetCtrl.
const (
	RAMRetCtrlOCMBank0 uint32 = 1 << 0
	RAMRetCtrlOCMBank1 uint32 = 1 << 1
	RAMRetCtrlOCMBank2 uint32 = 1 << 2
	RAMRetCtrlOCMBank3 uint32 = 1 << 3
	RAMRetCtrlTCM0A    uint32 = 1 << 4
	RAMRetCtrlTCM0B    uint32 = 1 << 5
	RAMRetCtrlTCM1A    uint32 = 1 << 6
	RAMRetCtrlTCM1B    uint32 = 1 << 7
	RAMRetCtrlL2Bank0  uint32 = 1 << 8
)

// APU reset control register in the FPD clock and reset block.
const RstFPDAPU hw.Addr = 0xFD1A0104

// L2 cache reset bit in RstFPDAPU. Asserted after the L2 bank powers
// down; the boot ROM releases it when the first APU core wakes.
const RstFPDAPUL2Reset uint32 = 1 << 8
