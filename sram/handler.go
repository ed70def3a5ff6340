package sram

import (
	"fmt"

	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/pm"
)

// A Handler is the pm.TransitionHandler for memory banks. One handler
// instance serves every bank of its flavor.
//
// The two flavors run the same case analysis and differ only in how the
// retention control bit is encoded: the generic flavor writes the mask
// bits to retain, the alternate flavor writes the inverted sense.
type Handler struct {
	regs            hw.RegisterFile
	seq             hw.PowerSequencer
	invertRetention bool
}

// Execute performs the register writes and sequencer calls that move a
// bank between two states. It never updates the slave's recorded state;
// the engine commits that on success.
func (h *Handler) Execute(slave *pm.Slave, from, to pm.StateID) error {
	bank := BankOf(slave)

	switch from {
	case pm.StateOn:
		switch to {
		case pm.StateRetention:
			h.writeRetentionBit(bank, true)
			return h.powerDown(slave, bank)
		case pm.StateOff:
			h.writeRetentionBit(bank, false)
			return h.powerDown(slave, bank)
		}
	case pm.StateRetention:
		switch to {
		case pm.StateOn:
			// The sequencer re-establishes full power; the retention
			// bit is left as-is.
			return h.powerUp(slave)
		case pm.StateOff:
			h.writeRetentionBit(bank, false)
			return h.powerDown(slave, bank)
		}
	case pm.StateOff:
		if to == pm.StateOn {
			return h.powerUp(slave)
		}
	default:
		return fmt.Errorf("%w: bank %s in unknown state %d",
			pm.ErrInternalInconsistency, slave.Name(), int(from))
	}

	return fmt.Errorf("%w: bank %s cannot go %v -> %v",
		pm.ErrUnsupportedTransition, slave.Name(), from, to)
}

// writeRetentionBit drives the bank's retention control bit. Register
// writes are idempotent pre-conditions for the next attempt, so they are
// never rolled back when the following sequencer call fails.
func (h *Handler) writeRetentionBit(bank *Bank, retain bool) {
	if h.invertRetention {
		retain = !retain
	}

	value := uint32(0)
	if retain {
		value = bank.RetCtrlMask
	}

	h.regs.RMW32(bank.RetCtrlAddr, bank.RetCtrlMask, value)
}

func (h *Handler) powerUp(slave *pm.Slave) error {
	if err := h.seq.PowerUp(slave.ID()); err != nil {
		return &pm.HardwareError{Node: slave.ID(), Op: "power-up", Err: err}
	}

	return nil
}

func (h *Handler) powerDown(slave *pm.Slave, bank *Bank) error {
	err := h.seq.PowerDown(slave.ID())

	// The reset is asserted whether or not the sequencer succeeded,
	// matching the hardware bring-down order.
	if bank.ResetMask != 0 {
		h.regs.RMW32(bank.ResetAddr, bank.ResetMask, bank.ResetMask)
	}

	if err != nil {
		return &pm.HardwareError{Node: slave.ID(), Op: "power-down", Err: err}
	}

	return nil
}
