// Package sram implements the memory-bank resource class: the transition
// handler and FSM flavors shared by cache banks, on-chip RAM banks, and
// tightly-coupled memory banks.
package sram

import (
	"fmt"

	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/pm"
)

// PayloadKind tags the bank payload carried by memory-bank slaves.
const PayloadKind = "sram"

// A Bank is the memory-bank payload of a slave: the location of the bank's
// retention control bit and an optional reset to assert after power-down.
type Bank struct {
	// RetCtrlAddr and RetCtrlMask locate the bank's bit in the shared
	// retention control register.
	RetCtrlAddr hw.Addr
	RetCtrlMask uint32

	// ResetAddr and ResetMask, when ResetMask is non-zero, identify a
	// reset bit asserted right after the power-down primitive runs. The
	// boot ROM releases the reset on the next core wake-up.
	ResetAddr hw.Addr
	ResetMask uint32
}

// Kind returns the payload kind tag.
func (b *Bank) Kind() string {
	return PayloadKind
}

// BankOf returns the bank payload of a slave. Calling it on a slave of a
// different resource class is a wiring error.
func BankOf(slave *pm.Slave) *Bank {
	bank, ok := slave.Payload().(*Bank)
	if !ok {
		panic(fmt.Sprintf("slave %s does not carry an sram payload",
			slave.Name()))
	}

	return bank
}
