package pm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TransitionTable", func() {
	table := TransitionTable{
		{From: StateOn, To: StateRetention, Latency: DefaultLatency},
		{From: StateRetention, To: StateOn, Latency: DefaultLatency},
		{From: StateOn, To: StateOff, Latency: DefaultLatency},
		{From: StateOff, To: StateOn, Latency: 2 * DefaultLatency},
	}

	It("should declare every listed edge as legal", func() {
		for _, tr := range table {
			Expect(table.IsLegal(tr.From, tr.To)).To(BeTrue())
		}
	})

	It("should not invent reverse edges", func() {
		asymmetric := TransitionTable{
			{From: StateOn, To: StateOff, Latency: DefaultLatency},
		}

		Expect(asymmetric.IsLegal(StateOn, StateOff)).To(BeTrue())
		Expect(asymmetric.IsLegal(StateOff, StateOn)).To(BeFalse())
	})

	It("should reject the undeclared retention-off edges", func() {
		Expect(table.IsLegal(StateRetention, StateOff)).To(BeFalse())
		Expect(table.IsLegal(StateOff, StateRetention)).To(BeFalse())
	})

	It("should reject self loops", func() {
		Expect(table.IsLegal(StateOn, StateOn)).To(BeFalse())
		Expect(table.IsLegal(StateOff, StateOff)).To(BeFalse())
	})

	It("should report per-edge costs", func() {
		cost, ok := table.CostOf(StateOff, StateOn)
		Expect(ok).To(BeTrue())
		Expect(cost).To(Equal(2 * DefaultLatency))

		_, ok = table.CostOf(StateRetention, StateOff)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("CapabilityTable", func() {
	table := CapabilityTable{
		StateOff:       0,
		StateRetention: CapContext | CapPower,
		StateOn:        CapAccess | CapContext | CapPower,
	}

	It("should order states by strict capability supersets", func() {
		on := table.CapabilitiesOf(StateOn)
		ret := table.CapabilitiesOf(StateRetention)
		off := table.CapabilitiesOf(StateOff)

		Expect(on.Has(ret)).To(BeTrue())
		Expect(on).ToNot(Equal(ret))
		Expect(ret.Has(off)).To(BeTrue())
		Expect(ret).ToNot(Equal(off))
		Expect(off).To(Equal(Capability(0)))
	})

	It("should include context and power wherever access is granted", func() {
		for s := StateOff; s < numStates; s++ {
			caps := table.CapabilitiesOf(s)
			if caps.Has(CapAccess) {
				Expect(caps.Has(CapContext | CapPower)).To(BeTrue())
			}
		}
	})

	It("should panic on an out-of-range state", func() {
		Expect(func() { table.CapabilitiesOf(StateID(5)) }).To(Panic())
		Expect(func() { table.CapabilitiesOf(StateID(-1)) }).To(Panic())
	})
})
