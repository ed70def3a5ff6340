package pm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RequirementSet", func() {
	var set *RequirementSet

	BeforeEach(func() {
		set = &RequirementSet{}
	})

	It("should create one record per master", func() {
		set.Require(0, CapAccess|CapContext|CapPower)
		set.Require(1, CapContext)
		set.Require(0, CapContext)

		Expect(set.Len()).To(Equal(2))

		caps, ok := set.Get(0)
		Expect(ok).To(BeTrue())
		Expect(caps).To(Equal(CapContext))
	})

	It("should keep records in attach order", func() {
		set.Require(2, CapContext)
		set.Require(0, CapAccess|CapContext|CapPower)

		records := set.Records()
		Expect(records).To(HaveLen(2))
		Expect(records[0].Master).To(Equal(MasterID(2)))
		Expect(records[1].Master).To(Equal(MasterID(0)))
	})

	It("should union capabilities across live records", func() {
		set.Require(0, CapAccess|CapContext|CapPower)
		set.Require(1, CapContext)

		Expect(set.Max()).To(Equal(CapAccess | CapContext | CapPower))

		set.Release(0)
		Expect(set.Max()).To(Equal(CapContext))
	})

	It("should destroy a record on release", func() {
		set.Require(0, CapContext)
		set.Release(0)

		Expect(set.Len()).To(Equal(0))
		_, ok := set.Get(0)
		Expect(ok).To(BeFalse())
	})

	It("should tolerate releasing a master with no record", func() {
		set.Release(7)
		Expect(set.Len()).To(Equal(0))
	})
})

var _ = Describe("Registry", func() {
	var (
		registry *Registry
		fsm      *FSM
	)

	BeforeEach(func() {
		registry = NewRegistry()
		fsm = &FSM{
			Name: "test",
			States: CapabilityTable{
				StateOff:       0,
				StateRetention: CapContext,
				StateOn:        CapAccess | CapContext | CapPower,
			},
		}
	})

	It("should look up slaves by id and name", func() {
		s := NewSlave(3, "Bank3", fsm)
		registry.Register(s)

		got, ok := registry.Get(3)
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(s))

		got, ok = registry.GetByName("Bank3")
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(s))

		_, ok = registry.Get(0)
		Expect(ok).To(BeFalse())
	})

	It("should reject duplicate ids", func() {
		registry.Register(NewSlave(1, "A", fsm))

		Expect(func() {
			registry.Register(NewSlave(1, "B", fsm))
		}).To(Panic())
	})

	It("should list slaves in id order", func() {
		registry.Register(NewSlave(4, "D", fsm))
		registry.Register(NewSlave(1, "A", fsm))

		all := registry.All()
		Expect(all).To(HaveLen(2))
		Expect(all[0].Name()).To(Equal("A"))
		Expect(all[1].Name()).To(Equal("D"))
	})

	It("should snapshot the live registry state", func() {
		s := NewSlave(0, "Bank0", fsm)
		s.SetShareable(true)
		s.SetPowerInfo([]Power{0, 50, 100})
		s.Requirements().Require(2, CapAccess|CapContext|CapPower)
		registry.Register(s)

		snaps := registry.Snapshot()
		Expect(snaps).To(HaveLen(1))
		Expect(snaps[0].Name).To(Equal("Bank0"))
		Expect(snaps[0].State).To(Equal(StateOn))
		Expect(snaps[0].Power).To(Equal(Power(100)))
		Expect(snaps[0].Shareable).To(BeTrue())
		Expect(snaps[0].Requirements).To(HaveLen(1))
	})
})
