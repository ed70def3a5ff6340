package pm

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

type hookRecorder struct {
	ctxs []HookCtx
}

func (h *hookRecorder) Func(ctx HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

var _ = Describe("Engine", func() {
	var (
		mockCtrl *gomock.Controller
		handler  *MockTransitionHandler
		fsm      *FSM
		registry *Registry
		slave    *Slave
		engine   *Engine
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		handler = NewMockTransitionHandler(mockCtrl)
		fsm = &FSM{
			Name: "test",
			States: CapabilityTable{
				StateOff:       0,
				StateRetention: CapContext | CapPower,
				StateOn:        CapAccess | CapContext | CapPower,
			},
			Transitions: TransitionTable{
				{From: StateOn, To: StateRetention, Latency: DefaultLatency},
				{From: StateRetention, To: StateOn, Latency: DefaultLatency},
				{From: StateOn, To: StateOff, Latency: DefaultLatency},
				{From: StateOff, To: StateOn, Latency: DefaultLatency},
			},
			Handler: handler,
		}

		registry = NewRegistry()
		slave = NewSlave(0, "Bank0", fsm)
		registry.Register(slave)

		engine = NewEngine(registry)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should commit the target state when the handler succeeds", func() {
		handler.EXPECT().
			Execute(slave, StateOn, StateRetention).
			Return(nil)

		err := engine.RequestTransition(0, StateRetention)

		Expect(err).ToNot(HaveOccurred())
		Expect(slave.CurrentState()).To(Equal(StateRetention))
	})

	It("should reject undeclared edges without touching hardware", func() {
		handler.EXPECT().
			Execute(slave, StateOn, StateOff).
			Return(nil)
		Expect(engine.RequestTransition(0, StateOff)).To(Succeed())

		err := engine.RequestTransition(0, StateRetention)

		Expect(errors.Is(err, ErrUnsupportedTransition)).To(BeTrue())
		Expect(slave.CurrentState()).To(Equal(StateOff))
	})

	It("should reject a same-state request", func() {
		err := engine.RequestTransition(0, StateOn)

		Expect(errors.Is(err, ErrUnsupportedTransition)).To(BeTrue())
		Expect(slave.CurrentState()).To(Equal(StateOn))
	})

	It("should leave the state untouched when the handler fails", func() {
		hwErr := &HardwareError{
			Node: 0,
			Op:   "power-down",
			Err:  errors.New("rom handler timed out"),
		}
		handler.EXPECT().
			Execute(slave, StateOn, StateOff).
			Return(hwErr)

		err := engine.RequestTransition(0, StateOff)

		var asHW *HardwareError
		Expect(errors.As(err, &asHW)).To(BeTrue())
		Expect(slave.CurrentState()).To(Equal(StateOn))
	})

	It("should report the identical error on a repeated failing request",
		func() {
			hwErr := &HardwareError{
				Node: 0,
				Op:   "power-down",
				Err:  errors.New("rom handler timed out"),
			}
			handler.EXPECT().
				Execute(slave, StateOn, StateOff).
				Return(hwErr).
				Times(2)

			err1 := engine.RequestTransition(0, StateOff)
			err2 := engine.RequestTransition(0, StateOff)

			Expect(err1).To(Equal(err2))
			Expect(slave.CurrentState()).To(Equal(StateOn))
		})

	It("should short-circuit on an unknown recorded state", func() {
		slave.setCurrentState(StateID(9))

		err := engine.RequestTransition(0, StateOn)

		Expect(errors.Is(err, ErrInternalInconsistency)).To(BeTrue())
		Expect(slave.CurrentState()).To(Equal(StateID(9)))
	})

	It("should invoke hooks around a committed transition", func() {
		recorder := &hookRecorder{}
		engine.AcceptHook(recorder)

		handler.EXPECT().
			Execute(slave, StateOn, StateRetention).
			Return(nil)

		Expect(engine.RequestTransition(0, StateRetention)).To(Succeed())

		Expect(recorder.ctxs).To(HaveLen(2))
		Expect(recorder.ctxs[0].Pos).To(Equal(HookPosBeforeTransition))
		Expect(recorder.ctxs[1].Pos).To(Equal(HookPosAfterTransition))

		info := recorder.ctxs[1].Item.(TransitionInfo)
		Expect(info.From).To(Equal(StateOn))
		Expect(info.To).To(Equal(StateRetention))
		Expect(info.Latency).To(Equal(DefaultLatency))
	})

	It("should invoke the failure hook with the error", func() {
		recorder := &hookRecorder{}
		engine.AcceptHook(recorder)

		hwErr := &HardwareError{
			Node: 0,
			Op:   "power-up",
			Err:  errors.New("rail did not settle"),
		}
		handler.EXPECT().
			Execute(slave, StateOn, StateOff).
			Return(hwErr)

		Expect(engine.RequestTransition(0, StateOff)).ToNot(Succeed())

		Expect(recorder.ctxs).To(HaveLen(2))
		Expect(recorder.ctxs[1].Pos).To(Equal(HookPosTransitionFailed))
		Expect(recorder.ctxs[1].Detail).To(Equal(hwErr))
	})

	It("should answer state and capability queries", func() {
		Expect(engine.CurrentState(0)).To(Equal(StateOn))
		Expect(engine.Capabilities(0, StateRetention)).
			To(Equal(CapContext | CapPower))
	})
})
