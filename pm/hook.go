package pm

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookPosBeforeTransition triggers before a legal transition is attempted.
var HookPosBeforeTransition = &HookPos{Name: "BeforeTransition"}

// HookPosAfterTransition triggers after a transition was committed.
var HookPosAfterTransition = &HookPos{Name: "AfterTransition"}

// HookPosTransitionFailed triggers after a transition handler reported
// failure. The slave's recorded state is unchanged.
var HookPosTransitionFailed = &HookPos{Name: "TransitionFailed"}

// HookCtx is the context that holds all the information about the site
// that a hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)

	// Hooks returns the hooks registered so far
	Hooks() []Hook
}

// Hook is a short piece of program that can be invoked by a hookable
// object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that
// implement the Hookable interface.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// Hooks returns the hooks registered so far.
func (h *HookableBase) Hooks() []Hook {
	return h.hooks
}

// InvokeHook triggers the registered Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
