// Package tracing records every transition attempt of a power-management
// engine into a data recorder.
package tracing

import (
	"sync"
	"time"

	"github.com/fetaleksej/pmc/datarecording"
	"github.com/fetaleksej/pmc/pm"
	"github.com/rs/xid"
)

type transitionTableEntry struct {
	ID        string
	Node      int
	Name      string
	FromState string
	ToState   string
	Latency   uint32
	Outcome   string
	Error     string
	WallTime  float64
}

// A DBTracer is an engine hook that stores one row per transition attempt,
// successful or failed, into a database table.
type DBTracer struct {
	mu      sync.Mutex
	backend datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer over the given backend and creates the
// transitions table.
func NewDBTracer(backend datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{backend: backend}

	backend.CreateTable("transitions", transitionTableEntry{})

	return t
}

// Func records committed and failed transitions. The before-transition
// position is ignored; an attempt produces exactly one row.
func (t *DBTracer) Func(ctx pm.HookCtx) {
	var outcome, errText string

	switch ctx.Pos {
	case pm.HookPosAfterTransition:
		outcome = "success"
	case pm.HookPosTransitionFailed:
		outcome = "failure"
		if err, ok := ctx.Detail.(error); ok {
			errText = err.Error()
		}
	default:
		return
	}

	info := ctx.Item.(pm.TransitionInfo)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.backend.InsertData("transitions", transitionTableEntry{
		ID:        xid.New().String(),
		Node:      int(info.Node),
		Name:      info.Name,
		FromState: info.From.String(),
		ToState:   info.To.String(),
		Latency:   uint32(info.Latency),
		Outcome:   outcome,
		Error:     errText,
		WallTime:  float64(time.Now().UnixNano()) / 1e9,
	})
}

// CollectTrace attaches the tracer to a hookable domain. Attaching the
// same tracer twice is a wiring error.
func CollectTrace(domain pm.Hookable, tracer *DBTracer) {
	for _, hook := range domain.Hooks() {
		if hook == pm.Hook(tracer) {
			panic("domain already has this tracer")
		}
	}

	domain.AcceptHook(tracer)
}
