package pm

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTransition reports that the requested (from, to) pair is
// not a declared edge for the slave's FSM flavor. The slave's state is
// unchanged and the same request can safely be retried.
var ErrUnsupportedTransition = errors.New("unsupported transition")

// ErrInternalInconsistency reports that a slave's recorded state does not
// match any known state id. This is a data-corruption defect. No local
// retry can be trusted to be correct.
var ErrInternalInconsistency = errors.New("internal inconsistency")

// A HardwareError reports that an underlying power-sequencing primitive
// failed. The slave's recorded state is unchanged and remains
// authoritative.
type HardwareError struct {
	Node NodeID
	Op   string
	Err  error
}

func (e *HardwareError) Error() string {
	return fmt.Sprintf("node %d: %s failed: %v", int(e.Node), e.Op, e.Err)
}

func (e *HardwareError) Unwrap() error {
	return e.Err
}
