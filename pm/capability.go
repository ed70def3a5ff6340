package pm

import "strings"

// A Capability is a guarantee that a power state provides to the masters
// using a slave resource.
type Capability uint32

const (
	// CapAccess guarantees that the resource can be read and written now.
	CapAccess Capability = 1 << iota

	// CapContext guarantees that the data held by the resource survives
	// the state.
	CapContext

	// CapPower guarantees that the resource's power rail is energized.
	CapPower
)

// Has returns true if all the capabilities in mask are included in c.
func (c Capability) Has(mask Capability) bool {
	return c&mask == mask
}

// String returns a human-readable list of the capabilities in c.
func (c Capability) String() string {
	if c == 0 {
		return "none"
	}

	names := make([]string, 0, 3)
	if c.Has(CapAccess) {
		names = append(names, "access")
	}
	if c.Has(CapContext) {
		names = append(names, "context")
	}
	if c.Has(CapPower) {
		names = append(names, "power")
	}

	return strings.Join(names, "|")
}
