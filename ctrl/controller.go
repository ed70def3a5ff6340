// Package ctrl bundles the pieces of a power-management control process:
// the slave registry, the transition engine, the hardware collaborators,
// and the observability services around them.
package ctrl

import (
	"github.com/fetaleksej/pmc/datarecording"
	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/monitoring"
	"github.com/fetaleksej/pmc/pm"
	"github.com/fetaleksej/pmc/tracing"
)

// A Controller provides the services required to run a power-management
// control process.
type Controller struct {
	id string

	registry *pm.Registry
	engine   *pm.Engine
	regs     hw.RegisterFile
	seq      hw.PowerSequencer

	dataRecorder datarecording.DataRecorder
	tracer       *tracing.DBTracer
	monitor      *monitoring.Monitor
}

// ID returns the unique id of the controller session.
func (c *Controller) ID() string {
	return c.id
}

// Registry returns the slave registry of the controller.
func (c *Controller) Registry() *pm.Registry {
	return c.registry
}

// Engine returns the transition engine of the controller.
func (c *Controller) Engine() *pm.Engine {
	return c.engine
}

// RegisterFile returns the register file the controller writes through.
func (c *Controller) RegisterFile() hw.RegisterFile {
	return c.regs
}

// PowerSequencer returns the power-sequencing collaborator.
func (c *Controller) PowerSequencer() hw.PowerSequencer {
	return c.seq
}

// DataRecorder returns the data recorder used by the controller.
func (c *Controller) DataRecorder() datarecording.DataRecorder {
	return c.dataRecorder
}

// Monitor returns the monitor of the controller. It is nil when
// monitoring is disabled.
func (c *Controller) Monitor() *monitoring.Monitor {
	return c.monitor
}

// Terminate flushes and closes the controller's data recorder.
func (c *Controller) Terminate() {
	c.dataRecorder.Close()
}
