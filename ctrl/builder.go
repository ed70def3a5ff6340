package ctrl

import (
	"github.com/rs/xid"

	"github.com/fetaleksej/pmc/datarecording"
	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/monitoring"
	"github.com/fetaleksej/pmc/pm"
	"github.com/fetaleksej/pmc/tracing"
)

// Builder can be used to build a controller.
type Builder struct {
	registry       *pm.Registry
	regs           hw.RegisterFile
	seq            hw.PowerSequencer
	monitorOn      bool
	monitorPort    int
	openBrowser    bool
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithRegistry sets the slave registry the controller drives.
func (b Builder) WithRegistry(registry *pm.Registry) Builder {
	b.registry = registry
	return b
}

// WithRegisterFile sets the register file of the controller.
func (b Builder) WithRegisterFile(regs hw.RegisterFile) Builder {
	b.regs = regs
	return b
}

// WithPowerSequencer sets the power-sequencing collaborator.
func (b Builder) WithPowerSequencer(seq hw.PowerSequencer) Builder {
	b.seq = seq
	return b
}

// WithoutMonitoring sets the controller to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowser makes the monitor open its URL in a browser on startup.
func (b Builder) WithBrowser() Builder {
	b.openBrowser = true
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.registry == nil {
		panic("a controller requires a registry")
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the controller.
func (b Builder) Build() *Controller {
	b.parametersMustBeValid()

	c := &Controller{
		id:       xid.New().String(),
		registry: b.registry,
		regs:     b.regs,
		seq:      b.seq,
	}

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "pmc_" + c.id
	}
	c.dataRecorder = datarecording.New(outputPath)

	c.engine = pm.NewEngine(c.registry)

	c.tracer = tracing.NewDBTracer(c.dataRecorder)
	tracing.CollectTrace(c.engine, c.tracer)

	if b.monitorOn {
		c.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			c.monitor.WithPortNumber(b.monitorPort)
		}
		if b.openBrowser {
			c.monitor.WithBrowser()
		}
		c.monitor.RegisterEngine(c.engine)
		c.monitor.RegisterRegistry(c.registry)
		c.monitor.StartServer()
	}

	return c
}
