// Package monitoring turns a running power-management controller into an
// HTTP server, so that bank states, requirements, and power accounting can
// be inspected from outside the process.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/fetaleksej/pmc/pm"
)

// Monitor exposes a controller's registry and engine over HTTP.
type Monitor struct {
	engine      *pm.Engine
	registry    *pm.Registry
	portNumber  int
	openBrowser bool
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser makes StartServer open the monitor URL in a browser.
func (m *Monitor) WithBrowser() *Monitor {
	m.openBrowser = true
	return m
}

// RegisterEngine registers the transition engine to be monitored.
func (m *Monitor) RegisterEngine(e *pm.Engine) {
	m.engine = e
}

// RegisterRegistry registers the slave registry to be monitored.
func (m *Monitor) RegisterRegistry(r *pm.Registry) {
	m.registry = r
}

func (m *Monitor) createRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/banks", m.listBanks)
	r.HandleFunc("/api/bank/{name}", m.bankDetails)
	r.HandleFunc("/api/bank/{name}/state", m.bankState)
	r.HandleFunc("/api/bank/{name}/requirements", m.bankRequirements)
	r.HandleFunc("/api/snapshot", m.snapshot)
	r.HandleFunc("/api/power", m.totalPower)
	r.HandleFunc("/api/resource", m.listResources)

	return r
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	http.Handle("/", m.createRouter())

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring controller with %s\n", url)

	if m.openBrowser {
		err := browser.OpenURL(url)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
		}
	}

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

func (m *Monitor) listBanks(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, s := range m.registry.All() {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", s.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) findBankOr404(
	w http.ResponseWriter,
	name string,
) *pm.Slave {
	s, found := m.registry.GetByName(name)
	if !found {
		w.WriteHeader(404)
		return nil
	}

	return s
}

func (m *Monitor) bankDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s := m.findBankOr404(w, name)
	if s == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(s)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type bankStateRsp struct {
	Node         int    `json:"node"`
	State        string `json:"state"`
	Capabilities string `json:"capabilities"`
	Power        uint32 `json:"power"`
}

func (m *Monitor) bankState(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s := m.findBankOr404(w, name)
	if s == nil {
		return
	}

	state := m.engine.CurrentState(s.ID())
	rsp := bankStateRsp{
		Node:         int(s.ID()),
		State:        state.String(),
		Capabilities: m.engine.Capabilities(s.ID(), state).String(),
		Power:        uint32(s.PowerAt(state)),
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type requirementRsp struct {
	Master       int    `json:"master"`
	Capabilities string `json:"capabilities"`
}

func (m *Monitor) bankRequirements(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s := m.findBankOr404(w, name)
	if s == nil {
		return
	}

	records := s.Requirements().Records()
	rsp := make([]requirementRsp, 0, len(records))
	for _, rec := range records {
		rsp = append(rsp, requirementRsp{
			Master:       int(rec.Master),
			Capabilities: rec.Caps.String(),
		})
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) snapshot(w http.ResponseWriter, _ *http.Request) {
	bytes, err := json.Marshal(m.registry.Snapshot())
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type powerRsp struct {
	Total uint32            `json:"total"`
	Banks map[string]uint32 `json:"banks"`
}

func (m *Monitor) totalPower(w http.ResponseWriter, _ *http.Request) {
	rsp := powerRsp{Banks: make(map[string]uint32)}

	for _, s := range m.registry.All() {
		p := uint32(s.PowerAt(s.CurrentState()))
		rsp.Banks[s.Name()] = p
		rsp.Total += p
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
