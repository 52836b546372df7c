package entity

// CPU is a single logical processor as reported by /proc/cpuinfo.
// Frequencies are in MHz, the temperature in °C and the utilization in percent.
type CPU struct {
	ID               string  `json:"id"`
	PhysicalID       string  `json:"physical_id"`
	CoreID           string  `json:"core_id"`
	ModelName        string  `json:"model_name"`
	MinimumFrequency float64 `json:"minimum_frequency"`
	MaximumFrequency float64 `json:"maximum_frequency"`
	CurrentFrequency float64 `json:"current_frequency"`
	Temperature      float64 `json:"temperature"`
	Utilization      float64 `json:"utilization"`
}

// Core groups all processors that share the same core id.
type Core struct {
	ID    string
	cpus  map[string]*CPU
	order []string
}

func NewCore(id string) *Core {
	return &Core{
		ID:   id,
		cpus: make(map[string]*CPU),
	}
}

// Put stores the processor under its id. An existing entry with the same id
// is replaced but keeps its position.
func (c *Core) Put(cpu CPU) {
	if _, ok := c.cpus[cpu.ID]; !ok {
		c.order = append(c.order, cpu.ID)
	}
	c.cpus[cpu.ID] = &cpu
}

func (c *Core) CPU(id string) (*CPU, bool) {
	cpu, ok := c.cpus[id]
	return cpu, ok
}

// CPUs returns the processors in the order they were first added.
func (c *Core) CPUs() []*CPU {
	out := make([]*CPU, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.cpus[id])
	}
	return out
}

func (c *Core) Len() int {
	return len(c.order)
}
