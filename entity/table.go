package entity

// Table holds every core discovered in the topology, keyed by core id.
// It is built once and then handed from stage to stage to be enriched.
type Table struct {
	cores map[string]*Core
	order []string
}

func NewTable() *Table {
	return &Table{
		cores: make(map[string]*Core),
	}
}

// AddCore returns the core with the given id, creating it if necessary.
func (t *Table) AddCore(id string) *Core {
	if core, ok := t.cores[id]; ok {
		return core
	}
	core := NewCore(id)
	t.cores[id] = core
	t.order = append(t.order, id)
	return core
}

func (t *Table) Core(id string) (*Core, bool) {
	core, ok := t.cores[id]
	return core, ok
}

// Cores returns all cores in the order they were discovered.
func (t *Table) Cores() []*Core {
	out := make([]*Core, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.cores[id])
	}
	return out
}

// CPUs flattens the table into a single ordered list of processors.
func (t *Table) CPUs() []*CPU {
	var out []*CPU
	for _, core := range t.Cores() {
		out = append(out, core.CPUs()...)
	}
	return out
}

// Each calls fn for every processor in every core.
func (t *Table) Each(fn func(cpu *CPU)) {
	for _, cpu := range t.CPUs() {
		fn(cpu)
	}
}

func (t *Table) Len() int {
	return len(t.order)
}
