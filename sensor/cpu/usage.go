package cpu

import (
	"bufio"
	"log"
	"strconv"
	"strings"

	"desktopmonitor/entity"
	"desktopmonitor/util"
)

const (
	// "12:00:01 AM CPU %usr %nice %sys %iowait %irq %soft %steal %guest %gnice %idle"
	mpstatFields  = 13
	mpstatCPU     = 2
	mpstatAllCPUs = "all"
)

// Usage reads the per CPU utilization out of mpstat -P ALL.
type Usage struct {
	log *log.Logger
}

func NewCPUUsage(logger *log.Logger) *Usage {
	return &Usage{log: orDiscard(logger)}
}

// Apply sets the utilization of every processor, in any core, whose id
// matches an mpstat row.
func (c Usage) Apply(table *entity.Table, output string) {
	for id, usage := range c.process(output) {
		table.Each(func(cpu *entity.CPU) {
			if cpu.ID == id {
				cpu.Utilization = usage
			}
		})
	}
}

func (c Usage) process(output string) map[string]float64 {
	usage := make(map[string]float64)
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != mpstatFields || fields[mpstatCPU] == mpstatAllCPUs {
			continue
		}
		id := fields[mpstatCPU]
		if _, err := strconv.Atoi(id); err != nil {
			c.log.Printf("ignoring mpstat row with invalid cpu %q", id)
			continue
		}
		idle, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			c.log.Printf("ignoring mpstat row for cpu %s with invalid idle value: %s", id, err)
			continue
		}
		usage[id] = util.RoundToTwoDecimals(100.0 - idle)
	}
	return usage
}
