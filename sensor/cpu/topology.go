package cpu

import (
	"io"
	"log"
	"strconv"

	"desktopmonitor/entity"
)

const (
	keyProcessor  = "processor"
	keyCoreID     = "core id"
	keyPhysicalID = "physical id"
	keyModelName  = "model name"
	keyCPUMHz     = "cpu MHz"
)

var cpuinfoChunker = Chunker{
	Delimiter: ":",
	IsStart:   func(key string) bool { return key == keyProcessor },
}

// Topology builds the core/processor table out of /proc/cpuinfo.
type Topology struct {
	log *log.Logger
}

func NewTopology(logger *log.Logger) *Topology {
	return &Topology{log: orDiscard(logger)}
}

// Parse returns a table with one Core per distinct core id. Blocks that miss
// any of the required fields are left out.
func (t Topology) Parse(output string) *entity.Table {
	table := entity.NewTable()
	chunks := cpuinfoChunker.Split(output)
	for _, chunk := range chunks {
		if coreID, ok := chunk[keyCoreID]; ok {
			table.AddCore(coreID)
		}
	}
	for _, chunk := range chunks {
		cpu, ok := t.process(chunk)
		if !ok {
			continue
		}
		core, _ := table.Core(cpu.CoreID)
		core.Put(cpu)
	}
	return table
}

func (t Topology) process(chunk Chunk) (entity.CPU, bool) {
	var cpu entity.CPU
	for _, key := range []string{keyCoreID, keyProcessor, keyPhysicalID, keyModelName, keyCPUMHz} {
		if _, ok := chunk[key]; !ok {
			t.log.Printf("ignoring processor %q without %q", chunk[keyProcessor], key)
			return cpu, false
		}
	}
	mhz, err := strconv.ParseFloat(chunk[keyCPUMHz], 64)
	if err != nil {
		t.log.Printf("ignoring processor %q with invalid frequency: %s", chunk[keyProcessor], err)
		return cpu, false
	}
	cpu = entity.CPU{
		ID:               chunk[keyProcessor],
		PhysicalID:       chunk[keyPhysicalID],
		CoreID:           chunk[keyCoreID],
		ModelName:        chunk[keyModelName],
		CurrentFrequency: mhz,
	}
	return cpu, true
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return logger
}
