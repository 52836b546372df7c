package cpu

import (
	"log"
	"strconv"
	"strings"

	"desktopmonitor/entity"
)

const (
	prefixAnalyzingCPU = "analyzing CPU"
	keyHardwareLimits  = "hardware limits"

	unitMHz = "MHz"
	unitGHz = "GHz"
	// TODO: confirm 1024 with report consumers, SI would be 1000.
	mhzPerGHz = 1024.0
)

var cpupowerChunker = Chunker{
	Delimiter: ":",
	IsStart:   func(key string) bool { return strings.HasPrefix(key, prefixAnalyzingCPU) },
}

// FrequencyRange fills in the hardware limits reported by cpupower frequency-info.
type FrequencyRange struct {
	log *log.Logger
}

func NewFrequencyRange(logger *log.Logger) *FrequencyRange {
	return &FrequencyRange{log: orDiscard(logger)}
}

// Apply sets the minimum and maximum frequency of every processor whose
// physical id matches an analyzed CPU block.
func (f FrequencyRange) Apply(table *entity.Table, output string) {
	for _, chunk := range cpupowerChunker.Split(output) {
		header, ok := chunk.Header(prefixAnalyzingCPU)
		if !ok {
			continue
		}
		physicalID := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(header, prefixAnalyzingCPU), ":", ""))
		limits, ok := chunk[keyHardwareLimits]
		if !ok {
			f.log.Printf("ignoring CPU %s without hardware limits", physicalID)
			continue
		}
		low, high, ok := strings.Cut(limits, "-")
		if !ok {
			f.log.Printf("ignoring CPU %s with invalid hardware limits: %s", physicalID, limits)
			continue
		}
		minimum := ParseFrequency(strings.TrimSpace(low))
		maximum := ParseFrequency(strings.TrimSpace(high))
		table.Each(func(cpu *entity.CPU) {
			if cpu.PhysicalID == physicalID {
				cpu.MinimumFrequency = minimum
				cpu.MaximumFrequency = maximum
			}
		})
	}
}

// ParseFrequency converts values such as "800 MHz" or "4.67 GHz" to MHz.
// Anything else, including unparseable numbers, is 0.
func ParseFrequency(raw string) float64 {
	var factor float64
	switch {
	case strings.Contains(raw, unitMHz):
		raw = strings.ReplaceAll(raw, unitMHz, "")
		factor = 1
	case strings.Contains(raw, unitGHz):
		raw = strings.ReplaceAll(raw, unitGHz, "")
		factor = mhzPerGHz
	default:
		return 0
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value * factor
}
