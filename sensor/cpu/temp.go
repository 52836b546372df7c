package cpu

import (
	"bufio"
	"log"
	"strconv"
	"strings"

	"desktopmonitor/entity"
)

const degreesCelsius = "°C"

// Sensor labels in order of preference. Tctl is reported by k10temp on AMD,
// "CPU Temperature" by a number of board drivers.
var tempKeys = []string{"Tctl", "CPU Temperature"}

// Temp reads the CPU temperature out of lm-sensors output.
type Temp struct {
	log *log.Logger
}

func NewCPUTemp(logger *log.Logger) *Temp {
	return &Temp{log: orDiscard(logger)}
}

// Apply writes the system wide temperature onto every processor. Processors
// keep their temperature if no known sensor label is present.
func (c Temp) Apply(table *entity.Table, output string) {
	temp, ok := c.process(output)
	if !ok {
		c.log.Printf("ignoring lm-sensors output without any of %q", tempKeys)
		return
	}
	table.Each(func(cpu *entity.CPU) {
		cpu.Temperature = temp
	})
}

func (c Temp) process(output string) (float64, bool) {
	found := make(map[string]string)
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		key, value, ok := splitLine(sc.Text(), ":")
		if !ok {
			continue
		}
		if _, seen := found[key]; !seen {
			found[key] = value
		}
	}
	for _, key := range tempKeys {
		if value, ok := found[key]; ok {
			return ParseTemperature(value), true
		}
	}
	return 0, false
}

// ParseTemperature parses readings like "+29.8°C  (high = +70.0°C)".
func ParseTemperature(raw string) float64 {
	fields := strings.Fields(raw)
	if len(fields) == 0 || !strings.HasSuffix(fields[0], degreesCelsius) {
		return 0
	}
	value := strings.TrimPrefix(strings.TrimSuffix(fields[0], degreesCelsius), "+")
	temp, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return temp
}
