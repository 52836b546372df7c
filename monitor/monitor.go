package monitor

import (
	"context"
	"fmt"
	"io"
	"log"

	"desktopmonitor/entity"
	"desktopmonitor/sensor"
	"desktopmonitor/sensor/cpu"
)

// Commands contains the command line of every data source.
type Commands struct {
	CPUInfo  string `toml:"cpuinfo"`
	CPUPower string `toml:"cpupower"`
	Sensors  string `toml:"sensors"`
	MPStat   string `toml:"mpstat"`
}

func DefaultCommands() Commands {
	return Commands{
		CPUInfo:  "cat /proc/cpuinfo",
		CPUPower: "cpupower frequency-info",
		Sensors:  "sensors",
		MPStat:   "mpstat -P ALL",
	}
}

// WithDefaults fills every empty command line with its default.
func (c Commands) WithDefaults() Commands {
	d := DefaultCommands()
	if c.CPUInfo == "" {
		c.CPUInfo = d.CPUInfo
	}
	if c.CPUPower == "" {
		c.CPUPower = d.CPUPower
	}
	if c.Sensors == "" {
		c.Sensors = d.Sensors
	}
	if c.MPStat == "" {
		c.MPStat = d.MPStat
	}
	return c
}

// enricher adds data from one source to an existing table.
type enricher interface {
	Apply(table *entity.Table, output string)
}

type stage struct {
	command  entity.Command
	enricher enricher
}

// Monitor runs all data sources one after another and merges their output.
type Monitor struct {
	executor sensor.Executor
	topology entity.Command
	stages   []stage
	log      *log.Logger
}

func New(executor sensor.Executor, commands Commands, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	commands = commands.WithDefaults()
	return &Monitor{
		executor: executor,
		topology: entity.ParseCommand(commands.CPUInfo),
		stages: []stage{
			{command: entity.ParseCommand(commands.CPUPower), enricher: cpu.NewFrequencyRange(logger)},
			{command: entity.ParseCommand(commands.Sensors), enricher: cpu.NewCPUTemp(logger)},
			{command: entity.ParseCommand(commands.MPStat), enricher: cpu.NewCPUUsage(logger)},
		},
		log: logger,
	}
}

// Collect builds the processor table. The first failing command aborts the
// run and no table is returned.
func (m *Monitor) Collect(ctx context.Context) (*entity.Table, error) {
	output, err := m.run(ctx, m.topology)
	if err != nil {
		return nil, err
	}
	table := cpu.NewTopology(m.log).Parse(output)
	for _, s := range m.stages {
		output, err = m.run(ctx, s.command)
		if err != nil {
			return nil, err
		}
		s.enricher.Apply(table, output)
	}
	return table, nil
}

// Report collects the table and turns it into the printable report.
func (m *Monitor) Report(ctx context.Context) (entity.Report, error) {
	table, err := m.Collect(ctx)
	if err != nil {
		return entity.Report{}, err
	}
	return entity.NewReport(table), nil
}

func (m *Monitor) run(ctx context.Context, command entity.Command) (string, error) {
	m.log.Printf("running %s", command)
	output, err := m.executor.Execute(ctx, command)
	if err != nil {
		return "", fmt.Errorf("failed to collect cpu info: %w", err)
	}
	return output, nil
}
