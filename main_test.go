package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"desktopmonitor/monitor"
	"desktopmonitor/sensor"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "desktopmonitor.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := loadConfig("")
	require.NoError(t, err)
	require.False(t, config.Verbose)
	require.Equal(t, monitor.DefaultCommands(), config.Commands)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
		verbose = true

		[commands]
		cpupower = "sudo cpupower frequency-info"
		mpstat = "mpstat -P ALL 1 1"
	`)
	config, err := loadConfig(path)
	require.NoError(t, err)
	require.True(t, config.Verbose)
	require.Equal(t, monitor.Commands{
		CPUInfo:  "cat /proc/cpuinfo",
		CPUPower: "sudo cpupower frequency-info",
		Sensors:  "sensors",
		MPStat:   "mpstat -P ALL 1 1",
	}, config.Commands)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")

	_, err = loadConfig(writeConfig(t, `[commands`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")
}

func testConfig() Config {
	return Config{Commands: monitor.Commands{
		CPUInfo:  "cat monitor/testdata/cpuinfo.stdout",
		CPUPower: "cat monitor/testdata/cpupower.stdout",
		Sensors:  "cat monitor/testdata/sensors.stdout",
		MPStat:   "cat monitor/testdata/mpstat.stdout",
	}}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), sensor.NewShellExecutor(), testConfig(), nil, &out)
	require.NoError(t, err)

	var res struct {
		CPUs []map[string]interface{} `json:"cpus"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.CPUs, 8)
	require.EqualValues(t, map[string]interface{}{
		"id":                "0",
		"physical_id":       "0",
		"core_id":           "0",
		"model_name":        "AMD Ryzen 7 5700G with Radeon Graphics",
		"minimum_frequency": 1433.6,
		"maximum_frequency": 4782.08,
		"current_frequency": 2853.877,
		"temperature":       29.8,
		"utilization":       1.13,
	}, res.CPUs[0])
}

func TestRun_CommandFailure(t *testing.T) {
	config := testConfig()
	config.Commands.MPStat = "false"

	var out bytes.Buffer
	err := run(context.Background(), sensor.NewShellExecutor(), config, nil, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "false did not run successfully")
	require.Empty(t, out.String())
}
