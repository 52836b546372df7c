package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_Order(t *testing.T) {
	table := NewTable()
	table.AddCore("3").Put(CPU{ID: "6", CoreID: "3"})
	table.AddCore("0").Put(CPU{ID: "0", CoreID: "0"})
	table.AddCore("3").Put(CPU{ID: "7", CoreID: "3"})
	table.AddCore("3").Put(CPU{ID: "6", CoreID: "3", ModelName: "replaced"})

	require.Equal(t, 2, table.Len())
	var ids []string
	for _, cpu := range table.CPUs() {
		ids = append(ids, cpu.ID)
	}
	require.Equal(t, []string{"6", "7", "0"}, ids)
	require.Equal(t, "replaced", table.CPUs()[0].ModelName)

	_, ok := table.Core("1")
	require.False(t, ok)
}

func TestTable_Each(t *testing.T) {
	table := NewTable()
	table.AddCore("0").Put(CPU{ID: "0"})
	table.AddCore("1").Put(CPU{ID: "1"})
	table.Each(func(cpu *CPU) { cpu.Temperature = 29.8 })

	for _, cpu := range table.CPUs() {
		require.Equal(t, 29.8, cpu.Temperature)
	}
}

func TestReport_Empty(t *testing.T) {
	b, err := NewReport(NewTable()).JSON()
	require.NoError(t, err)
	require.Equal(t, "{\n  \"cpus\": []\n}", string(b))
}

func TestParseCommand(t *testing.T) {
	cmd := ParseCommand("  mpstat  -P ALL ")
	require.Equal(t, Command{Name: "mpstat", Args: []string{"-P", "ALL"}}, cmd)
	require.Equal(t, "mpstat -P ALL", cmd.String())
	require.False(t, cmd.IsZero())

	require.True(t, ParseCommand("   ").IsZero())
	require.Equal(t, "sensors", ParseCommand("sensors").String())
}
