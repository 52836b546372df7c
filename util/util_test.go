package util

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundToTwoDecimals(t *testing.T) {
	require.Equal(t, 1.13, RoundToTwoDecimals(100.0-98.87))
	require.Equal(t, 33.33, RoundToTwoDecimals(100.0/3))
	require.Equal(t, 0.12, RoundToTwoDecimals(0.125))
	require.Equal(t, float64(0), RoundToTwoDecimals(0))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o600))

	exists, err := FileExists(file)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = FileExists(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestHomePath(t *testing.T) {
	usr, err := user.Current()
	require.NoError(t, err)

	h, err := NewHomePath("~/.config/desktopmonitor.toml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(usr.HomeDir, ".config/desktopmonitor.toml"), h.Path)

	h, err = NewHomePath("/etc/desktopmonitor.toml")
	require.NoError(t, err)
	require.Equal(t, "/etc/desktopmonitor.toml", h.String())
}
