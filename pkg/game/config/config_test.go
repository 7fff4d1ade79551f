package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rotanika/pkg/engine/style"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rotanika.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), got)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeManifest(t, `
[project]
name = "rotanika"
version = "0.3.1"

[console]
border_char = "*"
input_color = "bright-yellow"
width = 100
exit_keywords = ["exit", "quit"]
`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "*", got.BorderChar)
	require.Equal(t, "bright-yellow", got.InputColor)
	require.Equal(t, 100, got.Width)
	require.Equal(t, []string{"exit", "quit"}, got.ExitKeywords)
	require.Equal(t, "blue", got.BorderColor)
	require.Equal(t, "> ", got.InputPrefix)
	require.Equal(t, 500*time.Millisecond, got.LoadingInterval())
	require.Equal(t, 1500*time.Millisecond, got.ExitDelay())
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]string{
		"bad toml":       "[console\nborder_char = ",
		"unknown color":  "[console]\nborder_color = \"chartreuse\"",
		"empty border":   "[console]\nborder_char = \"\"",
		"negative width": "[console]\nwidth = -1",
		"zero interval":  "[console]\nloading_interval_ms = 0",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Load(writeManifest(t, body))
			require.Error(t, err)
			require.Equal(t, Default(), got)
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := Default().Palette()
	require.NoError(t, err)
	require.Equal(t, Palette{Border: style.Blue, Dinkus: style.Cyan, Input: style.Green}, p)

	s := Default()
	s.InputColor = ""
	p, err = s.Palette()
	require.NoError(t, err)
	require.Empty(t, p.Input)
}
