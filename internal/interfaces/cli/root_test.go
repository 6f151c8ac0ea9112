package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color", "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "bondlab", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"relax", "elements", "presets", "place", "serve", "watch", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}

	for _, flag := range []string{"config", "log-level", "output", "verbose", "no-color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestRoot_RejectsUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "elements", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "elements", "-c", t.TempDir()+"/absent.yaml")
	require.Error(t, err)
}

func TestGetCLIContext_Missing(t *testing.T) {
	_, err := GetCLIContext(&cobra.Command{})
	assert.Error(t, err)
}

func TestVersionCmd_JSON(t *testing.T) {
	out, err := execute(t, "version", "-o", "json")
	require.NoError(t, err)

	var info BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
}

func TestElementsCmd_Table(t *testing.T) {
	out, err := execute(t, "elements")
	require.NoError(t, err)
	assert.Contains(t, out, "Chlorine")
	assert.Contains(t, out, "Lone pairs")
}

func TestPresetsCmd_JSON(t *testing.T) {
	out, err := execute(t, "presets", "-o", "json")
	require.NoError(t, err)

	var presets []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &presets))
	names := map[string]bool{}
	for _, p := range presets {
		names[p["name"].(string)] = true
	}
	assert.True(t, names["water"])
	assert.True(t, names["ethylene"])
}

//Personal.AI order the ending
