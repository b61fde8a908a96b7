package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/nmeilick/durflex/duration"
	"github.com/nmeilick/durflex/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "durflex.hcl")
	src := `
defaults {
  offset   = "1w"
  location = "UTC"
  output   = "json"
}

store {
  path = "` + filepath.ToSlash(filepath.Join(dir, "aliases.db")) + `"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"durflex", "--config", cfgPath}, args...))
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "parse", "1w8d3h4m3605s", "5s")
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2w1d4h4m5s", got[0]["canonical"])
	assert.Equal(t, "5s", got[1]["canonical"])
	assert.Equal(t, float64(5), got[1]["seconds"])
}

func TestParseCommandInvalid(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "parse", "5s5d")
	assert.Error(t, err)

	_, err = run(t, cfg, "parse")
	assert.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "--output", "yaml", "format", "1301045")
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2w1d3h4m5s", got[0]["canonical"])

	_, err = run(t, cfg, "format", "-5")
	assert.Error(t, err)

	_, err = run(t, cfg, "format", "ten")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestConvertCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "--output", "table", "convert", "1.5h")
	require.NoError(t, err)
	assert.Contains(t, out, "1h30m")
	assert.Contains(t, out, "5,400")
}

func TestConvertCommandNegative(t *testing.T) {
	cfg := writeConfig(t)

	for _, format := range []string{"table", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			_, err := run(t, cfg, "--output", format, "convert", "--", "-5m")
			assert.ErrorIs(t, err, duration.ErrNegative)
		})
	}
}

func TestShiftCommand(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "shift", "--from", "2024-02-27T22:15:00Z", "1w2d3h")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-03-08T01:15:00Z", got["to"])
	assert.Equal(t, "1w2d3h", got["offset"])
	assert.Equal(t, "forward", got["direction"])

	out, err = run(t, cfg, "shift", "--from", "2024-02-27T22:15:00Z", "--subtract", "--offset", "1d")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-02-26T22:15:00Z", got["to"])
	assert.Equal(t, "backward", got["direction"])
}

func TestShiftCommandDefaultOffset(t *testing.T) {
	cfg := writeConfig(t)

	fixed := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	shift.Now = func() time.Time { return fixed }
	t.Cleanup(func() { shift.Now = time.Now })

	out, err := run(t, cfg, "shift")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2026-10-25T09:00:00Z", got["to"])
	assert.Equal(t, "1w", got["offset"])
}

func TestShiftCommandInvalidOffset(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "shift", "--offset", "1y")
	assert.Error(t, err)

	_, err = run(t, cfg, "shift", "5s5d")
	assert.Error(t, err)

	_, err = run(t, cfg, "shift", "--from", "2000-01-01T00:00:00Z", "9223372036854775807s")
	assert.ErrorIs(t, err, duration.ErrOutOfRange)
}

func TestAliasCommands(t *testing.T) {
	cfg := writeConfig(t)

	_, err := run(t, cfg, "alias", "set", "sprint", "1w8d")
	require.NoError(t, err)

	out, err := run(t, cfg, "alias", "get", "sprint")
	require.NoError(t, err)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "sprint", got[0]["name"])
	assert.Equal(t, "2w1d", got[0]["duration"])

	_, err = run(t, cfg, "alias", "rm", "sprint")
	require.NoError(t, err)

	_, err = run(t, cfg, "alias", "get", "sprint")
	assert.Error(t, err)

	_, err = run(t, cfg, "alias", "set", "bad", "5s5d")
	assert.Error(t, err)
}

func TestSetupSampleConfig(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, cfg, "setup", "sample-config")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults {")

	out, err = run(t, cfg, "setup", "config-path")
	require.NoError(t, err)
	assert.Equal(t, cfg+"\n", out)
}
