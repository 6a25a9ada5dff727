// Copyright © 2026 The qassert authors

package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/luthersystems/qassert/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_All(t *testing.T) {
	stdout, _, code := runCommand(t, ListCommand(WithViper(testViper(t))))
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Len(t, lines, len(meta.QPCPP))
	assert.True(t, strings.HasPrefix(lines[0], "qf_actq:102  "), "got %q", lines[0])
	for _, line := range lines {
		assert.NotContains(t, line, "\t")
	}
}

func TestListCommand_FilterModules(t *testing.T) {
	stdout, _, code := runCommand(t, ListCommand(WithViper(testViper(t))), "qf_defer", "qf_qact")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "qf_defer:210"))
	assert.True(t, strings.HasPrefix(lines[1], "qf_qact:100"))

	stdout, _, code = runCommand(t, ListCommand(WithViper(testViper(t))), "QF_DEFER")
	require.Equal(t, 0, code)
	assert.Empty(t, stdout, "module names match exactly")
}

func TestListCommand_FirstLineOfBrief(t *testing.T) {
	reg := meta.New(meta.Table{
		{Module: "app", ID: 1, Description: meta.Description{Brief: "First line.\nSecond line."}},
	})
	stdout, _, code := runCommand(t, ListCommand(WithViper(testViper(t)), WithRegistry(reg)))
	require.Equal(t, 0, code)
	assert.Equal(t, "app:1  First line.\n", stdout)
}

func TestListCommand_Sources(t *testing.T) {
	path := writeFile(t, "app.hcl", `assertion "app_main" {
  id    = 7
  brief = "Sensor calibration lost."
}
`)
	reg := meta.New(meta.Table{{Module: "lib", ID: 1, Description: meta.Description{Brief: "Library."}}})
	v := testViper(t, keySources, []string{path})
	stdout, _, code := runCommand(t, ListCommand(WithViper(v), WithRegistry(reg)))
	require.Equal(t, 0, code)
	assert.Equal(t, "lib:1       Library.\napp_main:7  Sensor calibration lost. (source)\n", stdout)
}

func TestListCommand_JSON(t *testing.T) {
	path := writeFile(t, "app.yaml", `assertions:
  - module: app_main
    id: 7
    brief: Sensor calibration lost.
`)
	v := testViper(t, keySources, []string{path})
	stdout, _, code := runCommand(t, ListCommand(WithViper(v)), "--json", "qf_defer", "app_main")
	require.Equal(t, 0, code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "qf_defer", got[0]["module"])
	assert.Equal(t, "builtin", got[0]["source"])
	assert.Equal(t, "app_main", got[1]["module"])
	assert.Equal(t, float64(7), got[1]["id"])
	assert.Equal(t, "Sensor calibration lost.", got[1]["brief"])
	assert.Equal(t, "source", got[1]["source"])
}

func TestListCommand_JSONEmpty(t *testing.T) {
	stdout, _, code := runCommand(t, ListCommand(WithViper(testViper(t))), "--json", "nope")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `[]`, stdout)
}

func TestListCommand_BadSource(t *testing.T) {
	path := writeFile(t, "app.toml", "x = 1\n")
	_, _, code := runCommand(t, ListCommand(WithViper(testViper(t, keySources, []string{path}))))
	assert.Equal(t, 2, code)
}
