// Copyright © 2026 The qassert authors

package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/luthersystems/qassert/meta"
	"github.com/luthersystems/qassert/metatest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testViper returns an isolated settings store with color disabled and
// wrapping wide enough to keep rendered lines intact.
func testViper(t *testing.T, kv ...interface{}) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.Set(keyColor, "never")
	v.Set(keyWidth, 200)
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i].(string), kv[i+1])
	}
	return v
}

// runCommand executes cmd with args and returns its stdout, stderr and exit
// code.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), exitCode(err)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDescribeCommand_DefaultFlags(t *testing.T) {
	cmd := DescribeCommand()
	assert.Equal(t, "describe [flags] MODULE ID", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"), "missing flag: json")
}

func TestDescribeCommand_Found(t *testing.T) {
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t))), "qep_hsm", "290")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout,
		"error[qep_hsm:290]: QHsm init failure in the initial transition, could not reach initial destination state.\n")
	assert.Contains(t, stdout, "   = help: The HSM state nesting may be too deep or is malformed in some manner.\n")
	assert.Contains(t, stdout, "   = note: see https://www.state-machine.com/qpc/struct_q_hsm.html#ae69df28aa99b6f9db31a0499e5a52622\n")
}

func TestDescribeCommand_ColonForm(t *testing.T) {
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t))), "qf_actq:190")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "error[qf_actq:190]")
}

func TestDescribeCommand_Unknown(t *testing.T) {
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t))), "qf_actq", "110")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "note[qf_actq:110]: no description available for this assertion")
	assert.Contains(t, stdout, "--source")
}

func TestDescribeCommand_BadInvocation(t *testing.T) {
	for _, args := range [][]string{
		{"qf_actq", "abc"},
		{"qf_actq"},
		{},
		{"a", "1", "2"},
	} {
		_, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t))), args...)
		assert.Equal(t, 2, code, "args %q", args)
	}
}

func TestDescribeCommand_JSON(t *testing.T) {
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t))), "--json", "qf_actq", "310")
	require.Equal(t, 0, code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "qf_actq", got["module"])
	assert.Equal(t, float64(310), got["id"])
	assert.Equal(t, true, got["found"])
	assert.NotEmpty(t, got["brief"])
	assert.NotContains(t, got, "url", "absent url is omitted")
}

func TestDescribeCommand_JSONUnknown(t *testing.T) {
	fb := meta.ResolverFunc(func(_ string, _ int, out *meta.Description) bool {
		out.Brief = "scratch"
		return false
	})
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t)), WithFallback(fb)),
		"--json", "app", "1")
	require.Equal(t, 1, code)
	assert.JSONEq(t, `{"module":"app","id":1,"found":false}`, stdout)
}

func TestDescribeCommand_Sources(t *testing.T) {
	path := writeFile(t, "app.yaml", `assertions:
  - module: app_main
    id: 7
    brief: Sensor calibration lost.
`)
	v := testViper(t, keySources, []string{path})
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(v)), "app_main", "7")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "error[app_main:7]: Sensor calibration lost.")
}

func TestDescribeCommand_SourcesDoNotOverrideBuiltin(t *testing.T) {
	path := writeFile(t, "app.yaml", `assertions:
  - module: qf_actq
    id: 190
    brief: Replaced.
`)
	v := testViper(t, keySources, []string{path})
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(v)), "qf_actq", "190")
	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout, "Replaced.")
}

func TestDescribeCommand_MissingSource(t *testing.T) {
	v := testViper(t, keySources, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	_, _, code := runCommand(t, DescribeCommand(WithViper(v)), "qf_actq", "190")
	assert.Equal(t, 2, code)
}

func TestDescribeCommand_WithRegistry(t *testing.T) {
	reg := meta.New(meta.Table{{Module: "app", ID: 1, Description: meta.Description{Brief: "Custom."}}})
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t)), WithRegistry(reg)), "app", "1")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "error[app:1]: Custom.")

	_, _, code = runCommand(t, DescribeCommand(WithViper(testViper(t)), WithRegistry(reg)), "qf_actq", "190")
	assert.Equal(t, 1, code, "injected registry replaces the built-in table")
}

func TestDescribeCommand_WithFallback(t *testing.T) {
	fb := &metatest.Recorder{Found: true, Description: meta.Description{Brief: "From fallback."}}
	stdout, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t)), WithFallback(fb)), "app", "9")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "error[app:9]: From fallback.")
	assert.Equal(t, []metatest.Call{{Module: "app", ID: 9}}, fb.Calls())

	_, _, code = runCommand(t, DescribeCommand(WithViper(testViper(t)), WithFallback(fb)), "qf_actq", "190")
	assert.Equal(t, 0, code)
	assert.Len(t, fb.Calls(), 1, "fallback is not consulted for built-in assertions")
}

func TestDescribeCommand_LogsLookups(t *testing.T) {
	_, stderr, code := runCommand(t, DescribeCommand(WithViper(testViper(t, keyLogLevel, "debug"))), "qf_actq", "190")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "component=describe")
	assert.Contains(t, stderr, "found=true")
}

func TestDescribeCommand_InvalidSettings(t *testing.T) {
	_, _, code := runCommand(t, DescribeCommand(WithViper(testViper(t, keyColor, "sometimes"))), "qf_actq", "190")
	assert.Equal(t, 2, code)
	_, _, code = runCommand(t, DescribeCommand(WithViper(testViper(t, keyLogLevel, "loud"))), "qf_actq", "190")
	assert.Equal(t, 2, code)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(&exitError{code: 1}))
	assert.Equal(t, 2, exitCode(errors.New("unknown flag: --nope")))
	assert.Equal(t, "", (&exitError{code: 1}).Error())

	err := &exitError{code: 2, err: os.ErrNotExist}
	assert.Equal(t, 2, exitCode(fmt.Errorf("wrapped: %w", err)))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
