package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/estkit"
	"github.com/katalvlaran/estkit/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "disabled")

	var out, errOut bytes.Buffer
	cmd := newApp(&out, &errOut).rootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// TestCLI_Text checks the plain-text output of each command.
func TestCLI_Text(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"mixed", "parse", "2-3/4", "1/8"}, "2.75\n0.125\n"},
		{[]string{"mixed", "format", "0.3", "2"}, "5/16\n2\n"},
		{[]string{"gauge", "parse", "#12"}, "0.0808\n"},
		{[]string{"gauge", "format", "0.46", "0.4601"}, "4/0 AWG\n212 kcmil\n"},
		{[]string{"gauge", "canonical", "250 MCM"}, "250 kcmil\n"},
		{[]string{"gauge", "lookup", "#4/0"}, "4/0 AWG    0.4600 in\n"},
		{[]string{"column", "encode", "28"}, "AB\n"},
		{[]string{"column", "decode", "xfd"}, "16384\n"},
		{[]string{"ampacity", "lookup", "#12"}, "25.0 A\n"},
		{[]string{"ampacity", "size", "48"}, "8 AWG\n"},
		{[]string{"ampacity", "size", "--material", "al", "--rating", "90", "200"}, "4/0 AWG\n"},
	}
	for _, tc := range cases {
		got, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, got, tc.args)
	}
}

// TestCLI_Lookups checks the multi-line lookup commands.
func TestCLI_Lookups(t *testing.T) {
	got, err := run(t, "conduit", "1/2")
	require.NoError(t, err)
	assert.Contains(t, got, "1/2 EMT (metric 16)")
	assert.Contains(t, got, "wall 0.042 in")

	got, err = run(t, "conduit", "1", "--type", "RMC-PVC")
	require.NoError(t, err)
	assert.Contains(t, got, "OD not published")

	got, err = run(t, "rebar", "#4", "--length", "20")
	require.NoError(t, err)
	assert.Contains(t, got, "#4: 0.500 in")
	assert.Contains(t, got, "13.4 lb")

	got, err = run(t, "starter", "--hp", "25")
	require.NoError(t, err)
	assert.Contains(t, got, "NEMA 1:")

	got, err = run(t, "starter", "NEMA 3", "--volts", "208")
	require.NoError(t, err)
	assert.Contains(t, got, "NEMA 3: 90 A")
}

// TestCLI_JSON emits structured results with --output json.
func TestCLI_JSON(t *testing.T) {
	got, err := run(t, "--output", "json", "mixed", "parse", "1-1/4")
	require.NoError(t, err)

	var res []mixedResult
	require.NoError(t, json.Unmarshal([]byte(got), &res))
	require.Len(t, res, 1)
	assert.Equal(t, mixedResult{Input: "1-1/4", Value: 1.25, Text: "1-1/4"}, res[0])
}

// TestCLI_Tables dumps a snapshot that decodes back.
func TestCLI_Tables(t *testing.T) {
	for _, f := range []refdata.Format{refdata.JSON, refdata.MsgPack} {
		got, err := run(t, "tables", "--output", string(f))
		require.NoError(t, err)
		s, err := refdata.Decode(bytes.NewBufferString(got), f)
		require.NoError(t, err, f)
		assert.Equal(t, refdata.Build(), s)
	}
}

// TestCLI_Config applies defaults from a config file.
func TestCLI_Config(t *testing.T) {
	path := writeConfig(t, "default_conduit_type = \"PVC\"\noutput = \"json\"\n")
	got, err := run(t, "--config", path, "conduit", "1")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &res))
	assert.Equal(t, "PVC-40", res["type"])
	assert.Equal(t, 27.0, res["designator"])
}

// TestCLI_Errors maps failures to the error classes and exit codes.
func TestCLI_Errors(t *testing.T) {
	cases := []struct {
		args  []string
		class error
		code  int
	}{
		{[]string{"mixed", "parse", "3/0"}, estkit.ErrDomain, exitDomain},
		{[]string{"mixed", "format", "abc"}, estkit.ErrFormat, exitFormat},
		{[]string{"gauge", "parse", "bogus"}, estkit.ErrFormat, exitFormat},
		{[]string{"gauge", "lookup", "5 AWG"}, estkit.ErrLookup, exitLookup},
		{[]string{"column", "encode", "0"}, estkit.ErrDomain, exitDomain},
		{[]string{"conduit", "7"}, estkit.ErrLookup, exitLookup},
		{[]string{"ampacity", "lookup", "--ambient", "80", "#12"}, estkit.ErrDomain, exitDomain},
		{[]string{"rebar", "#12"}, estkit.ErrLookup, exitLookup},
		{[]string{"starter", "--amps", "5000"}, estkit.ErrLookup, exitLookup},
		{[]string{"conduit", "1", "--length", "-10"}, estkit.ErrDomain, exitDomain},
		{[]string{"labor", "--", "-5"}, estkit.ErrDomain, exitDomain},
		{[]string{"labor", "8", "--height", "-1"}, estkit.ErrDomain, exitDomain},
		{[]string{"labor", "8", "--runs", "0"}, estkit.ErrDomain, exitDomain},
	}
	for _, tc := range cases {
		_, err := run(t, tc.args...)
		require.Error(t, err, tc.args)
		assert.ErrorIs(t, err, tc.class, tc.args)
		assert.Equal(t, tc.code, exitCode(err), tc.args)
	}

	_, err := run(t, "starter")
	assert.Equal(t, exitOther, exitCode(err))

	_, err = run(t, "--output", "xml", "mixed", "parse", "1")
	assert.Equal(t, exitOther, exitCode(err))
}

// TestCLI_Rollup totals a cost-code file.
func TestCLI_Rollup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "takeoff.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"# labor hours\n"+
			"Electrical > Power > Feeders, 36\n"+
			"Electrical > Power > Branch, 52\n"+
			"\n"+
			"Electrical > Lighting, 24\n"), 0o600))

	got, err := run(t, "rollup", "--depth", "1", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Electrical "))
	assert.True(t, strings.HasSuffix(lines[0], "112.00"))
	assert.True(t, strings.HasPrefix(lines[2], "  Power "))
	assert.True(t, strings.HasSuffix(lines[2], "88.00"))
	assert.True(t, strings.HasPrefix(lines[3], "TOTAL"))

	got, err = run(t, "--output", "json", "rollup", path)
	require.NoError(t, err)
	var res []rollupEntry
	require.NoError(t, json.Unmarshal([]byte(got), &res))
	require.Len(t, res, 5)
	assert.Equal(t, rollupEntry{Path: []string{"Electrical", "Power", "Branch"}, Own: 52, Total: 52}, res[3])

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("Electrical, lots\n"), 0o600))
	_, err = run(t, "rollup", bad)
	assert.ErrorIs(t, err, estkit.ErrFormat)
	assert.Contains(t, err.Error(), "line 1")
}

// TestCLI_Labor applies factors and logs each warning at warn level.
func TestCLI_Labor(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogNoColor, "true")

	var out, errOut bytes.Buffer
	cmd := newApp(&out, &errOut).rootCmd()
	cmd.SetArgs([]string{"--output", "json", "labor", "10", "--height", "20", "--runs", "2", "--rh", "50"})
	require.NoError(t, cmd.Execute())

	var res laborResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 10.0, res.Hours)
	require.Len(t, res.Factors, 3)
	assert.InDelta(t, 10.8876, res.Adjusted, 1e-4)
	assert.Equal(t, []string{"ambient relative humidity factor is not implemented"}, res.Warnings)

	logs := errOut.String()
	assert.Contains(t, logs, "WRN")
	assert.Contains(t, logs, "ambient relative humidity factor is not implemented")

	got, err := run(t, "labor", "8")
	require.NoError(t, err)
	assert.Equal(t, "8.00 h x1.000 = 8.00 h\n", got)

	got, err = run(t, "labor", "8", "--height", "60")
	require.NoError(t, err)
	assert.Contains(t, got, "warning: mounting height 60 exceeds recommended range (>50)")
}
