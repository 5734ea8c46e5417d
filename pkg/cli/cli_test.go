/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vengine/sysprobe/pkg/collector/hardware"
	"github.com/vengine/sysprobe/pkg/env"
	"github.com/vengine/sysprobe/pkg/snapshot"
)

type fakeProvider struct{}

func (fakeProvider) Refresh(context.Context) (hardware.Reading, error) {
	return hardware.Reading{
		TotalKB: 2048,
		UsedKB:  512,
		CPUs:    []hardware.CPU{{Brand: "Test CPU"}, {Brand: "Test CPU"}},
	}, nil
}

type fakeGPUs []string

func (f fakeGPUs) Enumerate(context.Context) []string { return f }

func testSnapshotOptions() []snapshot.Option {
	return []snapshot.Option{
		snapshot.WithEnvLookup(env.MapLookup(map[string]string{
			"HOME":     "/home/tester",
			"USER":     "tester",
			"HOSTNAME": "box",
			"SHELL":    "/bin/sh",
		})),
		snapshot.WithWorkingDir(func() (string, error) { return "/work", nil }),
		snapshot.WithTempDir(func() string { return "/tmp" }),
		snapshot.WithPlatform("linux", "amd64"),
		snapshot.WithHardwareProvider(fakeProvider{}),
		snapshot.WithGPUEnumerator(fakeGPUs{"GPU A", "GPU B"}),
	}
}

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	// keep the developer's home config out of the run
	t.Setenv("HOME", t.TempDir())
	return newRootCmd(testSnapshotOptions()...).Run(context.Background(), append([]string{name}, args...))
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRootCmd_Metadata(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, name, cmd.Name)
	assert.Equal(t, version, cmd.Version)
	assert.NotEmpty(t, cmd.Usage)
	assert.Empty(t, cmd.Commands)

	flags := map[string]bool{}
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			flags[n] = true
		}
	}
	for _, want := range []string{"config", "log-level", "format", "output", "timeout"} {
		assert.True(t, flags[want], "missing flag %q", want)
	}
}

func TestRootCmd_ReportToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, runRoot(t, "--output", out))

	got := readOutput(t, out)
	assert.True(t, strings.HasPrefix(got, "System Information\n"))
	assert.Contains(t, got, "OS           : linux (x86_64)")
	assert.Contains(t, got, "User         : tester")
	assert.Contains(t, got, "RAM Usage    : 25.00 %")
	assert.Contains(t, got, "GPUs         : GPU A, GPU B")
}

func TestRootCmd_TableFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "table.txt")

	require.NoError(t, runRoot(t, "--format", "table", "--output", out))

	got := readOutput(t, out)
	assert.Contains(t, got, "FIELD")
	assert.Contains(t, got, "Hostname")
	assert.Contains(t, got, "box")
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	err := runRoot(t, "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRootCmd_NegativeTimeout(t *testing.T) {
	err := runRoot(t, "--timeout=-1s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config.txt")
	cfgPath := filepath.Join(dir, "sysprobe.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: table\noutput: "+out+"\n"), 0o600))

	require.NoError(t, runRoot(t, "--config", cfgPath))
	assert.Contains(t, readOutput(t, out), "FIELD")
}

func TestRootCmd_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "override.txt")
	cfgPath := filepath.Join(dir, "sysprobe.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: table\n"), 0o600))

	require.NoError(t, runRoot(t, "--config", cfgPath, "--format", "report", "--output", out))
	assert.True(t, strings.HasPrefix(readOutput(t, out), "System Information\n"))
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	err := runRoot(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestRootCmd_HomeConfigFile(t *testing.T) {
	home := t.TempDir()
	out := filepath.Join(home, "home.txt")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".sysprobe.yaml"),
		[]byte("format: table\noutput: "+out+"\n"), 0o600))
	t.Setenv("HOME", home)

	cmd := newRootCmd(testSnapshotOptions()...)
	require.NoError(t, cmd.Run(context.Background(), []string{name}))
	assert.Contains(t, readOutput(t, out), "FIELD")
}
