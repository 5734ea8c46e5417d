// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snapshot

import (
	"context"
	stderrors "errors"
	"runtime"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/vengine/sysprobe/pkg/collector"
	"github.com/vengine/sysprobe/pkg/collector/hardware"
	"github.com/vengine/sysprobe/pkg/defaults"
	"github.com/vengine/sysprobe/pkg/env"
	"github.com/vengine/sysprobe/pkg/errors"
)

type fakeProvider struct {
	reading hardware.Reading
	err     error
}

func (f *fakeProvider) Refresh(context.Context) (hardware.Reading, error) {
	return f.reading, f.err
}

type fakeEnumerator struct {
	names []string
}

func (f *fakeEnumerator) Enumerate(context.Context) []string {
	return f.names
}

var posixEnv = map[string]string{
	"HOME":     "/home/ada",
	"USER":     "ada",
	"HOSTNAME": "workstation",
	"SHELL":    "/bin/zsh",
}

func testOptions(vars map[string]string, gpus []string) []Option {
	return []Option{
		WithEnvLookup(env.MapLookup(vars)),
		WithWorkingDir(func() (string, error) { return "/home/ada/src", nil }),
		WithTempDir(func() string { return "/tmp" }),
		WithPlatform("linux", "amd64"),
		WithHardwareProvider(&fakeProvider{reading: hardware.Reading{
			TotalKB: 1000,
			UsedKB:  250,
			CPUs:    []hardware.CPU{{Brand: "Intel(R) Core(TM) i7-9750H"}, {Brand: "Intel(R) Core(TM) i7-9750H"}},
		}}),
		WithGPUEnumerator(&fakeEnumerator{names: gpus}),
	}
}

func TestTryNew(t *testing.T) {
	s, err := TryNew(context.Background(), testOptions(posixEnv, []string{"NVIDIA Corporation TU117 [GeForce GTX 1650]"})...)
	require.NoError(t, err)

	assert.Equal(t, Snapshot{
		CurrentDir: "/home/ada/src",
		HomeDir:    "/home/ada",
		TempDir:    "/tmp",
		Username:   "ada",
		Hostname:   "workstation",
		Shell:      "/bin/zsh",
		OS:         "linux",
		Arch:       "x86_64",
		TotalRAMKB: 1000,
		UsedRAMKB:  250,
		CPUBrand:   "Intel(R) Core(TM) i7-9750H",
		CPUCores:   2,
		GPUNames:   []string{"NVIDIA Corporation TU117 [GeForce GTX 1650]"},
	}, s)
}

func TestTryNew_WindowsEnvironment(t *testing.T) {
	vars := map[string]string{
		"USERPROFILE":  `C:\Users\ada`,
		"USERNAME":     "ada",
		"COMPUTERNAME": "DESKTOP-01",
		"ComSpec":      `C:\Windows\system32\cmd.exe`,
	}

	s, err := TryNew(context.Background(), testOptions(vars, nil)...)
	require.NoError(t, err)

	assert.Equal(t, `C:\Users\ada`, s.HomeDir)
	assert.Equal(t, "ada", s.Username)
	assert.Equal(t, "DESKTOP-01", s.Hostname)
	assert.Equal(t, `C:\Windows\system32\cmd.exe`, s.Shell)
}

func TestTryNew_Failures(t *testing.T) {
	t.Run("working directory", func(t *testing.T) {
		opts := append(testOptions(posixEnv, nil),
			WithWorkingDir(func() (string, error) { return "", stderrors.New("getwd: no such file or directory") }))

		_, err := TryNew(context.Background(), opts...)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeIO))
	})

	t.Run("home directory", func(t *testing.T) {
		vars := map[string]string{"USER": "ada"}

		_, err := TryNew(context.Background(), testOptions(vars, nil)...)
		label, ok := errors.MissingEnvLabel(err)
		require.True(t, ok, "expected MISSING_ENV, got %v", err)
		assert.Equal(t, "HOME/USERPROFILE", label)
	})

	t.Run("username", func(t *testing.T) {
		vars := map[string]string{"HOME": "/root"}

		_, err := TryNew(context.Background(), testOptions(vars, nil)...)
		label, ok := errors.MissingEnvLabel(err)
		require.True(t, ok, "expected MISSING_ENV, got %v", err)
		assert.Equal(t, "USER/USERNAME", label)
	})
}

func TestTryNew_OptionalIdentity(t *testing.T) {
	vars := map[string]string{"HOME": "/home/ada", "USER": "ada"}

	s, err := TryNew(context.Background(), testOptions(vars, nil)...)
	require.NoError(t, err)
	assert.Equal(t, defaults.UnknownHost, s.Hostname)
	assert.Equal(t, defaults.UnknownShell, s.Shell)
}

func TestNew_DegradedOnWorkingDirFailure(t *testing.T) {
	before := testutil.ToFloat64(snapshotConstructionTotal.WithLabelValues(statusDegraded))

	s := New(
		WithEnvLookup(env.MapLookup(posixEnv)),
		WithWorkingDir(func() (string, error) { return "", stderrors.New("removed") }),
		WithGPUEnumerator(&fakeEnumerator{names: []string{"should not be used"}}),
	)

	assert.Equal(t, OSName(runtime.GOOS), s.OS)
	assert.Equal(t, ArchName(runtime.GOARCH), s.Arch)
	assert.NotEmpty(t, s.OS)
	assert.NotEmpty(t, s.Arch)
	assert.Equal(t, defaults.UnknownUser, s.Username)
	assert.Equal(t, defaults.UnknownHost, s.Hostname)
	assert.Equal(t, defaults.UnknownShell, s.Shell)
	assert.Equal(t, defaults.UnknownCPU, s.CPUBrand)
	assert.Equal(t, ".", s.CurrentDir)
	assert.Empty(t, s.HomeDir)
	assert.Zero(t, s.TotalRAMKB)
	assert.Zero(t, s.CPUCores)
	assert.Equal(t, []string{"unknown"}, s.GPUNames)

	after := testutil.ToFloat64(snapshotConstructionTotal.WithLabelValues(statusDegraded))
	assert.Equal(t, before+1, after)
}

func TestNew_DegradedOnMissingEnv(t *testing.T) {
	s := New(
		WithEnvLookup(env.MapLookup(map[string]string{})),
		WithPlatform("windows", "amd64"),
	)

	assert.Equal(t, "windows", s.OS)
	assert.Equal(t, "x86_64", s.Arch)
	assert.Equal(t, defaults.UnknownUser, s.Username)
	assert.Equal(t, []string{"unknown"}, s.GPUNames)
}

func TestNew_Success(t *testing.T) {
	before := testutil.ToFloat64(snapshotConstructionTotal.WithLabelValues(statusSuccess))

	s := New(testOptions(posixEnv, []string{"gpu0"})...)
	assert.Equal(t, "ada", s.Username)

	after := testutil.ToFloat64(snapshotConstructionTotal.WithLabelValues(statusSuccess))
	assert.Equal(t, before+1, after)
}

func TestNew_Host(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host capture in short mode")
	}

	s := New()

	assert.NotEmpty(t, s.OS)
	assert.NotEmpty(t, s.Arch)
	assert.NotEmpty(t, s.GPUNames)

	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		assert.True(t, s.IsWindows() != s.IsUnix(), "exactly one of IsWindows/IsUnix should hold")
	}
}

func TestNew_Concurrent(t *testing.T) {
	var g errgroup.Group
	results := make([]Snapshot, 8)

	for i := range results {
		g.Go(func() error {
			results[i] = New(testOptions(posixEnv, []string{"gpu0"})...)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, s := range results {
		assert.Equal(t, "ada", s.Username)
		assert.Equal(t, []string{"gpu0"}, s.GPUNames)
	}
}

func TestGPUNames_Normalized(t *testing.T) {
	s, err := TryNew(context.Background(), testOptions(posixEnv, []string{})...)
	require.NoError(t, err)
	assert.Equal(t, []string{"unknown"}, s.GPUNames)
}

func TestGPUNames_Owned(t *testing.T) {
	names := []string{"gpu0", "gpu1"}
	s, err := TryNew(context.Background(), testOptions(posixEnv, names)...)
	require.NoError(t, err)

	names[0] = "mutated"
	assert.Equal(t, []string{"gpu0", "gpu1"}, s.GPUNames)
}

func TestHardwareFailureDoesNotDegrade(t *testing.T) {
	opts := append(testOptions(posixEnv, nil),
		WithHardwareProvider(&fakeProvider{err: stderrors.New("no metrics")}))

	s, err := TryNew(context.Background(), opts...)
	require.NoError(t, err)
	assert.Equal(t, "ada", s.Username)
	assert.Zero(t, s.TotalRAMKB)
	assert.Equal(t, defaults.UnknownCPU, s.CPUBrand)
}

func TestDegraded(t *testing.T) {
	s := Degraded()

	assert.Equal(t, OSName(runtime.GOOS), s.OS)
	assert.Equal(t, defaults.UnknownUser, s.Username)
	assert.Equal(t, []string{"unknown"}, s.GPUNames)
	assert.True(t, strings.TrimSpace(s.TempDir) != "")
}

type macRunner struct{}

func (macRunner) Output(context.Context, string, ...string) ([]byte, error) {
	return []byte("Graphics/Displays:\n\n    Apple M2:\n\n      Chipset Model: Apple M2\n"), nil
}

func TestWithCollectorFactory(t *testing.T) {
	factory := &collector.DefaultFactory{
		HardwareProvider: &fakeProvider{reading: hardware.Reading{
			TotalKB: 8,
			UsedKB:  4,
			CPUs:    []hardware.CPU{{Brand: "Apple M2"}},
		}},
		GOOS:   "darwin",
		Runner: macRunner{},
	}

	s, err := TryNew(context.Background(),
		WithEnvLookup(env.MapLookup(posixEnv)),
		WithWorkingDir(func() (string, error) { return "/", nil }),
		WithPlatform("darwin", "arm64"),
		WithCollectorFactory(factory))
	require.NoError(t, err)

	assert.Equal(t, "macos", s.OS)
	assert.Equal(t, "aarch64", s.Arch)
	assert.Equal(t, "Apple M2", s.CPUBrand)
	assert.Equal(t, uint64(8), s.TotalRAMKB)
	assert.Equal(t, []string{"Apple M2"}, s.GPUNames)
}
