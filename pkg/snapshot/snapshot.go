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
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/vengine/sysprobe/pkg/collector"
	"github.com/vengine/sysprobe/pkg/collector/gpu"
	"github.com/vengine/sysprobe/pkg/collector/hardware"
	"github.com/vengine/sysprobe/pkg/defaults"
	"github.com/vengine/sysprobe/pkg/env"
	"github.com/vengine/sysprobe/pkg/errors"
)

// Snapshot is a one-shot capture of host identity and resource state.
// It is returned by value and never modified after construction.
type Snapshot struct {
	CurrentDir string
	HomeDir    string
	TempDir    string

	Username string
	Hostname string
	Shell    string

	OS   string
	Arch string

	TotalRAMKB uint64
	UsedRAMKB  uint64
	CPUBrand   string
	CPUCores   int
	GPUNames   []string
}

// New captures a snapshot of the current host. If a mandatory value
// (working directory, home directory, username) cannot be resolved, the
// degraded snapshot is returned instead. New never fails.
func New(opts ...Option) Snapshot {
	return NewWithContext(context.Background(), opts...)
}

// NewWithContext is New with a caller-supplied context bounding the
// external commands run during capture.
func NewWithContext(ctx context.Context, opts ...Option) Snapshot {
	b := newBuilder(opts...)

	start := time.Now()
	defer func() {
		snapshotConstructionDuration.Observe(time.Since(start).Seconds())
	}()

	s, err := b.build(ctx)
	if err != nil {
		slog.Warn("snapshot degraded", "error", err)
		snapshotConstructionTotal.WithLabelValues(statusDegraded).Inc()
		return b.degraded()
	}

	snapshotConstructionTotal.WithLabelValues(statusSuccess).Inc()
	return s
}

// TryNew captures a snapshot and returns the first mandatory failure instead
// of degrading. Errors are MISSING_ENV or IO_FAILURE structured errors.
func TryNew(ctx context.Context, opts ...Option) (Snapshot, error) {
	return newBuilder(opts...).build(ctx)
}

// Degraded returns the fixed fallback snapshot: OS and arch describe the
// running binary, every other field is a placeholder.
func Degraded() Snapshot {
	return newBuilder().degraded()
}

func (b *builder) build(ctx context.Context) (Snapshot, error) {
	slog.Debug("capturing snapshot", "os", b.goos, "arch", b.goarch)

	cwd, err := b.workingDir()
	if err != nil {
		return Snapshot{}, errors.WrapIO("failed to read working directory", err)
	}

	home, err := b.env.ResolveAny(env.HomeKeys, env.HomeLabel)
	if err != nil {
		return Snapshot{}, err
	}

	user, err := b.env.ResolveAny(env.UserKeys, env.UserLabel)
	if err != nil {
		return Snapshot{}, err
	}

	hw := b.hardware.Collect(ctx)

	s := Snapshot{
		CurrentDir: cwd,
		HomeDir:    home,
		TempDir:    b.tempDir(),
		Username:   user,
		Hostname:   b.env.ResolveOr(env.HostnameKeys, env.HostnameLabel, defaults.UnknownHost),
		Shell:      b.env.ResolveOr(env.ShellKeys, env.ShellLabel, defaults.UnknownShell),
		OS:         OSName(b.goos),
		Arch:       ArchName(b.goarch),
		TotalRAMKB: hw.TotalRAMKB,
		UsedRAMKB:  hw.UsedRAMKB,
		CPUBrand:   hw.CPUBrand,
		CPUCores:   hw.CPUCores,
		GPUNames:   normalizeGPUs(b.gpus.Enumerate(ctx)),
	}

	slog.Debug("snapshot captured", "gpus", len(s.GPUNames), "cpu_cores", s.CPUCores)
	return s, nil
}

func (b *builder) degraded() Snapshot {
	return Snapshot{
		CurrentDir: defaults.DegradedWorkingDir,
		HomeDir:    "",
		TempDir:    b.tempDir(),
		Username:   defaults.UnknownUser,
		Hostname:   defaults.UnknownHost,
		Shell:      defaults.UnknownShell,
		OS:         OSName(b.goos),
		Arch:       ArchName(b.goarch),
		CPUBrand:   defaults.UnknownCPU,
		GPUNames:   defaults.UnknownGPUs(),
	}
}

// normalizeGPUs copies names so the snapshot owns its slice, substituting
// the placeholder list for an empty one.
func normalizeGPUs(names []string) []string {
	if len(names) == 0 {
		return defaults.UnknownGPUs()
	}
	return append([]string(nil), names...)
}

type builder struct {
	env        *env.Resolver
	factory    collector.Factory
	provider   hardware.Provider
	hardware   *hardware.Collector
	gpus       gpu.Enumerator
	workingDir func() (string, error)
	tempDir    func() string
	goos       string
	goarch     string
}

func newBuilder(opts ...Option) *builder {
	b := &builder{
		env:        env.NewResolver(nil),
		factory:    collector.NewDefaultFactory(),
		workingDir: os.Getwd,
		tempDir:    os.TempDir,
		goos:       runtime.GOOS,
		goarch:     runtime.GOARCH,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.provider != nil {
		b.hardware = &hardware.Collector{Provider: b.provider}
	} else {
		b.hardware = b.factory.CreateHardwareCollector()
	}
	if b.gpus == nil {
		b.gpus = b.factory.CreateGPUEnumerator()
	}
	return b
}
