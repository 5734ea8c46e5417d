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

package gpu

import (
	"context"
	"log/slog"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/vengine/sysprobe/pkg/defaults"
)

// Strategy names, also used as metric labels.
const (
	StrategyLinux   = "linux"
	StrategyWindows = "windows"
	StrategyMacOS   = "macos"
	StrategyGeneric = "generic"
)

// Enumerator lists display adapter names. Implementations never fail:
// anything that goes wrong yields the single-entry placeholder list.
type Enumerator interface {
	Enumerate(ctx context.Context) []string
}

// Runner executes an external command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec. A non-zero exit is an error.
type ExecRunner struct{}

// Output implements Runner.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Option configures enumerators built by ForPlatform.
type Option func(*config)

type config struct {
	runner Runner
}

// WithRunner sets the command runner. Default is ExecRunner.
func WithRunner(r Runner) Option {
	return func(c *config) {
		c.runner = r
	}
}

// ForPlatform returns the strategy for a GOOS value. Targets without a
// known GPU listing tool get the GenericEnumerator.
func ForPlatform(goos string, opts ...Option) Enumerator {
	c := &config{runner: ExecRunner{}}
	for _, opt := range opts {
		opt(c)
	}

	switch goos {
	case "linux":
		return &LinuxEnumerator{Runner: c.runner}
	case "windows":
		return &WindowsEnumerator{Runner: c.runner}
	case "darwin":
		return &MacOSEnumerator{Runner: c.runner}
	default:
		return &GenericEnumerator{}
	}
}

var defaultEnumerator = sync.OnceValue(func() Enumerator {
	e := ForPlatform(runtime.GOOS)
	slog.Debug("selected gpu enumerator", "goos", runtime.GOOS, "strategy", strategyOf(e))
	return e
})

// Default returns the enumerator for the platform this binary was built for.
// The choice is made once per process.
func Default() Enumerator {
	return defaultEnumerator()
}

func strategyOf(e Enumerator) string {
	switch e.(type) {
	case *LinuxEnumerator:
		return StrategyLinux
	case *WindowsEnumerator:
		return StrategyWindows
	case *MacOSEnumerator:
		return StrategyMacOS
	default:
		return StrategyGeneric
	}
}

// enumerate runs a listing command and parses its output, degrading to the
// placeholder list on launch failure, error exit or an empty parse.
func enumerate(ctx context.Context, strategy string, r Runner, parse func([]byte) []string, name string, args ...string) []string {
	if r == nil {
		r = ExecRunner{}
	}

	start := time.Now()
	defer func() {
		gpuEnumerationDuration.WithLabelValues(strategy).Observe(time.Since(start).Seconds())
	}()

	slog.Debug("running gpu enumeration command", "strategy", strategy, "command", name)
	out, err := r.Output(ctx, name, args...)
	if err != nil {
		slog.Debug("gpu enumeration command failed", "strategy", strategy, "command", name, "error", err)
		gpuEnumerationTotal.WithLabelValues(strategy, resultCommandFailed).Inc()
		return defaults.UnknownGPUs()
	}

	names := parse(out)
	if len(names) == 0 {
		gpuEnumerationTotal.WithLabelValues(strategy, resultEmpty).Inc()
		return defaults.UnknownGPUs()
	}

	gpuEnumerationTotal.WithLabelValues(strategy, resultOK).Inc()
	slog.Debug("gpu enumeration finished", "strategy", strategy, "count", len(names))
	return names
}
