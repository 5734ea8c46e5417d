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
	"github.com/vengine/sysprobe/pkg/collector"
	"github.com/vengine/sysprobe/pkg/collector/gpu"
	"github.com/vengine/sysprobe/pkg/collector/hardware"
	"github.com/vengine/sysprobe/pkg/env"
)

// Option configures snapshot construction.
type Option func(*builder)

// WithEnvLookup resolves identity values through lookup instead of the
// process environment.
func WithEnvLookup(lookup env.LookupFunc) Option {
	return func(b *builder) {
		b.env = env.NewResolver(lookup)
	}
}

// WithCollectorFactory sets the factory producing the hardware collector and
// GPU enumerator. WithHardwareProvider and WithGPUEnumerator take precedence.
func WithCollectorFactory(f collector.Factory) Option {
	return func(b *builder) {
		if f != nil {
			b.factory = f
		}
	}
}

// WithHardwareProvider sets the metrics provider. Default is gopsutil.
func WithHardwareProvider(p hardware.Provider) Option {
	return func(b *builder) {
		b.provider = p
	}
}

// WithGPUEnumerator sets the GPU strategy. Default is the factory's choice
// for the running platform.
func WithGPUEnumerator(e gpu.Enumerator) Option {
	return func(b *builder) {
		b.gpus = e
	}
}

// WithWorkingDir replaces the working directory query.
func WithWorkingDir(fn func() (string, error)) Option {
	return func(b *builder) {
		b.workingDir = fn
	}
}

// WithTempDir replaces the temp directory query.
func WithTempDir(fn func() string) Option {
	return func(b *builder) {
		b.tempDir = fn
	}
}

// WithPlatform overrides the GOOS and GOARCH values reported.
// It does not change the GPU strategy; pair it with WithGPUEnumerator.
func WithPlatform(goos, goarch string) Option {
	return func(b *builder) {
		b.goos = goos
		b.goarch = goarch
	}
}
