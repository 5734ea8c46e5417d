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

package hardware

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const bytesPerKB = 1024

// SystemProvider reads memory and CPU data through gopsutil.
type SystemProvider struct {
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	cpuInfo       func(ctx context.Context) ([]cpu.InfoStat, error)
	cpuCounts     func(ctx context.Context, logical bool) (int, error)
}

// NewSystemProvider returns a provider backed by the host's metrics.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{
		virtualMemory: mem.VirtualMemoryWithContext,
		cpuInfo:       cpu.InfoWithContext,
		cpuCounts:     cpu.CountsWithContext,
	}
}

// Refresh queries memory and CPU data. Memory is required; CPU data is best
// effort and an unreadable CPU table yields no descriptors.
//
// gopsutil reports one InfoStat per logical processor on Linux but one per
// package on macOS and Windows, so descriptors are expanded to the logical
// core count, reusing the last known brand.
func (p *SystemProvider) Refresh(ctx context.Context) (Reading, error) {
	vm, err := p.virtualMemory(ctx)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}

	r := Reading{
		TotalKB: vm.Total / bytesPerKB,
		UsedKB:  vm.Used / bytesPerKB,
	}

	infos, err := p.cpuInfo(ctx)
	if err != nil || len(infos) == 0 {
		return r, nil
	}

	logical, err := p.cpuCounts(ctx, true)
	if err != nil || logical < len(infos) {
		logical = len(infos)
	}

	r.CPUs = make([]CPU, logical)
	for i := range r.CPUs {
		info := infos[min(i, len(infos)-1)]
		r.CPUs[i] = CPU{Brand: strings.TrimSpace(info.ModelName)}
	}

	return r, nil
}
