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
	"log/slog"

	"github.com/vengine/sysprobe/pkg/defaults"
)

// CPU describes one logical core as reported by the metrics provider.
type CPU struct {
	Brand string
}

// Reading is the result of a single provider refresh.
type Reading struct {
	TotalKB uint64
	UsedKB  uint64
	CPUs    []CPU
}

// Provider is the metrics facility queried once per snapshot.
type Provider interface {
	Refresh(ctx context.Context) (Reading, error)
}

// Stats is the RAM and CPU portion of a snapshot.
type Stats struct {
	TotalRAMKB uint64
	UsedRAMKB  uint64
	CPUBrand   string
	CPUCores   int
}

// Collector turns a provider reading into Stats.
type Collector struct {
	// Provider to query. If nil, the gopsutil-backed provider is used.
	Provider Provider
}

// Collect refreshes the provider and extracts memory totals, the brand of the
// first core and the core count. A provider failure is logged and degrades to
// zero values; it is never returned.
func (c *Collector) Collect(ctx context.Context) Stats {
	p := c.Provider
	if p == nil {
		p = NewSystemProvider()
	}

	r, err := p.Refresh(ctx)
	if err != nil {
		slog.Warn("hardware metrics unavailable", "error", err)
		return Stats{CPUBrand: defaults.UnknownCPU}
	}

	s := Stats{
		TotalRAMKB: r.TotalKB,
		UsedRAMKB:  r.UsedKB,
		CPUBrand:   defaults.UnknownCPU,
		CPUCores:   len(r.CPUs),
	}
	if len(r.CPUs) > 0 {
		s.CPUBrand = r.CPUs[0].Brand
	}

	slog.Debug("collected hardware metrics",
		"total_kb", s.TotalRAMKB,
		"used_kb", s.UsedRAMKB,
		"cpu_cores", s.CPUCores)

	return s
}
