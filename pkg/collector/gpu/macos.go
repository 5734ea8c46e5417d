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
	"strings"

	"github.com/vengine/sysprobe/pkg/collector/output"
)

const (
	systemProfilerCommand = "system_profiler"
	displaysDataType      = "SPDisplaysDataType"
	chipsetModelLabel     = "Chipset Model:"
)

// MacOSEnumerator lists graphics chipsets from the system profiler.
type MacOSEnumerator struct {
	Runner Runner
}

// Enumerate runs `system_profiler SPDisplaysDataType`.
func (e *MacOSEnumerator) Enumerate(ctx context.Context) []string {
	return enumerate(ctx, StrategyMacOS, e.Runner, ParseSystemProfiler,
		systemProfilerCommand, displaysDataType)
}

// ParseSystemProfiler returns one name per "Chipset Model:" line with the
// label stripped.
//
//	Graphics/Displays:
//
//	    Apple M2:
//
//	      Chipset Model: Apple M2
func ParseSystemProfiler(b []byte) []string {
	p := output.NewParser(output.WithFilter(func(line string) bool {
		return strings.HasPrefix(line, chipsetModelLabel)
	}))

	lines, err := p.GetLines(b)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, strings.TrimSpace(strings.TrimPrefix(line, chipsetModelLabel)))
	}
	return names
}
