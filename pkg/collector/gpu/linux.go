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

	"golang.org/x/text/cases"

	"github.com/vengine/sysprobe/pkg/collector/output"
)

const lspciCommand = "lspci"

// LinuxEnumerator lists display controllers from the PCI bus.
type LinuxEnumerator struct {
	Runner Runner
}

// Enumerate runs `lspci -nn` and parses display controller lines.
func (e *LinuxEnumerator) Enumerate(ctx context.Context) []string {
	return enumerate(ctx, StrategyLinux, e.Runner, ParseLSPCI, lspciCommand, "-nn")
}

// ParseLSPCI returns the device description of every line mentioning "vga"
// or "3d" (case-insensitive): the text after the first ": ", trimmed.
// Lines without the delimiter are skipped.
//
//	01:00.0 VGA compatible controller [0300]: NVIDIA Corporation TU117 [GeForce GTX 1650] [10de:1f82] (rev a1)
func ParseLSPCI(b []byte) []string {
	fold := cases.Fold()
	p := output.NewParser(output.WithFilter(func(line string) bool {
		l := fold.String(line)
		return strings.Contains(l, "vga") || strings.Contains(l, "3d")
	}))

	lines, err := p.GetLines(b)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(lines))
	for _, line := range lines {
		_, desc, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		names = append(names, strings.TrimSpace(desc))
	}
	return names
}
