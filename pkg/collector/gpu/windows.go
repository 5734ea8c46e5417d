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

	"github.com/vengine/sysprobe/pkg/collector/output"
)

const (
	powershellCommand    = "powershell"
	videoControllerQuery = "Get-WmiObject Win32_VideoController | Select-Object Name"

	// column title and rule printed by Select-Object
	videoControllerHeaderLines = 2
)

// WindowsEnumerator lists video controllers through WMI.
type WindowsEnumerator struct {
	Runner Runner
}

// Enumerate queries Win32_VideoController names via PowerShell.
func (e *WindowsEnumerator) Enumerate(ctx context.Context) []string {
	return enumerate(ctx, StrategyWindows, e.Runner, ParseVideoControllers,
		powershellCommand, "-Command", videoControllerQuery)
}

// ParseVideoControllers drops the two header lines of a Select-Object Name
// table and returns the remaining non-empty lines, trimmed.
//
//	Name
//	----
//	NVIDIA GeForce RTX 3080
func ParseVideoControllers(b []byte) []string {
	lines, err := output.NewParser(output.WithSkipHeaders(videoControllerHeaderLines)).GetLines(b)
	if err != nil {
		return nil
	}
	return lines
}
