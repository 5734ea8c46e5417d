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

package defaults

import "time"

// Placeholders reported when a value cannot be resolved. The degraded
// snapshot is built entirely from these.
const (
	// UnknownUser is the username of a degraded snapshot.
	UnknownUser = "unknown_user"

	// UnknownHost replaces an unresolved hostname.
	UnknownHost = "unknown_host"

	// UnknownShell replaces an unresolved shell.
	UnknownShell = "unknown_shell"

	// UnknownCPU replaces the CPU brand when the provider reports no cores.
	UnknownCPU = "unknown_cpu"

	// UnknownGPU is the single entry of a GPU list that could not be enumerated.
	UnknownGPU = "unknown"

	// DegradedWorkingDir is the working directory of a degraded snapshot.
	DegradedWorkingDir = "."
)

// External command limits.
const (
	// MaxCommandOutputSize caps how much command output is parsed.
	MaxCommandOutputSize = 1 << 20
)

// CLI defaults.
const (
	// CLISnapshotTimeout is the default timeout for snapshot construction.
	// Zero means none: a hung GPU tool hangs the capture.
	CLISnapshotTimeout time.Duration = 0

	// CLIConfigFileName is the config file looked up in the home directory.
	CLIConfigFileName = ".sysprobe.yaml"
)

// UnknownGPUs returns a fresh placeholder GPU list.
func UnknownGPUs() []string {
	return []string{UnknownGPU}
}
