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

// Package gpu enumerates display adapters by invoking the native listing
// tool of the host platform and parsing its text output.
//
// # Strategies
//
// Exactly one strategy serves a given build target:
//
//   - LinuxEnumerator: `lspci -nn`, lines mentioning VGA or 3D controllers
//   - WindowsEnumerator: PowerShell query of Win32_VideoController names
//   - MacOSEnumerator: `system_profiler SPDisplaysDataType` chipset models
//   - GenericEnumerator: everything else
//
// Default picks the strategy matching runtime.GOOS once per process.
// ForPlatform builds a specific one, which is how tests exercise every
// strategy on any host:
//
//	e := gpu.ForPlatform("linux", gpu.WithRunner(fakeRunner))
//	names := e.Enumerate(ctx)
//
// # Failure Semantics
//
// Enumeration never returns an error. A command that cannot be launched or
// exits non-zero, output that is too large, and output without any matching
// line all produce the placeholder list []string{"unknown"}. Lines that do
// not match the expected shape are skipped silently.
//
// No timeout is applied beyond the caller's context. A hung listing tool
// blocks the caller until the context is canceled.
package gpu
