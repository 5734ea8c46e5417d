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

// Package collector wires the host collectors used to build a snapshot.
//
// # Subpackages
//
// hardware: total and used RAM plus CPU brand and logical core count,
// read through a metrics provider (gopsutil by default).
//
// gpu: GPU adapter names from the platform's native listing tool
// (lspci, PowerShell WMI, system_profiler), with a placeholder strategy
// for every other target.
//
// output: line-oriented parsing of external command output shared by the
// GPU strategies.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := &collector.DefaultFactory{GOOS: "linux", Runner: fakeRunner}
//	names := factory.CreateGPUEnumerator().Enumerate(ctx)
//
// A zero DefaultFactory produces the production collectors for the running
// platform.
package collector
