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

// Package defaults provides centralized constants for sysprobe.
//
// # Placeholders
//
// Every value that can fail to resolve has a named placeholder here, so the
// degraded snapshot contract can be audited in one place:
//
//   - UnknownUser, UnknownHost, UnknownShell: identity fallbacks
//   - UnknownCPU: CPU brand when no cores are reported
//   - UnknownGPU: sole entry of an empty GPU inventory
//
// # Usage
//
//	hostname, err := env.ResolveAny(env.HostnameKeys, env.HostnameLabel)
//	if err != nil {
//	    hostname = defaults.UnknownHost
//	}
package defaults
