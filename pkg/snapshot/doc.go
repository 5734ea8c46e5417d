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

// Package snapshot assembles the host snapshot: identity from the
// environment, RAM and CPU from the hardware collector, and the GPU
// inventory from the platform's GPU enumerator.
//
// # Construction
//
// New always returns a usable Snapshot. When a mandatory value (working
// directory, home directory or username) cannot be resolved, partial results
// are discarded and the degraded snapshot is returned: OS and arch are still
// real, everything else is a placeholder from package defaults.
//
//	s := snapshot.New()
//	s.Print(os.Stdout)
//
// Callers that want to handle degradation themselves use TryNew:
//
//	s, err := snapshot.TryNew(ctx)
//	if errors.IsCode(err, errors.ErrCodeMissingEnv) {
//	    // environment is incomplete
//	}
//
// Hostname and shell are not mandatory; unresolved values become
// "unknown_host" and "unknown_shell" without degrading the snapshot.
//
// # Concurrency
//
// Each call performs its own environment lookups, provider refresh and
// listing command. Calls are independent and safe to run concurrently; no
// result is cached or shared.
package snapshot
