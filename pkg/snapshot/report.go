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

package snapshot

import (
	"fmt"
	"io"
	"strings"
)

const reportLayout = `System Information
------------------
OS           : %s (%s)
User         : %s
Host         : %s
Shell        : %s
Working dir  : %s
Home dir     : %s
Temp dir     : %s
Total RAM    : %d KB
Used RAM     : %d KB
RAM Usage    : %.2f %%
CPU Brand    : %s
CPU Cores    : %d
GPUs         : %s
`

// RAMUsagePercent returns used/total*100, or 0 when total is 0.
func (s Snapshot) RAMUsagePercent() float64 {
	if s.TotalRAMKB == 0 {
		return 0
	}
	return float64(s.UsedRAMKB) / float64(s.TotalRAMKB) * 100
}

// Report renders the fixed human-readable layout.
func (s Snapshot) Report() string {
	return fmt.Sprintf(reportLayout,
		s.OS, s.Arch,
		s.Username,
		s.Hostname,
		s.Shell,
		s.CurrentDir,
		s.HomeDir,
		s.TempDir,
		s.TotalRAMKB,
		s.UsedRAMKB,
		s.RAMUsagePercent(),
		s.CPUBrand,
		s.CPUCores,
		strings.Join(s.GPUNames, ", "),
	)
}

// Print writes the report to w.
func (s Snapshot) Print(w io.Writer) error {
	_, err := io.WriteString(w, s.Report())
	return err
}
