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

// OSName reports a GOOS value the way the snapshot records it.
// darwin is reported as macos.
func OSName(goos string) string {
	if goos == "darwin" {
		return "macos"
	}
	return goos
}

// ArchName reports a GOARCH value using the common machine names.
func ArchName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	case "386":
		return "x86"
	default:
		return goarch
	}
}

// IsWindows reports whether the snapshot was taken on Windows.
func (s Snapshot) IsWindows() bool {
	return s.OS == "windows"
}

// IsUnix reports whether the snapshot was taken on Linux or macOS.
// Other POSIX systems such as the BSDs report false here and in IsWindows.
func (s Snapshot) IsUnix() bool {
	return s.OS == "linux" || s.OS == "macos"
}
