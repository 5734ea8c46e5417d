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

// Package serializer writes snapshots in human-readable layouts.
//
// Two formats are supported:
//   - Report: the fixed labelled layout produced by the value itself
//   - Table: FIELD/VALUE rows with flattened, sorted keys
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatReport, path)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, snap); err != nil {
//		log.Fatal(err)
//	}
package serializer

import (
	"context"
	"io"
)

// Serializer is an interface for serializing snapshot data.
type Serializer interface {
	Serialize(ctx context.Context, snapshot any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Reporter is implemented by values that render their own report layout.
type Reporter interface {
	Print(w io.Writer) error
}
