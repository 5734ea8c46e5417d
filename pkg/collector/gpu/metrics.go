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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK            = "ok"
	resultEmpty         = "empty"
	resultCommandFailed = "command_failed"
	resultUnsupported   = "unsupported"
)

var (
	gpuEnumerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysprobe_gpu_enumeration_total",
			Help: "Total number of GPU enumeration attempts",
		},
		[]string{"strategy", "result"}, // ok, empty, command_failed, unsupported
	)

	gpuEnumerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sysprobe_gpu_enumeration_duration_seconds",
			Help:    "Time taken by the GPU listing command",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"strategy"},
	)
)
