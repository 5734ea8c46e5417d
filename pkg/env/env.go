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

// Package env resolves logical identity values (home directory, username,
// hostname, shell) from environment variables whose names differ between
// POSIX and Windows hosts.
package env

import (
	"log/slog"
	"os"

	"github.com/vengine/sysprobe/pkg/errors"
)

// Candidate keys and failure labels for each logical concept.
// Keys are tried in order; POSIX names come first.
var (
	HomeKeys  = []string{"HOME", "USERPROFILE"}
	HomeLabel = "HOME/USERPROFILE"

	UserKeys  = []string{"USER", "USERNAME"}
	UserLabel = "USER/USERNAME"

	HostnameKeys  = []string{"HOSTNAME", "COMPUTERNAME"}
	HostnameLabel = "HOSTNAME/COMPUTERNAME"

	ShellKeys  = []string{"SHELL", "ComSpec"}
	ShellLabel = "SHELL/ComSpec"
)

// LookupFunc reports the value of a variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Resolver looks up ordered candidate keys through a LookupFunc.
type Resolver struct {
	lookup LookupFunc
}

// NewResolver returns a Resolver over lookup. A nil lookup uses os.LookupEnv.
func NewResolver(lookup LookupFunc) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{lookup: lookup}
}

// ResolveAny returns the value of the first key in keys that is set.
// A variable set to the empty string counts as set. When none is set it
// returns a MISSING_ENV error carrying label.
func (r *Resolver) ResolveAny(keys []string, label string) (string, error) {
	for _, key := range keys {
		if v, ok := r.lookup(key); ok {
			slog.Debug("resolved environment variable", "label", label, "key", key)
			return v, nil
		}
	}
	return "", errors.NewMissingEnv(label)
}

// ResolveOr is ResolveAny with fallback substituted on failure.
func (r *Resolver) ResolveOr(keys []string, label, fallback string) string {
	v, err := r.ResolveAny(keys, label)
	if err != nil {
		slog.Debug("environment variable not set, using placeholder",
			"label", label, "placeholder", fallback)
		return fallback
	}
	return v
}

var defaultResolver = NewResolver(nil)

// ResolveAny resolves keys against the process environment.
func ResolveAny(keys []string, label string) (string, error) {
	return defaultResolver.ResolveAny(keys, label)
}

// MapLookup adapts a map to a LookupFunc.
func MapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
