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

// Package config loads the optional sysprobe CLI configuration file.
//
// The file is YAML and every key is optional:
//
//	logLevel: debug
//	format: table
//	output: /var/tmp/host.txt
//	timeout: 30s
//
// Command-line flags and SYSPROBE_* environment variables take precedence
// over values read here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vengine/sysprobe/pkg/defaults"
	"github.com/vengine/sysprobe/pkg/serializer"
)

// Config holds CLI settings.
type Config struct {
	LogLevel string        `yaml:"logLevel,omitempty"`
	Format   string        `yaml:"format,omitempty"`
	Output   string        `yaml:"output,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   string(serializer.FormatReport),
		Timeout:  defaults.CLISnapshotTimeout,
	}
}

// DefaultPath returns the config file location under home.
func DefaultPath(home string) string {
	return filepath.Join(home, defaults.CLIConfigFileName)
}

// Load reads the file at path over the defaults. When optional is true a
// missing file is not an error.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.decode(b); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(b []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if serializer.Format(c.Format).IsUnknown() {
		return fmt.Errorf("unknown format %q, expected one of %v", c.Format, serializer.SupportedFormats())
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	return nil
}
