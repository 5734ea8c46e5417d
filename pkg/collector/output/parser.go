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

// Package output splits the text printed by external tools into clean lines.
package output

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vengine/sysprobe/pkg/defaults"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser splits command output with customizable settings.
type Parser struct {
	delimiter   string
	maxSize     int
	skipEmpty   bool
	skipHeaders int
	filter      func(string) bool
}

// WithDelimiter sets the delimiter used to split entries.
// Default is newline ("\n"); a trailing "\r" is always trimmed.
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of output to be parsed.
// Default is defaults.MaxCommandOutputSize.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipEmpty sets whether blank lines are dropped. Default is true.
func WithSkipEmpty(skip bool) Option {
	return func(p *Parser) {
		p.skipEmpty = skip
	}
}

// WithSkipHeaders drops the first n lines remaining after blank lines are removed.
func WithSkipHeaders(n int) Option {
	return func(p *Parser) {
		p.skipHeaders = n
	}
}

// WithFilter keeps only lines for which keep returns true.
// It runs after header lines are skipped.
func WithFilter(keep func(line string) bool) Option {
	return func(p *Parser) {
		p.filter = keep
	}
}

// NewParser creates a new output parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter: "\n",
		maxSize:   defaults.MaxCommandOutputSize,
		skipEmpty: true,
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetLines splits b into trimmed lines. Invalid UTF-8 sequences are replaced
// rather than rejected. An error is returned only when b exceeds the maximum size.
func (p *Parser) GetLines(b []byte) ([]string, error) {
	if len(b) > p.maxSize {
		return nil, fmt.Errorf("output exceeds maximum size of %d bytes", p.maxSize)
	}

	s := strings.ToValidUTF8(string(b), "�")
	parts := strings.Split(s, p.delimiter)

	result := make([]string, 0, len(parts))
	skipped := 0
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" && p.skipEmpty {
			continue
		}

		if skipped < p.skipHeaders {
			skipped++
			continue
		}

		if p.filter != nil && !p.filter(clean) {
			continue
		}

		result = append(result, clean)
	}

	slog.Debug("parsed command output", "bytes", len(b), "lines", len(result))
	return result, nil
}
