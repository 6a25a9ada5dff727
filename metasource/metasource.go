// Copyright © 2026 The qassert authors

// Package metasource loads supplementary assertion descriptions from files.
//
// Applications describe their own assertion sites (or override nothing and
// simply add to the built-in QP/C++ table) in YAML, JSON or HCL:
//
//	# YAML / JSON
//	assertions:
//	  - module: app_main
//	    id: 100
//	    brief: Sensor queue overflow.
//	    tips: Raise SENSOR_QUEUE_LEN.
//	    url: https://example.com/app#100
//
//	# HCL
//	assertion "app_main" {
//	  id    = 100
//	  brief = "Sensor queue overflow."
//	}
//
// A loaded table is turned into a meta.Resolver suitable for
// meta.Registry.RegisterFallback.
package metasource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luthersystems/qassert/meta"
)

// ErrUnsupportedFormat is returned for files whose extension is not one of
// .yaml, .yml, .json or .hcl.
var ErrUnsupportedFormat = errors.New("unsupported description file format")

// Format identifies the syntax of a description file.
type Format int

const (
	FormatYAML Format = iota // YAML, and JSON as a subset of it
	FormatHCL
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatHCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// FormatOf infers the format of path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// File is a parsed description file.
type File struct {
	Path  string
	Table meta.Table

	// Lines holds the 1-based line on which each entry of Table is
	// declared.
	Lines []int
}

// Parse decodes src, whose format is inferred from filename. Entries are
// returned in declaration order; no semantic checks are applied.
func Parse(src []byte, filename string) (*File, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	var f *File
	switch format {
	case FormatHCL:
		f, err = parseHCL(src, filename)
	default:
		f, err = parseYAML(src, filename)
	}
	if err != nil {
		return nil, err
	}
	f.Path = filename
	return f, nil
}

// ReadFile reads and parses the description file at path.
func ReadFile(path string) (*File, error) {
	src, err := os.ReadFile(path) //nolint:gosec // reads user-specified description files
	if err != nil {
		return nil, err
	}
	return Parse(src, path)
}

// Load reads every file in paths and concatenates their tables in order.
// Entries with an empty module are rejected since they can never be looked
// up.
func Load(paths ...string) (meta.Table, error) {
	var table meta.Table
	for _, path := range paths {
		f, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		for i, e := range f.Table {
			if e.Module == "" {
				return nil, fmt.Errorf("%s:%d: assertion has no module", path, f.Lines[i])
			}
		}
		table = append(table, f.Table...)
	}
	return table, nil
}

// NewResolver loads paths and returns a resolver over their combined table.
// When the same key appears in more than one file the earliest one wins.
func NewResolver(paths ...string) (meta.Resolver, error) {
	table, err := Load(paths...)
	if err != nil {
		return nil, err
	}
	return meta.New(table), nil
}
