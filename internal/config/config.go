// Package config loads checker options from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lhaig/semant/internal/checker"
)

// DefaultFile is the config file looked up in the working directory
const DefaultFile = ".semant.yml"

// File mirrors the YAML layout. Unset fields keep their defaults.
type File struct {
	AllowShadowing *bool `yaml:"allow_shadowing"`
	GlobalsVisible *bool `yaml:"globals_visible"`
	MaxParams      *int  `yaml:"max_params"`
}

// ValidationError aggregates config validation failures
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Apply overlays the fields set in f onto opts
func (f *File) Apply(opts checker.Options) checker.Options {
	if f.AllowShadowing != nil {
		opts.AllowShadowing = *f.AllowShadowing
	}
	if f.GlobalsVisible != nil {
		opts.GlobalsVisible = *f.GlobalsVisible
	}
	if f.MaxParams != nil {
		opts.MaxParams = *f.MaxParams
	}
	return opts
}

func (f *File) validate() error {
	var errs ValidationError
	if f.MaxParams != nil && *f.MaxParams < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_params must not be negative, got %d", *f.MaxParams))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Parse decodes a config document. Empty input yields an empty File.
func Parse(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var f File
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads the config at path
func Load(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}
	return f, nil
}

// Resolve returns the options to check with. An explicit path must exist;
// with no path, DefaultFile in dir is used when present.
func Resolve(path, dir string) (checker.Options, error) {
	opts := checker.DefaultOptions()
	if path == "" {
		candidate := filepath.Join(dir, DefaultFile)
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return opts, nil
			}
			return opts, fmt.Errorf("config: stat %s: %w", candidate, err)
		}
		path = candidate
	}

	f, err := Load(path)
	if err != nil {
		return opts, err
	}
	return f.Apply(opts), nil
}
