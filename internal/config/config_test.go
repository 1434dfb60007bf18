package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/lhaig/semant/internal/checker"
)

func TestParseOverridesDefaults(t *testing.T) {
	f, err := Parse(strings.NewReader("allow_shadowing: true\nmax_params: 8\n"))
	be.Err(t, err, nil)

	opts := f.Apply(checker.DefaultOptions())
	be.Equal(t, opts.AllowShadowing, true)
	be.Equal(t, opts.GlobalsVisible, true)
	be.Equal(t, opts.MaxParams, 8)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	be.Err(t, err, nil)
	be.Equal(t, f.Apply(checker.DefaultOptions()), checker.DefaultOptions())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("shadowing: true\n"))
	be.Err(t, err, "config: parse")
}

func TestParseValidates(t *testing.T) {
	_, err := Parse(strings.NewReader("max_params: -1\n"))
	var verr *ValidationError
	be.True(t, errors.As(err, &verr))
	be.Equal(t, len(verr.Issues), 1)
	be.Err(t, err, "max_params must not be negative")
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	opts, err := Resolve("", dir)
	be.Err(t, err, nil)
	be.Equal(t, opts, checker.DefaultOptions())

	err = os.WriteFile(filepath.Join(dir, DefaultFile), []byte("globals_visible: false\n"), 0644)
	be.Err(t, err, nil)
	opts, err = Resolve("", dir)
	be.Err(t, err, nil)
	be.Equal(t, opts.GlobalsVisible, false)

	explicit := filepath.Join(dir, "strict.yml")
	err = os.WriteFile(explicit, []byte("max_params: 2\n"), 0644)
	be.Err(t, err, nil)
	opts, err = Resolve(explicit, dir)
	be.Err(t, err, nil)
	be.Equal(t, opts.MaxParams, 2)
	be.Equal(t, opts.GlobalsVisible, true)

	_, err = Resolve(filepath.Join(dir, "missing.yml"), dir)
	be.Err(t, err, "config: open")
}
