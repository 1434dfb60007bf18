package compiler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/checker"
	"github.com/lhaig/semant/internal/diagnostic"
	"github.com/lhaig/semant/internal/idtable"
	"github.com/lhaig/semant/internal/loader"
)

// HaltMessage is printed after the diagnostics of a rejected program
const HaltMessage = "Compilation halted due to static semantic errors."

// ErrHalted is returned by Result.Err when the program has semantic errors
var ErrHalted = errors.New(HaltMessage)

// Result holds the output of a checked document
type Result struct {
	Path        string
	Program     *ast.Program
	Table       *idtable.Table
	Diagnostics *diagnostic.Diagnostics
	Functions   *checker.FunctionTable
}

// Err returns ErrHalted if the program has semantic errors
func (r *Result) Err() error {
	if r.Diagnostics != nil && r.Diagnostics.HasErrors() {
		return ErrHalted
	}
	return nil
}

// Pipeline runs load -> check with fixed options
type Pipeline struct {
	opts   checker.Options
	logger *slog.Logger
}

// New creates a pipeline. A nil logger discards all records.
func New(opts checker.Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{opts: opts, logger: logger}
}

// CheckFile loads the AST document at path and checks it
func (p *Pipeline) CheckFile(path string) (*Result, error) {
	prog, table, err := loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("document loaded", "path", path, "decls", len(prog.Decls), "symbols", table.Len())
	return p.run(path, prog, table)
}

// CheckSource checks an AST document held in memory
func (p *Pipeline) CheckSource(data []byte) (*Result, error) {
	prog, table, err := loader.Decode(data)
	if err != nil {
		return nil, err
	}
	return p.run("", prog, table)
}

// CheckFiles checks each document independently, stopping at the first
// load or internal error. Results are returned for every file checked so far.
func (p *Pipeline) CheckFiles(paths []string) ([]*Result, error) {
	results := make([]*Result, 0, len(paths))
	for _, path := range paths {
		res, err := p.CheckFile(path)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (p *Pipeline) run(path string, prog *ast.Program, table *idtable.Table) (*Result, error) {
	checked, err := checker.Check(prog, table, p.opts)
	if err != nil {
		p.logger.Error("internal checker error", "path", path, "err", err)
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}

	p.logger.Debug("analysis finished",
		"path", path,
		"functions", checked.Functions.Len(),
		"diagnostics", checked.Diagnostics.Count(),
	)

	return &Result{
		Path:        path,
		Program:     prog,
		Table:       table,
		Diagnostics: checked.Diagnostics,
		Functions:   checked.Functions,
	}, nil
}
