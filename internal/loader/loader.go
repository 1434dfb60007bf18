// Package loader decodes YAML (or JSON) AST documents into an ast.Program.
//
// A document is the hand-off format from the front end: every identifier is
// interned in a fresh idtable.Table and every node carries its source line.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lhaig/semant/internal/ast"
	"github.com/lhaig/semant/internal/idtable"
)

type document struct {
	Decls []declDoc `yaml:"decls"`
}

type declDoc struct {
	Var  *varDoc  `yaml:"var"`
	Func *funcDoc `yaml:"func"`
}

type varDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Line int    `yaml:"line"`
}

type funcDoc struct {
	Name   string    `yaml:"name"`
	Type   string    `yaml:"type"`
	Line   int       `yaml:"line"`
	Params []varDoc  `yaml:"params"`
	Body   *blockDoc `yaml:"body"`
}

type blockDoc struct {
	Line  int       `yaml:"line"`
	Vars  []varDoc  `yaml:"vars"`
	Stmts []stmtDoc `yaml:"stmts"`
}

type stmtDoc struct {
	Line     int        `yaml:"line"`
	Block    *blockDoc  `yaml:"block"`
	If       *ifDoc     `yaml:"if"`
	While    *whileDoc  `yaml:"while"`
	For      *forDoc    `yaml:"for"`
	Return   *returnDoc `yaml:"return"`
	Break    bool       `yaml:"break"`
	Continue bool       `yaml:"continue"`
	Expr     *exprDoc   `yaml:"expr"`
}

type ifDoc struct {
	Cond *exprDoc  `yaml:"cond"`
	Then *blockDoc `yaml:"then"`
	Else *blockDoc `yaml:"else"`
}

type whileDoc struct {
	Cond *exprDoc  `yaml:"cond"`
	Body *blockDoc `yaml:"body"`
}

type forDoc struct {
	Init *exprDoc  `yaml:"init"`
	Cond *exprDoc  `yaml:"cond"`
	Step *exprDoc  `yaml:"step"`
	Body *blockDoc `yaml:"body"`
}

type returnDoc struct {
	Value *exprDoc `yaml:"value"`
}

type exprDoc struct {
	Line   int        `yaml:"line"`
	Int    *int64     `yaml:"int"`
	Float  *float64   `yaml:"float"`
	String *string    `yaml:"string"`
	Bool   *bool      `yaml:"bool"`
	ID     string     `yaml:"id"`
	Assign *assignDoc `yaml:"assign"`
	Binary *binaryDoc `yaml:"binary"`
	Unary  *unaryDoc  `yaml:"unary"`
	Call   *callDoc   `yaml:"call"`
	Empty  bool       `yaml:"empty"`
}

type assignDoc struct {
	Name  string   `yaml:"name"`
	Value *exprDoc `yaml:"value"`
}

type binaryDoc struct {
	Op    string   `yaml:"op"`
	Left  *exprDoc `yaml:"left"`
	Right *exprDoc `yaml:"right"`
}

type unaryDoc struct {
	Op      string   `yaml:"op"`
	Operand *exprDoc `yaml:"operand"`
}

type callDoc struct {
	Name string     `yaml:"name"`
	Args []*exprDoc `yaml:"args"`
}

// ErrEmptyDocument is returned for input with no YAML document in it
var ErrEmptyDocument = errors.New("empty AST document")

// Decode reads one AST document from data
func Decode(data []byte) (*ast.Program, *idtable.Table, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads one AST document from the file at path
func LoadFile(path string) (*ast.Program, *idtable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open AST document: %w", err)
	}
	defer f.Close()

	prog, table, err := Load(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, table, nil
}

// Load reads one AST document from r. Unknown keys are rejected.
func Load(r io.Reader) (*ast.Program, *idtable.Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyDocument
		}
		return nil, nil, fmt.Errorf("failed to decode AST document: %w", err)
	}

	b := &builder{table: idtable.New()}
	idtable.Reserve(b.table)

	prog, err := b.program(&doc)
	if err != nil {
		return nil, nil, err
	}
	return prog, b.table, nil
}
