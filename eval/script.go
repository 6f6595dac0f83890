package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
)

var (
	ErrEval    = errors.New("eval error")
	ErrCompile = fmt.Errorf("%w: compile", ErrEval)
)

// Program is a checked expression which may be run against any number
// of documents, concurrently.
type Program struct {
	src string
}

// Compile checks the syntax of src.
func Compile(src string) (*Program, error) {
	if _, err := expr.Compile(src, exprOpts(nil)...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Program{src: src}, nil
}

func (p *Program) String() string {
	return p.src
}

// Run evaluates the program with doc bound and returns the result as a
// document.
func (p *Program) Run(doc *ir.Node) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %q\n", p.src)
	}
	v, err := ToAny(doc)
	if err != nil {
		return nil, err
	}
	prg, err := expr.Compile(p.src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	res, err := expr.Run(prg, map[string]any{"doc": v})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.Logf("eval result %T %v\n", res, res)
	}
	return FromAny(res)
}

// Query compiles and runs program against doc.
func Query(doc *ir.Node, program string) (*ir.Node, error) {
	p, err := Compile(program)
	if err != nil {
		return nil, err
	}
	return p.Run(doc)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil || res == nil {
				return nil, err
			}
			return ToAny(res)
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			nodes, err := doc.ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				if res[i], err = ToAny(n); err != nil {
					return nil, err
				}
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
