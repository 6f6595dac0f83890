package main

import (
	"fmt"

	"github.com/signadot/jsondoc/eval"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	prog, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachObj(cfg.MainConfig, cc, args[1:], func(path string, y *ir.Node) error {
		res, err := prog.Run(y)
		if err != nil {
			return fmt.Errorf("error evaluating %s on %s: %w", prog, path, err)
		}
		return writeObj(cfg.MainConfig, cc.Out, res, format.Indented)
	})
}
