package main

import (
	"fmt"

	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachObj(cfg.MainConfig, cc, args[1:], func(file string, y *ir.Node) error {
		res, err := selectPath(y, path, cfg.List)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		if res == nil {
			return nil
		}
		return writeObj(cfg.MainConfig, cc.Out, res, format.Indented)
	})
}

// selectPath returns the node at path, nil if there is none, or with list
// set an array of every node the path selects.
func selectPath(y *ir.Node, path string, list bool) (*ir.Node, error) {
	if !list {
		return y.GetPath(path)
	}
	vs, err := y.ListPath(nil, path)
	if err != nil {
		return nil, err
	}
	return ir.FromSlice(vs), nil
}
