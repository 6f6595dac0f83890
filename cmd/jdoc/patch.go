package main

import (
	"fmt"

	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	ops, err := getArg(cc, cfg.String, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("%w: error decoding patch: %w", cli.ErrUsage, err)
	}
	if _, err := ops.RequireArray(); err != nil {
		return fmt.Errorf("%w: patch must be an array of operations: %w", cli.ErrUsage, err)
	}
	return patchEach(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		return patch.Apply(y, ops)
	})
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a merge patch argument", cli.ErrUsage)
	}
	mp, err := getArg(cc, cfg.String, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("%w: error decoding merge patch: %w", cli.ErrUsage, err)
	}
	return patchEach(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		return patch.Merge(y, mp)
	})
}

func patchEach(cfg *MainConfig, cc *cli.Context, args []string, f func(*ir.Node) (*ir.Node, error)) error {
	return eachObj(cfg, cc, args, func(path string, y *ir.Node) error {
		res, err := f(y)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", path, err)
		}
		return writeObj(cfg, cc.Out, res, format.Indented)
	})
}
