package main

import (
	"fmt"

	"github.com/signadot/jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		cfg.Eq.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, b, err := getPair(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	same, err := ir.Equal(a, b)
	if err != nil {
		return err
	}
	if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPair(cfg *MainConfig, cc *cli.Context, args []string) (*ir.Node, *ir.Node, error) {
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	return a, b, nil
}

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		cfg.Hash.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachObj(cfg.MainConfig, cc, args, func(path string, y *ir.Node) error {
		h, err := y.Hash()
		if err != nil {
			return fmt.Errorf("error hashing %s: %w", path, err)
		}
		_, err = fmt.Fprintf(cc.Out, "%016x  %s\n", h, path)
		return err
	})
}
