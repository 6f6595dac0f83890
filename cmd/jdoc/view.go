package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return view(cfg.MainConfig, cc, args, format.Indented)
}

func compact(cfg *CompactConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compact.Parse(cc, args)
	if err != nil {
		cfg.Compact.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return view(cfg.MainConfig, cc, args, format.Compact)
}

func view(cfg *MainConfig, cc *cli.Context, args []string, s format.Style) error {
	return eachObj(cfg, cc, args, func(path string, y *ir.Node) error {
		return writeObj(cfg, cc.Out, y, s)
	})
}

func writeObj(cfg *MainConfig, w io.Writer, y *ir.Node, s format.Style) error {
	if err := encode.Encode(y, w, cfg.encOpts(w, s)...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	return nil
}
