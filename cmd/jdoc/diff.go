package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, b, err := getPair(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	differs, err := diffInputs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffInputs writes the difference from a to b and reports whether there
// is one.
func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	d, err := libdiff.Diff(a, b)
	if err != nil {
		return false, err
	}
	if d.Empty() {
		return false, nil
	}
	if cfg.String {
		as, err := encode.EncodeString(a, encode.EncodeStyle(format.Indented))
		if err != nil {
			return false, err
		}
		bs, err := encode.EncodeString(b, encode.EncodeStyle(format.Indented))
		if err != nil {
			return false, err
		}
		_, err = io.WriteString(w, libdiff.DiffText(as+"\n", bs+"\n"))
		return true, err
	}
	return true, writeObj(cfg.MainConfig, w, d.Node(), format.Indented)
}
