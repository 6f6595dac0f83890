package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"
)

// readObj parses the document in the named file; "-" reads in.
func readObj(in io.Reader, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return readObj(cc.In, path, opts...)
}

// getArg parses arg itself as JSON when asString is set and the file
// named by arg otherwise.
func getArg(cc *cli.Context, asString bool, arg string, opts ...parse.ParseOption) (*ir.Node, error) {
	if asString {
		return parse.ParseString(arg, opts...)
	}
	return getObjFile(cc, arg, opts...)
}

// inputs defaults to stdin when no files are named.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// eachObj parses every input and calls f with its node.
func eachObj(cfg *MainConfig, cc *cli.Context, args []string, f func(path string, y *ir.Node) error) error {
	for _, path := range inputs(args) {
		y, err := getObjFile(cc, path, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		if err := f(path, y); err != nil {
			return err
		}
	}
	return nil
}
