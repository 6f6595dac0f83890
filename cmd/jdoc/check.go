package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"sync"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/parse"

	"github.com/panjf2000/ants/v2"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: -p must not be negative", cli.ErrUsage)
	}
	results, err := checkFiles(cc.In, args, cfg.Workers, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if n := reportChecks(cc.Out, results, cfg.Quiet); n > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type checkResult struct {
	Path string
	Err  error
}

// checkFiles parses every path on a pool of at most workers goroutines and
// returns one result per path, in the order of paths. Only one of the
// paths may be "-".
func checkFiles(in io.Reader, paths []string, workers int, opts ...parse.ParseOption) ([]checkResult, error) {
	if i := slices.Index(paths, "-"); i >= 0 && slices.Contains(paths[i+1:], "-") {
		return nil, fmt.Errorf("%w: stdin (-) given more than once", cli.ErrUsage)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	res := make([]checkResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		res[i].Path = path
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			_, res[i].Err = readObj(in, path, opts...)
			if debug.CLI() {
				debug.Logf("check %s: %v\n", path, res[i].Err)
			}
		})
		if err != nil {
			wg.Done()
			res[i].Err = err
		}
	}
	wg.Wait()
	return res, nil
}

// reportChecks writes one line per result and returns the number of
// invalid files.
func reportChecks(w io.Writer, results []checkResult, quiet bool) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
			fmt.Fprintf(w, "%s: %v\n", r.Path, r.Err)
			continue
		}
		if !quiet {
			fmt.Fprintf(w, "%s: ok\n", r.Path)
		}
	}
	return n
}
