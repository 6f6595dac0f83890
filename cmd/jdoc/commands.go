package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "style",
			Description: "output style: compact/c, indented/i",
			Type:        cli.NamedFuncOpt(cfg.styleFunc(), "(style)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jdoc").
		WithSynopsis("jdoc [opts] command [opts]").
		WithDescription("jdoc is a tool for working with JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdocMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CompactCommand(cfg),
			CheckCommand(cfg),
			EqCommand(cfg),
			HashCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			MergeCommand(cfg),
			QueryCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("format documents with indentation").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
}

func CompactCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompactConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Compact, "compact").
		WithAliases("c").
		WithSynopsis("compact [files]").
		WithDescription("format documents without whitespace").
		WithRun(func(cc *cli.Context, args []string) error {
			return compact(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ck").
		WithOpts(opts...).
		WithSynopsis("check [-p n] [-q] files").
		WithDescription("check that files hold valid JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func EqCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EqConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eq, "eq").
		WithSynopsis("eq <file1> <file2>").
		WithDescription("exit 0 if two documents are structurally equal, 1 otherwise").
		WithRun(func(cc *cli.Context, args []string) error {
			return eq(cfg, cc, args)
		})
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Hash, "hash").
		WithAliases("h").
		WithSynopsis("hash [files]").
		WithDescription("print the structural hash of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithOpts(opts...).
		WithSynopsis("get [-l] <path> [files]").
		WithDescription("get elements of documents at a path such as $.a[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-s] <file1> <file2>").
		WithDescription("print the JSON patch from file1 to file2, exit 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("patch [-s] <patch> [files]").
		WithDescription("apply a JSON patch (RFC 6902) to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithOpts(opts...).
		WithSynopsis("merge [-s] <patch> [files]").
		WithDescription("apply a JSON merge patch (RFC 7386) to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("evaluate an expression with doc bound to each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}
