package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=c aliases=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per level for indented output (default 2)'"`
	Y      bool `cli:"name=y aliases=yaml desc='output yaml'"`
	Strict bool `cli:"name=strict desc='reject duplicate object keys'"`

	Style *format.Style

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) styleFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		s, err := format.ParseStyle(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Style = &s
		return s, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.RejectDuplicateKeys()}
	}
	return nil
}

// encOpts returns the encode options for output written to w in style s,
// unless -style overrides it.
func (cfg *MainConfig) encOpts(w io.Writer, s format.Style) []encode.EncodeOption {
	if cfg.Style != nil {
		s = *cfg.Style
	}
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeStyle(s),
		encode.TrailingNewline(true),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colorOut(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "c" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type CompactConfig struct {
	*MainConfig

	Compact *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Workers int  `cli:"name=p desc='number of files checked concurrently (default GOMAXPROCS)'"`
	Quiet   bool `cli:"name=q desc='only report invalid files'"`

	Check *cli.Command
}

type EqConfig struct {
	*MainConfig

	Eq *cli.Command
}

type HashConfig struct {
	*MainConfig

	Hash *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='list every match of a path with [*] or ..'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='show a text diff of the indented documents'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type MergeConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='merge patch arg as string'"`

	Merge *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
