package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ucl-format/go-ucl/encode"
	"github.com/ucl-format/go-ucl/parse"
	"github.com/ucl-format/go-ucl/vars"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=w aliases=compact desc='output on one line'"`
	Verbose bool `cli:"name=v aliases=verbose desc='debug logging'"`

	U bool `cli:"name=u aliases=ucl desc='output in ucl'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFmt() encode.Format {
	fmat := encode.UCLFormat
	switch {
	case cfg.J:
		fmat = encode.JSONFormat
	case cfg.Y:
		fmat = encode.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseWarn(func(err error) {
			theLog.Warn("expansion", "err", err)
		}),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFmt()),
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig
	Comments bool `cli:"name=c desc='include comments'"`

	Dump *cli.Command
}

func (cfg *DumpConfig) parseOpts() []parse.ParseOption {
	return append(cfg.MainConfig.parseOpts(), parse.ParseComments(cfg.Comments))
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type VarsConfig struct {
	*MainConfig
	Env vars.Map

	Expr  bool `cli:"name=x aliases=expr desc='evaluate references as expressions'"`
	NoEnv bool `cli:"name=E aliases=no-env desc='ignore the process environment'"`

	Vars *cli.Command
}
