package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ucl-format/go-ucl/encode"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil && count(cfg.U, cfg.J, cfg.Y) == 0 {
		return fmt.Errorf("%w: convert needs a target format (-O, -j, -y or -u)", cli.ErrUsage)
	}
	pOpts := cfg.MainConfig.parseOpts()
	eOpts := cfg.MainConfig.encOpts(cc.Out)
	for _, arg := range orStdin(args) {
		theLog.Debug("convert", "file", arg, "to", cfg.outFmt())
		n, err := parseArg(arg, pOpts)
		if err != nil {
			return err
		}
		if err := encode.Encode(n, cc.Out, eOpts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
