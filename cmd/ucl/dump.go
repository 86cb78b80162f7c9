package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ucl-format/go-ucl/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	pOpts := cfg.parseOpts()
	eOpts := cfg.MainConfig.encOpts(cc.Out)
	if cfg.Comments {
		eOpts = append(eOpts, encode.EncodeComments(true))
	}
	for _, arg := range orStdin(args) {
		theLog.Debug("dump", "file", arg)
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
