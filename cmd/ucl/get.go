package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ucl-format/go-ucl/encode"
	"github.com/ucl-format/go-ucl/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	pOpts := cfg.MainConfig.parseOpts()
	eOpts := cfg.MainConfig.encOpts(cc.Out)
	for _, arg := range orStdin(args[1:]) {
		n, err := parseArg(arg, pOpts)
		if err != nil {
			return err
		}
		res, err := n.GetPath(path)
		if errors.Is(err, ir.ErrField) {
			// absent values print nothing
			theLog.Debug("get", "file", arg, "path", path, "err", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", path, arg, err)
		}
		if err := encode.Encode(res, cc.Out, eOpts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
