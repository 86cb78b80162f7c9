package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/ucl-format/go-ucl/encode"
	"github.com/ucl-format/go-ucl/parse"
	"github.com/ucl-format/go-ucl/vars"
)

func varsMain(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		return err
	}
	h := vars.Chain{cfg.Env}
	if !cfg.NoEnv {
		h = append(h, vars.Env())
	}
	if cfg.Expr {
		h = append(h, vars.NewExpr(exprEnv(cfg.Env)))
	}
	pOpts := append(cfg.MainConfig.parseOpts(), parse.ParseVars(h))
	eOpts := cfg.MainConfig.encOpts(cc.Out)
	for _, arg := range orStdin(args) {
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

func bindOptTypeFunc(env vars.Map) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: -e takes NAME=val, got %q", cli.ErrUsage, a)
		}
		env[name] = val
		return 0, nil
	}
}

// exprEnv retypes the command-line bindings so expressions can do
// arithmetic on numeric values.
func exprEnv(env vars.Map) map[string]any {
	res := make(map[string]any, len(env))
	for k, v := range env {
		res[k] = exprValue(v)
	}
	return res
}

func exprValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
