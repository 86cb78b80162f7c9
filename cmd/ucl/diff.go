package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ucl-format/go-ucl/encode"
	"github.com/ucl-format/go-ucl/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	pOpts := cfg.MainConfig.parseOpts()
	from, err := parseArg(args[0], pOpts)
	if err != nil {
		return err
	}
	to, err := parseArg(args[1], pOpts)
	if err != nil {
		return err
	}
	if ir.Equal(from, to) {
		return nil
	}
	if cfg.Color {
		color.NoColor = false
	}
	// diff the canonical text so formatting differences between the
	// inputs never show up.
	fromText := encode.MustString(from)
	toText := encode.MustString(to)
	if err := writeLineDiff(cc.Out, fromText, toText); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeLineDiff(w io.Writer, fromText, toText string) error {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	for _, d := range diffs {
		prefix, paint := "  ", fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "- ", color.RedString
		case diffpatch.DiffInsert:
			prefix, paint = "+ ", color.GreenString
		}
		for _, ln := range splitLines(d.Text) {
			if _, err := io.WriteString(w, paint("%s", prefix+ln)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
