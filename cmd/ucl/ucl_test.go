package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/ucl-format/go-ucl/vars"
)

func TestBindOpt(t *testing.T) {
	env := vars.Map{}
	bind := bindOptTypeFunc(env)
	_, err := bind(nil, "HOST=10.0.0.1")
	require.NoError(t, err)
	_, err = bind(nil, "EMPTY=")
	require.NoError(t, err)
	require.Equal(t, vars.Map{"HOST": "10.0.0.1", "EMPTY": ""}, env)

	_, err = bind(nil, "novalue")
	require.Error(t, err)
	_, err = bind(nil, "=x")
	require.Error(t, err)
}

func TestExprValue(t *testing.T) {
	require.Equal(t, int64(3), exprValue("3"))
	require.Equal(t, 2.5, exprValue("2.5"))
	require.Equal(t, true, exprValue("true"))
	require.Equal(t, "10.0.0.1", exprValue("10.0.0.1"))
}

func TestWriteLineDiff(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	var b strings.Builder
	err := writeLineDiff(&b, "a = 1\nb = 2\n", "a = 1\nb = 3\n")
	require.NoError(t, err)
	require.Equal(t, "  a = 1\n- b = 2\n+ b = 3\n", b.String())
}

func TestSplitLines(t *testing.T) {
	require.Nil(t, splitLines(""))
	require.Nil(t, splitLines("\n"))
	require.Equal(t, []string{"x"}, splitLines("x\n"))
	require.Equal(t, []string{"x", "y"}, splitLines("x\ny"))
}
