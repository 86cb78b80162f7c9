package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan   bool
	Parse  bool
	Expand bool
	Style  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("UCL_DEBUG_SCAN")
	d.Parse = boolEnv("UCL_DEBUG_PARSE")
	d.Expand = boolEnv("UCL_DEBUG_EXPAND")
	d.Style = boolEnv("UCL_DEBUG_STYLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}
func Expand() bool {
	return d.Expand
}
func Style() bool {
	return d.Style
}
