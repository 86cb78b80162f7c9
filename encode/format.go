package encode

import "fmt"

type Format int

const (
	UCLFormat Format = iota
	JSONFormat
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	default:
		return "ucl"
	}
}

// FormatSuffix returns the file extension for f.
func FormatSuffix(f Format) string {
	return "." + f.String()
}

// ParseFormat maps a format name to its Format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "ucl":
		return UCLFormat, nil
	case "json":
		return JSONFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, s)
}
