package encode

type encState struct {
	format   Format
	indent   int
	depth    int
	compact  bool
	comments bool
	colors   *Colors
}

func defaultEncState() *encState {
	return &encState{indent: 2}
}

type EncodeOption func(*encState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *encState) { es.format = f }
}

// EncodeIndent sets spaces per nesting level. The default is 2.
func EncodeIndent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// EncodeCompact renders on a single line with minimal whitespace.
func EncodeCompact(v bool) EncodeOption {
	return func(es *encState) { es.compact = v }
}

// EncodeComments writes node comments back out. UCL output only.
func EncodeComments(v bool) EncodeOption {
	return func(es *encState) { es.comments = v }
}

// EncodeColors colorizes UCL and JSON output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
