package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ucl-format/go-ucl/ir"
	"github.com/ucl-format/go-ucl/token"
)

// Encode writes node to w in the configured format. UCL output renders
// a root object as top-level statements without braces.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := defaultEncState()
	for _, opt := range opts {
		opt(es)
	}
	if es.format == YAMLFormat {
		return encodeYAML(node, w)
	}
	e := &encoder{w: w, es: es}
	switch {
	case es.format == UCLFormat && node.Type == ir.ObjectType:
		e.statements(node)
	case es.format == UCLFormat:
		e.value(node)
		e.str("\n")
	default:
		e.json(node)
		e.str("\n")
	}
	return e.err
}

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString renders node and panics on failure; for tests and debug
// output.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

type encoder struct {
	w   io.Writer
	es  *encState
	err error
}

func (e *encoder) str(s string) {
	if e.err == nil {
		_, e.err = io.WriteString(e.w, s)
	}
}

func (e *encoder) color(t ir.Type, a ColorAttr, s string) string {
	if e.es.colors == nil {
		return s
	}
	return e.es.colors.Color(t, a, s)
}

func (e *encoder) pad() {
	e.str(strings.Repeat(" ", e.es.indent*e.es.depth))
}

// statements renders an object body one key per line, or joined with
// "; " in compact mode.
func (e *encoder) statements(obj *ir.Node) {
	for i, f := range obj.Fields {
		v := obj.Values[i]
		if i > 0 && e.es.compact {
			e.str(e.color(ir.ObjectType, SepColor, "; "))
		}
		if !e.es.compact {
			e.commentLines(v)
			e.pad()
		}
		e.key(f.String)
		if v.Type == ir.ObjectType {
			e.str(" ")
			e.object(v)
		} else {
			e.str(e.color(ir.ObjectType, SepColor, " = "))
			e.value(v)
		}
		if !e.es.compact {
			e.str("\n")
		}
	}
}

func (e *encoder) commentLines(v *ir.Node) {
	if !e.es.comments || v.Comment == nil {
		return
	}
	for _, ln := range v.Comment.Lines {
		e.pad()
		e.str(e.color(ir.CommentType, ValueColor, "# "+ln))
		e.str("\n")
	}
}

func (e *encoder) key(k string) {
	s := k
	if token.NeedsQuote(k) {
		s = token.Quote(k, true)
	}
	e.str(e.color(ir.ObjectType, FieldColor, s))
}

func (e *encoder) object(v *ir.Node) {
	if len(v.Fields) == 0 {
		e.str(e.color(ir.ObjectType, SepColor, "{}"))
		return
	}
	e.str(e.color(ir.ObjectType, SepColor, "{"))
	if e.es.compact {
		e.str(" ")
	} else {
		e.str("\n")
	}
	e.es.depth++
	e.statements(v)
	e.es.depth--
	if e.es.compact {
		e.str(" ")
	} else {
		e.pad()
	}
	e.str(e.color(ir.ObjectType, SepColor, "}"))
}

// value renders a UCL value. Arrays and their contents stay on one
// line.
func (e *encoder) value(v *ir.Node) {
	switch v.Type {
	case ir.NullType:
		e.str(e.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		e.str(e.color(ir.BoolType, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.IntType:
		e.str(e.color(ir.IntType, ValueColor, strconv.FormatInt(v.Int, 10)))
	case ir.FloatType:
		e.str(e.color(ir.FloatType, ValueColor, formatFloatUCL(v.Float)))
	case ir.TimeType:
		e.str(e.color(ir.TimeType, ValueColor, formatSeconds(v.Float)+"s"))
	case ir.StringType:
		s := v.String
		if token.NeedsQuote(s) {
			s = token.Quote(s, true)
		}
		e.str(e.color(ir.StringType, ValueColor, s))
	case ir.ArrayType:
		saved := e.es.compact
		e.es.compact = true
		e.str(e.color(ir.ArrayType, SepColor, "["))
		for i, elt := range v.Values {
			if i > 0 {
				e.str(e.color(ir.ArrayType, SepColor, ", "))
			}
			if elt.Type == ir.ObjectType {
				e.object(elt)
			} else {
				e.value(elt)
			}
		}
		e.str(e.color(ir.ArrayType, SepColor, "]"))
		e.es.compact = saved
	case ir.ObjectType:
		e.object(v)
	default:
		e.err = fmt.Errorf("%w: cannot encode %s", ErrEncoding, v.Type)
	}
}

// json renders standard JSON. Non-finite floats become null.
func (e *encoder) json(v *ir.Node) {
	switch v.Type {
	case ir.NullType:
		e.str(e.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		e.str(e.color(ir.BoolType, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.IntType:
		e.str(e.color(ir.IntType, ValueColor, strconv.FormatInt(v.Int, 10)))
	case ir.FloatType:
		e.str(e.color(ir.FloatType, ValueColor, formatFloatJSON(v.Float)))
	case ir.TimeType:
		e.str(e.color(ir.TimeType, ValueColor, formatSeconds(v.Float)))
	case ir.StringType:
		e.str(e.color(ir.StringType, ValueColor, token.Quote(v.String, false)))
	case ir.ArrayType:
		if len(v.Values) == 0 {
			e.str(e.color(ir.ArrayType, SepColor, "[]"))
			return
		}
		e.str(e.color(ir.ArrayType, SepColor, "["))
		e.es.depth++
		for i, elt := range v.Values {
			if i > 0 {
				e.str(e.color(ir.ArrayType, SepColor, ","))
			}
			e.jnl()
			e.json(elt)
		}
		e.es.depth--
		e.jnl()
		e.str(e.color(ir.ArrayType, SepColor, "]"))
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			e.str(e.color(ir.ObjectType, SepColor, "{}"))
			return
		}
		e.str(e.color(ir.ObjectType, SepColor, "{"))
		e.es.depth++
		for i, f := range v.Fields {
			if i > 0 {
				e.str(e.color(ir.ObjectType, SepColor, ","))
			}
			e.jnl()
			e.str(e.color(ir.ObjectType, FieldColor, token.Quote(f.String, false)))
			if e.es.compact {
				e.str(":")
			} else {
				e.str(": ")
			}
			e.json(v.Values[i])
		}
		e.es.depth--
		e.jnl()
		e.str(e.color(ir.ObjectType, SepColor, "}"))
	default:
		e.err = fmt.Errorf("%w: cannot encode %s", ErrEncoding, v.Type)
	}
}

func (e *encoder) jnl() {
	if e.es.compact {
		return
	}
	e.str("\n")
	e.pad()
}

func formatFloatUCL(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return withPoint(strconv.FormatFloat(f, 'g', -1, 64))
}

func formatFloatJSON(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return withPoint(strconv.FormatFloat(f, 'g', -1, 64))
}

// withPoint keeps float values float-shaped on a reparse.
func withPoint(s string) string {
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}

func formatSeconds(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	b, err := yaml.Marshal(yamlValue(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(b)
	return err
}

// yamlValue converts the tree for goccy/go-yaml, using MapSlice to
// keep key order.
func yamlValue(n *ir.Node) any {
	switch n.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, len(n.Fields))
		for i, f := range n.Fields {
			ms = append(ms, yaml.MapItem{Key: f.String, Value: yamlValue(n.Values[i])})
		}
		return ms
	case ir.ArrayType:
		out := make([]any, len(n.Values))
		for i, v := range n.Values {
			out[i] = yamlValue(v)
		}
		return out
	case ir.BoolType:
		return n.Bool
	case ir.IntType:
		return n.Int
	case ir.FloatType, ir.TimeType:
		return n.Float
	case ir.StringType:
		return n.String
	default:
		return nil
	}
}
