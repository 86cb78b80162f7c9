package vars

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ucl-format/go-ucl/debug"
)

type Option func(*expander)

// WithWarn installs a callback for non-fatal diagnostics, currently
// only ErrCircular warnings.
func WithWarn(f func(error)) Option {
	return func(e *expander) { e.warn = f }
}

type expander struct {
	h      Handler
	warn   func(error)
	stack  []string
	cycled bool
}

// Expand resolves variable references in src. The first pass computes
// the exact output length and batches lookups; the second pass copies
// into a single allocation. Unresolved references keep their original
// bytes.
func Expand(src string, h Handler, opts ...Option) string {
	if !strings.Contains(src, "$") {
		return src
	}
	e := &expander{h: h}
	for _, opt := range opts {
		opt(e)
	}
	memo := map[string]string{}

	n := 0
	for i := 0; i < len(src); {
		if src[i] != '$' {
			n++
			i++
			continue
		}
		rep, raw := e.ref(src, i, memo)
		n += len(rep)
		i += raw
	}

	b := make([]byte, 0, n)
	for i := 0; i < len(src); {
		if src[i] != '$' {
			b = append(b, src[i])
			i++
			continue
		}
		rep, raw := e.ref(src, i, memo)
		b = append(b, rep...)
		i += raw
	}
	if debug.Expand() {
		debug.Logf("expand: %q -> %q\n", src, string(b))
	}
	return string(b)
}

func isVarStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isVarByte(b byte) bool {
	return isVarStart(b) || (b >= '0' && b <= '9')
}

// ref handles one '$' at src[i], returning the replacement text and
// the raw bytes consumed.
func (e *expander) ref(src string, i int, memo map[string]string) (string, int) {
	if i+1 >= len(src) {
		return "$", 1
	}
	switch c := src[i+1]; {
	case c == '$':
		return "$", 2
	case c == '{':
		end := matchBrace(src, i+1)
		if end == -1 {
			// No closing brace: the delimiters stay as-is and
			// scanning continues after them.
			return "${", 2
		}
		raw := src[i : end+1]
		if memo != nil {
			if rep, ok := memo[raw]; ok {
				return rep, len(raw)
			}
		}
		inner := src[i+2 : end]
		name := inner
		hasDef := false
		def := ""
		if j := strings.Index(inner, ":-"); j != -1 {
			name, def, hasDef = inner[:j], inner[j+2:], true
		}
		if name == "" {
			return raw, len(raw)
		}
		rep := e.resolve(name, hasDef, def, raw)
		if memo != nil {
			memo[raw] = rep
		}
		return rep, len(raw)
	case isVarStart(c):
		j := i + 1
		for j < len(src) && isVarByte(src[j]) {
			j++
		}
		raw := src[i:j]
		if memo != nil {
			if rep, ok := memo[raw]; ok {
				return rep, len(raw)
			}
		}
		rep := e.resolve(raw[1:], false, "", raw)
		if memo != nil {
			memo[raw] = rep
		}
		return rep, len(raw)
	default:
		return "$", 1
	}
}

func matchBrace(src string, open int) int {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// resolve looks up name, recursively expanding the result. A cycle
// anywhere beneath makes the reference unresolved at this level: the
// default wins when present, else the raw text passes through.
func (e *expander) resolve(name string, hasDef bool, def, raw string) string {
	if slices.Contains(e.stack, name) {
		e.cycled = true
		if e.warn != nil {
			e.warn(fmt.Errorf("%w: %s (via %s)", ErrCircular, name, strings.Join(e.stack, " -> ")))
		}
		return e.unresolved(hasDef, def, raw)
	}
	// The name stays on the stack while its value or default expands
	// so self-referential defaults cannot recurse.
	e.stack = append(e.stack, name)
	defer func() {
		e.stack = e.stack[:len(e.stack)-1]
	}()
	v, ok := "", false
	if e.h != nil {
		v, ok = e.h.Resolve(name)
	}
	if !ok {
		return e.unresolved(hasDef, def, raw)
	}
	saved := e.cycled
	e.cycled = false
	ev := e.expandStr(v)
	cycledBelow := e.cycled
	e.cycled = saved || cycledBelow
	if cycledBelow {
		return e.unresolved(hasDef, def, raw)
	}
	return ev
}

func (e *expander) unresolved(hasDef bool, def, raw string) string {
	if hasDef {
		return e.expandStr(def)
	}
	return raw
}

func (e *expander) expandStr(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '$' {
			b.WriteByte(s[i])
			i++
			continue
		}
		rep, raw := e.ref(s, i, nil)
		b.WriteString(rep)
		i += raw
	}
	return b.String()
}
