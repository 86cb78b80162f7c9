package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/ucl-format/go-ucl/debug"
	"github.com/ucl-format/go-ucl/ir"
	"github.com/ucl-format/go-ucl/token"
	"github.com/ucl-format/go-ucl/vars"
)

// Parse reads a whole document. A document is either a sequence of
// key-value statements forming the root object or a single value
// (object, array, or scalar) for JSON compatibility.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	return newParser(data, nil, opts).document()
}

// ParseReader parses a document from r, reading only as far as the
// current token needs. Input already read stays buffered.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	return newParser(nil, r, opts).document()
}

// ParseValue reads exactly one value followed by end of input.
func ParseValue(data []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(data, nil, opts)
	if err := p.skipSeps(); err != nil {
		return nil, err
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseObject parses a document and requires the result to be an
// object.
func ParseObject(data []byte, opts ...ParseOption) (*ir.Node, error) {
	v, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	if v.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: document is %s, not an object", ErrParse, v.Type)
	}
	return v, nil
}

// ParseArray parses a document and requires the result to be an array.
func ParseArray(data []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(data, nil, opts)
	if err := p.skipSeps(); err != nil {
		return nil, err
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if v.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: value is %s, not an array", ErrParse, v.Type)
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return v, nil
}

type parser struct {
	sc      *token.Scanner
	opts    parseOpts
	depth   int
	pending []string
}

func newParser(data []byte, r io.Reader, opts []ParseOption) *parser {
	o := defaultParseOpts()
	for _, f := range opts {
		f(&o)
	}
	so := o.scanOpts
	if o.comments {
		so = append(so, token.ScanComments(true))
	}
	var sc *token.Scanner
	if r != nil {
		sc = token.NewSource(r, so...)
	} else {
		sc = token.NewScanner(data, so...)
	}
	return &parser{sc: sc, opts: o}
}

func (p *parser) document() (*ir.Node, error) {
	root := ir.NewObject()
	if err := p.skipSeps(); err != nil {
		return nil, err
	}
	t1, err := p.peek1()
	if err != nil {
		return nil, err
	}
	switch t1.Type {
	case token.TEOF:
		p.attachComment(root)
		return root, nil
	case token.TLCurl, token.TLSquare:
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		p.attachComment(v)
		if err := p.expectEnd(); err != nil {
			return nil, err
		}
		return v, nil
	}

	first, err := p.next()
	if err != nil {
		return nil, err
	}
	nt, err := p.peek1()
	if err != nil {
		return nil, err
	}
	switch {
	case nt.Type == token.TPlus:
		v, err := p.scalarNode(first)
		if err != nil {
			return nil, err
		}
		v, _, err = p.concatLoop(v)
		if err != nil {
			return nil, err
		}
		if err := p.expectEnd(); err != nil {
			return nil, err
		}
		return v, nil
	case nt.IsSep() || nt.Type == token.TEOF:
		if err := p.skipSeps(); err != nil {
			return nil, err
		}
		after, err := p.peek1()
		if err != nil {
			return nil, err
		}
		if after.Type == token.TEOF && first.Type != token.TIdent {
			// A lone scalar is the whole document.
			v, err := p.scalarNode(first)
			if err != nil {
				return nil, err
			}
			p.attachComment(v)
			return v, nil
		}
		key, err := p.keyOf(first, nt)
		if err != nil {
			return nil, err
		}
		flag := ir.FromBool(true)
		p.attachComment(flag)
		if err := p.insert(root, key, flag); err != nil {
			return nil, err
		}
	default:
		if err := p.statement(root, first); err != nil {
			return nil, err
		}
	}
	if err := p.body(root, token.TEOF); err != nil {
		return nil, err
	}
	p.attachComment(root)
	if debug.Parse() {
		debug.Logf("parse: document with %d fields\n", len(root.Fields))
	}
	return root, nil
}

// body consumes statements until term, which is TRCurl for a braced
// object and TEOF for the document root.
func (p *parser) body(obj *ir.Node, term token.TokenType) error {
	for {
		if err := p.skipSeps(); err != nil {
			return err
		}
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.Type == term {
			return nil
		}
		if tok.Type == token.TEOF {
			return fmt.Errorf("%w: unterminated object at %s", ErrParse, tok.Pos)
		}
		if err := p.statement(obj, tok); err != nil {
			return err
		}
	}
}

// statement parses one key-value pair whose key token is already
// consumed. The next token decides the style.
func (p *parser) statement(obj *ir.Node, keyTok token.Token) error {
	nt, err := p.peek1()
	if err != nil {
		return err
	}
	key, err := p.keyOf(keyTok, nt)
	if err != nil {
		return err
	}
	if debug.Style() {
		debug.Logf("style: key %q then %s at %s\n", key, nt.Type, nt.Pos)
	}
	var val *ir.Node
	switch {
	case nt.Type == token.TEquals || nt.Type == token.TColon:
		if _, err := p.next(); err != nil {
			return err
		}
		val, err = p.value()
	case nt.Type == token.TLCurl || nt.Type == token.TLSquare:
		val, err = p.value()
	case nt.IsSep() || nt.Type == token.TEOF || nt.Type == token.TRCurl:
		val = ir.FromBool(true)
	case nt.IsValue():
		val, err = p.implicit()
	default:
		err = fmt.Errorf("%w: unexpected %s after key %q at %s", ErrParse, nt.Type, key, nt.Pos)
	}
	if err != nil {
		return err
	}
	p.attachComment(val)
	return p.insert(obj, key, val)
}

// implicit parses an unmarked value: one scalar, several same-line
// scalars joined into one string, or a key path ending in a braced
// object ("key disc { ... }").
func (p *parser) implicit() (*ir.Node, error) {
	type item struct {
		tok    token.Token
		node   *ir.Node
		concat bool
	}
	var items []item
	for {
		nt, err := p.peek1()
		if err != nil {
			return nil, err
		}
		switch {
		case nt.Type == token.TLCurl:
			inner, err := p.value()
			if err != nil {
				return nil, err
			}
			for i := len(items) - 1; i >= 0; i-- {
				if items[i].concat {
					return nil, fmt.Errorf("%w: concatenation in key path at %s",
						ErrParse, items[i].tok.Pos)
				}
				k, err := p.keyOf(items[i].tok, nt)
				if err != nil {
					return nil, err
				}
				w := ir.NewObject()
				w.SetField(k, inner)
				inner = w
			}
			return inner, nil
		case nt.IsSep() || nt.Type == token.TEOF || nt.Type == token.TRCurl:
			goto done
		case nt.IsValue() && nt.Type != token.TLSquare:
			tok, err := p.next()
			if err != nil {
				return nil, err
			}
			n, err := p.scalarNode(tok)
			if err != nil {
				return nil, err
			}
			n, did, err := p.concatLoop(n)
			if err != nil {
				return nil, err
			}
			items = append(items, item{tok: tok, node: n, concat: did})
		default:
			return nil, fmt.Errorf("%w: unexpected %s at %s", ErrParse, nt.Type, nt.Pos)
		}
	}
done:
	if len(items) == 1 {
		return items[0].node, nil
	}
	// Several same-line scalars collapse into one space-joined string.
	parts := make([]string, len(items))
	for i, it := range items {
		if it.node.Type == ir.StringType {
			parts[i] = it.node.String
		} else {
			parts[i] = string(it.tok.Bytes)
		}
	}
	return ir.FromString(strings.Join(parts, " ")), nil
}

// value parses one explicit value: object, array, or scalar with
// optional string concatenation. Newlines before the value are
// skipped.
func (p *parser) value() (*ir.Node, error) {
	tok, err := p.nextSkipNewlines()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TLCurl:
		if err := p.enter(tok.Pos); err != nil {
			return nil, err
		}
		defer p.leave()
		obj := ir.NewObject()
		if err := p.body(obj, token.TRCurl); err != nil {
			return nil, err
		}
		return obj, nil
	case token.TLSquare:
		if err := p.enter(tok.Pos); err != nil {
			return nil, err
		}
		defer p.leave()
		return p.array(tok.Pos)
	case token.TEOF:
		return nil, fmt.Errorf("%w: missing value at %s", ErrParse, tok.Pos)
	}
	n, err := p.scalarNode(tok)
	if err != nil {
		return nil, err
	}
	n, _, err = p.concatLoop(n)
	return n, err
}

func (p *parser) array(open *token.Pos) (*ir.Node, error) {
	arr := ir.NewArray()
	for {
		if err := p.skipSeps(); err != nil {
			return nil, err
		}
		nt, err := p.peek1()
		if err != nil {
			return nil, err
		}
		if nt.Type == token.TRSquare {
			_, err := p.next()
			return arr, err
		}
		if nt.Type == token.TEOF {
			return nil, fmt.Errorf("%w: unterminated array at %s", ErrParse, open)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		p.attachComment(v)
		arr.Append(v)
	}
}

// concatLoop folds "+"-joined string pieces into n.
func (p *parser) concatLoop(n *ir.Node) (*ir.Node, bool, error) {
	did := false
	for {
		nt, err := p.peek1()
		if err != nil {
			return nil, false, err
		}
		if nt.Type != token.TPlus {
			return n, did, nil
		}
		if n.Type != ir.StringType {
			return nil, false, fmt.Errorf("%w: cannot concatenate %s at %s",
				ErrParse, n.Type, nt.Pos)
		}
		if _, err := p.next(); err != nil {
			return nil, false, err
		}
		rt, err := p.nextSkipNewlines()
		if err != nil {
			return nil, false, err
		}
		var s string
		switch rt.Type {
		case token.TString:
			s, _, err = p.stringValue(rt)
		case token.TIdent:
			s, err = p.postProcess(rt.Str, rt.Pos)
		default:
			err = fmt.Errorf("%w: expected string after + at %s", ErrParse, rt.Pos)
		}
		if err != nil {
			return nil, false, err
		}
		n = ir.FromString(n.String + s)
		did = true
	}
}

// scalarNode converts one scalar token to a tree node, running
// variable expansion and the hook surface.
func (p *parser) scalarNode(tok token.Token) (*ir.Node, error) {
	switch tok.Type {
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TNull:
		return ir.Null(), nil
	case token.TInteger:
		if tok.Suffix != "" {
			return p.suffixNode(float64(tok.Int), tok)
		}
		return ir.FromInt(tok.Int), nil
	case token.TFloat:
		if tok.Suffix != "" {
			return p.suffixNode(tok.Float, tok)
		}
		return ir.FromFloat(tok.Float), nil
	case token.TTime:
		return ir.FromTime(tok.Float), nil
	case token.TString:
		s, owned, err := p.stringValue(tok)
		if err != nil {
			return nil, err
		}
		if owned {
			return ir.FromString(s), nil
		}
		return ir.FromBorrowedString(s), nil
	case token.TIdent:
		switch tok.Str {
		case "yes", "on":
			return ir.FromBool(true), nil
		case "no", "off":
			return ir.FromBool(false), nil
		}
		s, err := p.postProcess(tok.Str, tok.Pos)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	return nil, fmt.Errorf("%w: unexpected %s at %s", ErrParse, tok.Type, tok.Pos)
}

// stringValue expands variables in double-quoted and heredoc payloads
// and runs the string hooks. Raw strings keep their bytes untouched.
func (p *parser) stringValue(tok token.Token) (string, bool, error) {
	s := tok.Str
	owned := tok.Owned
	if tok.HasVar && tok.Dialect != token.DialectRaw {
		var vopts []vars.Option
		if p.opts.warn != nil {
			vopts = append(vopts, vars.WithWarn(p.opts.warn))
		}
		if es := vars.Expand(s, p.opts.resolver, vopts...); es != s {
			s, owned = es, true
		}
	}
	ns, err := p.postProcess(s, tok.Pos)
	if err != nil {
		return "", false, err
	}
	if ns != s {
		s, owned = ns, true
	}
	return s, owned, nil
}

func (p *parser) postProcess(s string, pos *token.Pos) (string, error) {
	for _, h := range p.opts.strHooks {
		ns, err := h(s)
		if err != nil {
			return "", fmt.Errorf("%w at %s: %w", ErrString, pos, err)
		}
		s = ns
	}
	return s, nil
}

func (p *parser) suffixNode(mant float64, tok token.Token) (*ir.Node, error) {
	for _, h := range p.opts.suffixes {
		if n, ok := h(mant, tok.Suffix); ok {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %q at %s", ErrNumberSuffix, tok.Suffix, tok.Pos)
}

// keyOf validates tok in key position. The reserved words true, false,
// and null may serve as keys only when next marks them unambiguous.
func (p *parser) keyOf(tok, next token.Token) (string, error) {
	switch tok.Type {
	case token.TIdent, token.TString:
		return tok.Str, nil
	case token.TInteger, token.TFloat, token.TTime:
		return string(tok.Bytes), nil
	case token.TTrue, token.TFalse, token.TNull:
		switch next.Type {
		case token.TEquals, token.TColon, token.TLCurl:
			return string(tok.Bytes), nil
		}
		return "", fmt.Errorf("%w: %q at %s", ErrBadKey, string(tok.Bytes), tok.Pos)
	}
	return "", fmt.Errorf("%w: %s at %s", ErrBadKey, tok.Type, tok.Pos)
}

// insert stores val under key, coalescing with any prior value, and
// runs the validation hooks on the stored node.
func (p *parser) insert(obj *ir.Node, key string, val *ir.Node) error {
	if old := obj.Get(key); old != nil {
		val = ir.Coalesce(old, val)
	}
	obj.SetField(key, val)
	stored := obj.Get(key)
	for _, c := range p.opts.checks {
		if err := c(stored.KeyPath(), stored); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrValidation, stored.KeyPath(), err)
		}
	}
	return nil
}

func (p *parser) enter(pos *token.Pos) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w (%d) at %s", ErrDepth, p.opts.maxDepth, pos)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// peek1 returns the next non-comment token without consuming it,
// draining comment tokens into the pending buffer.
func (p *parser) peek1() (token.Token, error) {
	for {
		tok, err := p.sc.Peek(1)
		if err != nil {
			return tok, err
		}
		if tok.Type != token.TComment {
			return tok, nil
		}
		if _, err := p.sc.Next(); err != nil {
			return token.Token{}, err
		}
		if p.opts.comments {
			p.pending = append(p.pending, strings.Split(tok.Str, "\n")...)
		}
	}
}

func (p *parser) next() (token.Token, error) {
	if _, err := p.peek1(); err != nil {
		return token.Token{}, err
	}
	return p.sc.Next()
}

func (p *parser) nextSkipNewlines() (token.Token, error) {
	for {
		tok, err := p.next()
		if err != nil || tok.Type != token.TNewline {
			return tok, err
		}
	}
}

func (p *parser) skipSeps() error {
	for {
		nt, err := p.peek1()
		if err != nil {
			return err
		}
		if !nt.IsSep() {
			return nil
		}
		if _, err := p.next(); err != nil {
			return err
		}
	}
}

func (p *parser) expectEnd() error {
	if err := p.skipSeps(); err != nil {
		return err
	}
	nt, err := p.peek1()
	if err != nil {
		return err
	}
	if nt.Type != token.TEOF {
		return fmt.Errorf("%w: trailing %s at %s", ErrParse, nt.Type, nt.Pos)
	}
	return nil
}

// attachComment moves pending comment lines onto n.
func (p *parser) attachComment(n *ir.Node) {
	if !p.opts.comments || len(p.pending) == 0 || n == nil {
		return
	}
	if n.Comment == nil {
		n.Comment = &ir.Node{Parent: n, Type: ir.CommentType}
	}
	n.Comment.Lines = append(n.Comment.Lines, p.pending...)
	p.pending = nil
}
