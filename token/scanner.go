package token

import (
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/ucl-format/go-ucl/debug"
)

// errMore signals that the current token runs past the buffered input
// and the streaming source should be refilled.
var errMore = errors.New("need more input")

// Scanner turns UCL source into tokens. In buffer mode the whole
// document is held; in streaming mode (NewSource) the buffer grows as
// needed to complete the current token.
type Scanner struct {
	doc    []byte
	posDoc *PosDoc
	opts   scanOpts
	i      int
	nTok   int
	peeked []Token
	src    io.Reader
	srcEOF bool
}

func NewScanner(data []byte, opts ...ScanOption) *Scanner {
	o := defaultScanOpts()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scanner{
		doc:    data,
		posDoc: NewPosDoc(data),
		opts:   o,
	}
}

func (s *Scanner) atEOF() bool {
	return s.src == nil || s.srcEOF
}

// Pos reports the scanner's current position.
func (s *Scanner) Pos() *Pos {
	return s.posDoc.Pos(s.i)
}

// Next returns the next token. At end of input it returns TEOF
// repeatedly.
func (s *Scanner) Next() (Token, error) {
	if len(s.peeked) > 0 {
		tok := s.peeked[0]
		s.peeked = s.peeked[1:]
		return tok, nil
	}
	return s.scan()
}

// Peek returns the nth upcoming token without consuming it; n starts
// at 1.
func (s *Scanner) Peek(n int) (Token, error) {
	for len(s.peeked) < n {
		tok, err := s.scan()
		if err != nil {
			return Token{}, err
		}
		s.peeked = append(s.peeked, tok)
		if tok.Type == TEOF {
			break
		}
	}
	if n > len(s.peeked) {
		return s.peeked[len(s.peeked)-1], nil
	}
	return s.peeked[n-1], nil
}

func (s *Scanner) scan() (Token, error) {
	for {
		tok, n, err := s.scanOne()
		if err == errMore {
			if ferr := s.fill(); ferr != nil {
				return Token{}, ferr
			}
			continue
		}
		if err != nil {
			return Token{}, err
		}
		s.i += n
		if tok.Type == TEOF && n > 0 {
			// Whitespace or a skipped comment; keep going.
			continue
		}
		s.nTok++
		if s.opts.maxTokens > 0 && s.nTok > s.opts.maxTokens {
			return Token{}, NewScanErr(ErrTooManyTokens, tok.Pos)
		}
		if debug.Scan() {
			debug.Logf("scan: %s %q\n", tok.Type, string(tok.Bytes))
		}
		return tok, nil
	}
}

// scanOne scans a single token at s.i without advancing the scanner;
// it returns the token and the bytes consumed. A zero-value TEOF token
// with n > 0 means whitespace or a skipped comment was consumed.
func (s *Scanner) scanOne() (Token, int, error) {
	d := s.doc
	i := s.i
	if i >= len(d) {
		if !s.atEOF() {
			return Token{}, 0, errMore
		}
		return Token{Type: TEOF, Pos: s.posDoc.Pos(i)}, 0, nil
	}
	b := d[i]
	switch {
	case b == ' ' || b == '\t' || b == '\r':
		n := 1
		for i+n < len(d) && (d[i+n] == ' ' || d[i+n] == '\t' || d[i+n] == '\r') {
			n++
		}
		return Token{Type: TEOF, Pos: s.posDoc.Pos(i)}, n, nil
	case b == '\n':
		s.posDoc.nl(i)
		return Token{Type: TNewline, Pos: s.posDoc.Pos(i), Bytes: d[i : i+1]}, 1, nil
	case b == '#':
		return s.scanLineComment(i, 1)
	case b == '/' && s.commentAllowed(i):
		if i+1 < len(d) {
			switch d[i+1] {
			case '/':
				return s.scanLineComment(i, 2)
			case '*':
				return s.scanBlockComment(i)
			}
		} else if !s.atEOF() {
			return Token{}, 0, errMore
		}
	case b == '"':
		tok, n, err := s.scanJSONString(i)
		return tok, n, err
	case b == '\'':
		tok, n, err := s.scanRawString(i)
		return tok, n, err
	case b == '<':
		if i+1 >= len(d) && !s.atEOF() {
			return Token{}, 0, errMore
		}
		if i+1 < len(d) && d[i+1] == '<' {
			return s.scanHeredoc(i)
		}
		return Token{}, 0, NewScanErr(ErrUnexpectedByte, s.posDoc.Pos(i))
	}
	if tt, ok := punctType(b); ok {
		// A sign immediately followed by a digit opens a number, not
		// punctuation.
		if b == '+' && i+1 < len(d) && isDigit(d[i+1]) {
			return s.scanAtom(i)
		}
		return Token{Type: tt, Pos: s.posDoc.Pos(i), Bytes: d[i : i+1]}, 1, nil
	}
	if isKeyStart(b) || isDigit(b) || b == '-' || b == '+' || b == '.' {
		return s.scanAtom(i)
	}
	return Token{}, 0, NewScanErr(ErrUnexpectedByte, s.posDoc.Pos(i))
}

func punctType(b byte) (TokenType, bool) {
	switch b {
	case '{':
		return TLCurl, true
	case '}':
		return TRCurl, true
	case '[':
		return TLSquare, true
	case ']':
		return TRSquare, true
	case ',':
		return TComma, true
	case ';':
		return TSemi, true
	case '=':
		return TEquals, true
	case ':':
		return TColon, true
	case '+':
		return TPlus, true
	}
	return 0, false
}

// commentAllowed reports whether a '/' at offset i may open a comment:
// only at start of input or after whitespace, so bare words and URLs
// keep their slashes.
func (s *Scanner) commentAllowed(i int) bool {
	if i == 0 {
		return true
	}
	p := s.doc[i-1]
	return classTable[p]&(clsWS|clsWSUnsafe) != 0
}

func (s *Scanner) scanLineComment(start, markerLen int) (Token, int, error) {
	d := s.doc
	end := bytes.IndexByte(d[start:], '\n')
	if end == -1 {
		if !s.atEOF() {
			return Token{}, 0, errMore
		}
		end = len(d) - start
	}
	// The newline is not part of the comment and stays unconsumed.
	if end > s.opts.maxCommentLen {
		return Token{}, 0, NewScanErr(ErrCommentTooLong, s.posDoc.Pos(start))
	}
	if !s.opts.comments {
		return Token{Type: TEOF, Pos: s.posDoc.Pos(start)}, end, nil
	}
	return Token{
		Type:  TComment,
		Pos:   s.posDoc.Pos(start),
		Bytes: d[start : start+end],
		Str:   string(bytes.TrimSpace(d[start+markerLen : start+end])),
	}, end, nil
}

// scanBlockComment consumes a nesting /* */ comment using a depth
// counter.
func (s *Scanner) scanBlockComment(start int) (Token, int, error) {
	d := s.doc
	i := start + 2
	depth := 1
	for depth > 0 {
		if i+1 >= len(d) {
			if !s.atEOF() {
				return Token{}, 0, errMore
			}
			return Token{}, 0, NewScanErr(ErrUnterminatedComment, s.posDoc.Pos(start))
		}
		switch {
		case d[i] == '/' && d[i+1] == '*':
			depth++
			i += 2
		case d[i] == '*' && d[i+1] == '/':
			depth--
			i += 2
		default:
			if d[i] == '\n' {
				s.posDoc.nl(i)
			}
			i++
		}
	}
	n := i - start
	if n > s.opts.maxCommentLen {
		return Token{}, 0, NewScanErr(ErrCommentTooLong, s.posDoc.Pos(start))
	}
	if !s.opts.comments {
		return Token{Type: TEOF, Pos: s.posDoc.Pos(start)}, n, nil
	}
	return Token{
		Type:  TComment,
		Pos:   s.posDoc.Pos(start),
		Bytes: d[start:i],
		Str:   string(bytes.TrimSpace(d[start+2 : i-2])),
	}, n, nil
}

// scanAtom consumes an unquoted atom and classifies it as a keyword,
// number, or bare word.
func (s *Scanner) scanAtom(start int) (Token, int, error) {
	d := s.doc
	i := start
	for i < len(d) {
		b := d[i]
		if isValueEnd(b) || isWS(b) || b == '\r' {
			break
		}
		switch b {
		case ':', '=', '{', '[', '"', '\'':
			goto done
		}
		i++
	}
	if i >= len(d) && !s.atEOF() {
		return Token{}, 0, errMore
	}
done:
	atom := d[start:i]
	n := i - start
	pos := s.posDoc.Pos(start)
	tok := Token{Pos: pos, Bytes: atom}
	switch string(atom) {
	case "true":
		tok.Type = TTrue
		return tok, n, nil
	case "false":
		tok.Type = TFalse
		return tok, n, nil
	case "null":
		tok.Type = TNull
		return tok, n, nil
	case "inf", "+inf", "infinity", "+infinity":
		tok.Type = TFloat
		tok.Float = math.Inf(1)
		return tok, n, nil
	case "-inf", "-infinity":
		tok.Type = TFloat
		tok.Float = math.Inf(-1)
		return tok, n, nil
	case "nan":
		tok.Type = TFloat
		tok.Float = math.NaN()
		return tok, n, nil
	}
	if len(atom) > 0 && (isDigit(atom[0]) ||
		(len(atom) > 1 && (atom[0] == '-' || atom[0] == '+') && isDigit(atom[1]))) {
		ntok, isNum, err := s.scanNumberAtom(atom, pos)
		if err != nil {
			return Token{}, 0, err
		}
		if isNum {
			return ntok, n, nil
		}
	}
	tok.Type = TIdent
	tok.Str = string(atom)
	return tok, n, nil
}
