package token

import (
	"bytes"
	"unsafe"
)

const maxHeredocTagLen = 64

// Tags are ASCII letters, digits, and underscore.
func isHeredocTagByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9', b == '_':
		return true
	}
	return false
}

// scanHeredoc scans `<<TAG\n … \nTAG\n` beginning at the first `<`.
// The body is taken verbatim. The terminator must sit on its own line
// with no leading whitespace; the newline before it is not part of the
// payload and the newline after it is consumed.
func (s *Scanner) scanHeredoc(start int) (Token, int, error) {
	d := s.doc
	i := start + 2
	tagStart := i
	for i < len(d) && isHeredocTagByte(d[i]) {
		i++
	}
	tag := d[tagStart:i]
	if len(tag) == 0 || len(tag) > maxHeredocTagLen {
		return Token{}, 0, NewScanErr(ErrHeredocTag, s.posDoc.Pos(start))
	}
	if i >= len(d) {
		if !s.atEOF() {
			return Token{}, 0, errMore
		}
		return Token{}, 0, NewScanErr(ErrHeredocTerminator, s.posDoc.Pos(start))
	}
	if d[i] == '\r' {
		i++
	}
	if i >= len(d) || d[i] != '\n' {
		return Token{}, 0, NewScanErr(ErrHeredocTag, s.posDoc.Pos(i))
	}
	s.posDoc.nl(i)
	i++

	bodyStart := i
	for {
		// Each iteration starts at the beginning of a line.
		if i-bodyStart > s.opts.maxHeredocLen {
			return Token{}, 0, NewScanErr(ErrHeredocTooLong, s.posDoc.Pos(start))
		}
		if i >= len(d) {
			if !s.atEOF() {
				return Token{}, 0, errMore
			}
			return Token{}, 0, NewScanErr(ErrHeredocTerminator, s.posDoc.Pos(start))
		}
		if bytes.HasPrefix(d[i:], tag) {
			after := i + len(tag)
			if after >= len(d) {
				if !s.atEOF() {
					return Token{}, 0, errMore
				}
				return s.heredocToken(start, bodyStart, i, after), after - start, nil
			}
			if d[after] == '\n' {
				s.posDoc.nl(after)
				return s.heredocToken(start, bodyStart, i, after), after + 1 - start, nil
			}
		}
		nl := bytes.IndexByte(d[i:], '\n')
		if nl == -1 {
			if !s.atEOF() {
				return Token{}, 0, errMore
			}
			return Token{}, 0, NewScanErr(ErrHeredocTerminator, s.posDoc.Pos(start))
		}
		s.posDoc.nl(i + nl)
		i += nl + 1
	}
}

func (s *Scanner) heredocToken(start, bodyStart, termLine, end int) Token {
	body := s.doc[bodyStart:termLine]
	// Drop the newline that precedes the terminator line.
	if len(body) > 0 && body[len(body)-1] == '\n' {
		body = body[:len(body)-1]
	}
	str, owned := string(body), true
	if s.opts.zeroCopy {
		str, owned = unsafe.String(unsafe.SliceData(body), len(body)), false
	}
	return Token{
		Type:    TString,
		Pos:     s.posDoc.Pos(start),
		Bytes:   s.doc[start:end],
		Str:     str,
		Owned:   owned,
		Dialect: DialectHeredoc,
		HasVar:  bytes.IndexByte(body, '$') != -1,
	}
}
