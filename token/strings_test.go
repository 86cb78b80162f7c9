package token

import (
	"errors"
	"testing"
)

func scanOneString(t *testing.T, in string, opts ...ScanOption) Token {
	t.Helper()
	s := NewScanner([]byte(in), opts...)
	tok, err := s.Next()
	if err != nil {
		t.Fatalf("scan %q: %v", in, err)
	}
	if tok.Type != TString {
		t.Fatalf("%q: got %s", in, tok.Type)
	}
	return tok
}

func TestJSONStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"\r\b\f"`, "\r\b\f"},
		{`"q\"q"`, `q"q`},
		{`"back\\slash"`, `back\slash`},
		{`"sol\/idus"`, "sol/idus"},
		{`"é"`, "é"},
		{`"😀"`, "😀"},
		{`"\u0041"`, "A"},
		{`"\uD83D\uDE00"`, "😀"},
		{`"\u{1F600}"`, "😀"},
		{`"\u{41}"`, "A"},
		{`"mixed \u{48}i\n"`, "mixed Hi\n"},
		{`"ȡ∞✓"`, "ȡ∞✓"},
	}
	for _, tt := range tests {
		tok := scanOneString(t, tt.in)
		if tok.Str != tt.want {
			t.Errorf("%s: got %q, want %q", tt.in, tok.Str, tt.want)
		}
	}
}

func TestJSONStringErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`"open`, ErrUnterminatedString},
		{`"\q"`, ErrBadEscape},
		{`"\u12"`, ErrBadUnicode},
		{`"\uZZZZ"`, ErrBadUnicode},
		{`"\uD800"`, ErrBadUnicode},
		{`"\uD800A"`, ErrBadUnicode},
		{`"\uDC00"`, ErrBadUnicode},
		{`"\u{}"`, ErrBadUnicode},
		{`"\u{110000}"`, ErrBadUnicode},
		{`"\u{D800}"`, ErrBadUnicode},
		{`"\u{1234567}"`, ErrBadUnicode},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		_, err := s.Next()
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: err = %v, want %v", tt.in, err, tt.err)
		}
	}
}

func TestJSONStringZeroCopy(t *testing.T) {
	tok := scanOneString(t, `"plain"`)
	if tok.Owned {
		t.Error("escape-free string should borrow")
	}
	tok = scanOneString(t, `"esc\n"`)
	if !tok.Owned {
		t.Error("escaped string must own its payload")
	}
	tok = scanOneString(t, `"plain"`, ScanZeroCopy(false))
	if !tok.Owned {
		t.Error("zero-copy off should copy")
	}
}

func TestJSONStringHasVar(t *testing.T) {
	if tok := scanOneString(t, `"$HOME/x"`); !tok.HasVar {
		t.Error("HasVar not set")
	}
	if tok := scanOneString(t, `"no vars"`); tok.HasVar {
		t.Error("HasVar set without $")
	}
}

func TestRawStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`'hello'`, "hello"},
		{`'a\nb'`, `a\nb`},
		{`'don\'t'`, "don't"},
		{`'back\\slash'`, `back\\slash`},
		{"'one\\\ntwo'", "onetwo"},
		{`'$HOME'`, "$HOME"},
	}
	for _, tt := range tests {
		tok := scanOneString(t, tt.in)
		if tok.Str != tt.want {
			t.Errorf("%s: got %q, want %q", tt.in, tok.Str, tt.want)
		}
		if tok.Dialect != DialectRaw {
			t.Errorf("%s: dialect %v", tt.in, tok.Dialect)
		}
	}
}

func TestStringMaxLen(t *testing.T) {
	s := NewScanner([]byte(`"abcdef"`), ScanMaxStringLen(3))
	_, err := s.Next()
	if !errors.Is(err, ErrStringTooLong) {
		t.Errorf("err = %v", err)
	}
}

func TestUnescapeShrinks(t *testing.T) {
	// Decoded output never exceeds the encoded source region.
	tests := []string{
		`"\u{1F600}\u{1F600}"`,
		`"😀"`,
		`"\n\t\r\b\f\\\""`,
		`"plain and A"`,
	}
	for _, in := range tests {
		tok := scanOneString(t, in)
		if len(tok.Str) > len(in)-2 {
			t.Errorf("%s: decoded %d > encoded %d", in, len(tok.Str), len(in)-2)
		}
	}
}
