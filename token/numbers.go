package token

import (
	"math"
	"strconv"
	"strings"
)

var timeSuffixes = map[string]float64{
	"ms":  1e-3,
	"s":   1,
	"min": 60,
	"h":   3600,
	"d":   86400,
	"w":   604800,
	"y":   31536000,
}

// Two-letter byte suffixes are always 1024-based.
var binarySizeSuffixes = map[string]int64{
	"b":  1,
	"kb": 1 << 10,
	"mb": 1 << 20,
	"gb": 1 << 30,
	"tb": 1 << 40,
}

// Single-letter and rate suffixes default to 1000-based; the
// ScanBinarySizes option switches them to 1024.
var decimalSizeSuffixes = map[string]int64{
	"k":    1e3,
	"m":    1e6,
	"g":    1e9,
	"kbps": 1e3,
	"mbps": 1e6,
	"gbps": 1e9,
}

var binaryAltSuffixes = map[string]int64{
	"k":    1 << 10,
	"m":    1 << 20,
	"g":    1 << 30,
	"kbps": 1 << 10,
	"mbps": 1 << 20,
	"gbps": 1 << 30,
}

// splitNumber scans the number grammar over atom and returns the
// length of the numeric part. ok is false when atom does not start
// with a valid number shape at all, letting the caller fall back to a
// bare word.
func splitNumber(atom []byte) (n int, isFloat bool, ok bool) {
	i := 0
	if i < len(atom) && (atom[i] == '-' || atom[i] == '+') {
		i++
	}
	if i >= len(atom) || !isDigit(atom[i]) {
		return 0, false, false
	}
	if atom[i] == '0' && i+1 < len(atom) {
		switch atom[i+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			j := i + 2
			for j < len(atom) && isBaseDigit(atom[j], atom[i+1]) {
				j++
			}
			return j, false, true
		}
	}
	for i < len(atom) && isDigit(atom[i]) {
		i++
	}
	if i < len(atom) && atom[i] == '.' {
		j := i + 1
		if j >= len(atom) || !isDigit(atom[j]) {
			return i, false, true
		}
		for j < len(atom) && isDigit(atom[j]) {
			j++
		}
		i = j
		isFloat = true
	}
	if i < len(atom) && (atom[i] == 'e' || atom[i] == 'E') {
		j := i + 1
		if j < len(atom) && (atom[j] == '-' || atom[j] == '+') {
			j++
		}
		if j < len(atom) && isDigit(atom[j]) {
			for j < len(atom) && isDigit(atom[j]) {
				j++
			}
			i = j
			isFloat = true
		}
	}
	return i, isFloat, true
}

func isBaseDigit(b, base byte) bool {
	switch base {
	case 'x', 'X':
		return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	case 'o', 'O':
		return b >= '0' && b <= '7'
	default:
		return b == '0' || b == '1'
	}
}

func isAlphaSuffix(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, b := range s {
		lower := b | 0x20
		if lower < 'a' || lower > 'z' {
			return false
		}
	}
	return true
}

// scanNumberAtom classifies a whole atom as a numeric token. ok is
// false when the atom is not number-shaped and should be treated as a
// bare word (IP addresses, version strings). A base-prefixed atom
// with a malformed tail is an error, not a bare word.
func (s *Scanner) scanNumberAtom(atom []byte, pos *Pos) (Token, bool, error) {
	tok := Token{Pos: pos, Bytes: atom}
	n, isFloat, ok := splitNumber(atom)
	if !ok {
		return tok, false, nil
	}
	rest := atom[n:]
	mant := atom[:n]

	// Non-decimal bases take no fraction, exponent, or suffix, and
	// never fall back to a bare word.
	if isBasePrefixed(mant) {
		if len(mant) == 2+signLen(mant) || len(rest) > 0 {
			return tok, true, NewScanErr(ErrNumber, pos)
		}
		v, err := parsePrefixedInt(mant)
		if err != nil {
			return tok, true, NewScanErr(ErrNumber, pos)
		}
		tok.Type = TInteger
		tok.Int = v
		return tok, true, nil
	}

	if len(rest) > 0 && !isAlphaSuffix(rest) {
		// Something like 10.0.0.1 or 1.2.3-rc1.
		return tok, false, nil
	}

	suffix := strings.ToLower(string(rest))
	if suffix == "" {
		if isFloat {
			f, err := strconv.ParseFloat(string(mant), 64)
			if err != nil {
				return tok, true, NewScanErr(ErrNumber, pos)
			}
			tok.Type = TFloat
			tok.Float = f
			return tok, true, nil
		}
		v, err := strconv.ParseInt(string(mant), 10, 64)
		if err != nil {
			// Integer overflow promotes to float.
			f, ferr := strconv.ParseFloat(string(mant), 64)
			if ferr != nil {
				return tok, true, NewScanErr(ErrNumber, pos)
			}
			tok.Type = TFloat
			tok.Float = f
			return tok, true, nil
		}
		tok.Type = TInteger
		tok.Int = v
		return tok, true, nil
	}

	f, err := strconv.ParseFloat(string(mant), 64)
	if err != nil {
		return tok, true, NewScanErr(ErrNumber, pos)
	}

	if s.opts.timeSuffixes {
		if mult, found := timeSuffixes[suffix]; found {
			tok.Type = TTime
			tok.Float = f * mult
			return tok, true, nil
		}
	}
	if s.opts.sizeSuffixes {
		if mult, found := sizeSuffix(suffix, s.opts.binarySizes); found {
			if !isFloat {
				i, err := strconv.ParseInt(string(mant), 10, 64)
				if err == nil && !mulOverflows(i, mult) {
					tok.Type = TInteger
					tok.Int = i * mult
					return tok, true, nil
				}
			}
			tok.Type = TFloat
			tok.Float = f * float64(mult)
			return tok, true, nil
		}
	}

	// Unknown suffix. The parser's suffix hooks get a chance before
	// this becomes an invalid-number error.
	if isFloat {
		tok.Type = TFloat
		tok.Float = f
	} else {
		i, err := strconv.ParseInt(string(mant), 10, 64)
		if err != nil {
			tok.Type = TFloat
			tok.Float = f
		} else {
			tok.Type = TInteger
			tok.Int = i
		}
	}
	tok.Suffix = suffix
	return tok, true, nil
}

func sizeSuffix(suffix string, binary bool) (int64, bool) {
	if mult, found := binarySizeSuffixes[suffix]; found {
		return mult, true
	}
	if binary {
		if mult, found := binaryAltSuffixes[suffix]; found {
			return mult, true
		}
		return 0, false
	}
	mult, found := decimalSizeSuffixes[suffix]
	return mult, found
}

func signLen(d []byte) int {
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		return 1
	}
	return 0
}

func isBasePrefixed(d []byte) bool {
	d = d[signLen(d):]
	if len(d) < 2 || d[0] != '0' {
		return false
	}
	switch d[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func parsePrefixedInt(d []byte) (int64, error) {
	neg := false
	if n := signLen(d); n > 0 {
		neg = d[0] == '-'
		d = d[n:]
	}
	base := 16
	switch d[1] {
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	}
	v, err := strconv.ParseInt(string(d[2:]), base, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return true
	}
	c := a * b
	return c/b != a
}
