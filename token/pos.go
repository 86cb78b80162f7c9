package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes newline offsets of a source document so line/column
// lookups stay cheap and lazy.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	p.n = append(p.n, i)
}

// LineCol returns the 1-based line and column of a byte offset.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Pos is a byte offset into a document, resolvable to line/column on
// demand. Context, when set, replaces the source snippet that String
// shows; the scanner itself does not set it.
type Pos struct {
	I       int
	D       *PosDoc
	Context []byte
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 1, p.I + 1
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	switch {
	case len(p.Context) > 0:
		sample = string(p.Context)
	case p.D != nil && len(p.D.d) > 0:
		sample = string(p.D.d[max(0, p.I-8):min(p.I+8, len(p.D.d))])
	default:
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}

// Span is a half-open source range.
type Span struct {
	Start *Pos
	End   *Pos
}

func (s Span) String() string {
	if s.Start == nil {
		return "?"
	}
	return s.Start.String()
}
