package ir

import (
	"strconv"
	"strings"
)

type Type int

const (
	InvalidType Type = iota
	NullType
	BoolType
	IntType
	FloatType
	TimeType
	StringType
	ArrayType
	ObjectType
	CommentType
)

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case TimeType:
		return "time"
	case StringType:
		return "string"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	case CommentType:
		return "comment"
	default:
		return "invalid"
	}
}

// Node is one value in a parsed document.
//
// ObjectType nodes keep keys in Fields and the associated values in
// Values at the same index; both slices grow together and iteration
// order is first-insertion order. ArrayType nodes use Values only.
// TimeType carries Float (seconds). StringType carries String; Owned
// reports whether String was decoded into its own allocation rather
// than borrowed from the input buffer.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []*Node
	Values []*Node

	Comment *Node
	Lines   []string

	String string
	Owned  bool
	Bool   bool
	Int    int64
	Float  float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float: v}
}

// FromTime makes a time value; seconds may be fractional.
func FromTime(seconds float64) *Node {
	return &Node{Type: TimeType, Float: seconds}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v, Owned: true}
}

// FromBorrowedString makes a string node whose payload aliases the
// input buffer. Valid only while that buffer is.
func FromBorrowedString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func NewArray(elts ...*Node) *Node {
	res := &Node{Type: ArrayType}
	for _, e := range elts {
		res.Append(e)
	}
	return res
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs ...KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.SetField(kv.Key, kv.Val)
	}
	return res
}

// Append adds v to an array node, wiring parent links.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

// FieldIndex returns the index of key in y.Fields, or -1.
func (y *Node) FieldIndex(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key, or nil.
func (y *Node) Get(key string) *Node {
	i := y.FieldIndex(key)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// SetField sets key to v. An existing entry is replaced in place so
// key order is undisturbed; a new entry appends.
func (y *Node) SetField(key string, v *Node) {
	v.Parent = y
	v.ParentField = key
	if i := y.FieldIndex(key); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
}

func (y *Node) Clone() *Node {
	return y.CloneTo(&Node{})
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.String = y.String
	dst.Owned = y.Owned
	dst.Bool = y.Bool
	dst.Int = y.Int
	dst.Float = y.Float
	if y.Lines != nil {
		dst.Lines = append([]string(nil), y.Lines...)
	}
	if len(y.Fields) > 0 {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if len(y.Values) > 0 {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			c := v.Clone()
			c.Parent = dst
			c.ParentIndex = i
			dst.Values[i] = c
		}
	}
	if y.Comment != nil {
		dst.Comment = y.Comment.Clone()
	}
	return dst
}

// Visit walks the tree depth first, parents before children. The walk
// of a subtree stops when f returns false.
func (y *Node) Visit(f func(*Node) bool) {
	if !f(y) {
		return
	}
	for _, v := range y.Values {
		v.Visit(f)
	}
}

// KeyPath renders the path from the root to y for diagnostics, in the
// form "$.a.b[2].c". The root renders as "$".
func (y *Node) KeyPath() string {
	var parts []string
	for n := y; n != nil; n = n.Parent {
		p := n.Parent
		switch {
		case p == nil:
		case p.Type == ObjectType:
			parts = append(parts, "."+n.ParentField)
		case p.Type == ArrayType:
			parts = append(parts, "["+strconv.Itoa(n.ParentIndex)+"]")
		}
	}
	var b strings.Builder
	b.WriteString("$")
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String()
}
