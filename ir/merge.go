package ir

// DeepMerge merges src into dst. Both must be objects. Keys present
// only in src append in src order; keys present in both recurse when
// both values are objects and otherwise take src's value. dst is
// modified and returned.
func DeepMerge(dst, src *Node) *Node {
	if dst.Type != ObjectType || src.Type != ObjectType {
		return src
	}
	for i, f := range src.Fields {
		sv := src.Values[i]
		dv := dst.Get(f.String)
		if dv != nil && dv.Type == ObjectType && sv.Type == ObjectType {
			DeepMerge(dv, sv)
			continue
		}
		dst.SetField(f.String, sv)
	}
	return dst
}

// Coalesce combines a prior value with a new value under the same key.
// Two objects deep-merge; an existing array absorbs the new value as
// an element; anything else becomes a two-element array in insertion
// order.
func Coalesce(old, v *Node) *Node {
	switch {
	case old.Type == ObjectType && v.Type == ObjectType:
		return DeepMerge(old, v)
	case old.Type == ArrayType:
		old.Append(v)
		return old
	default:
		return NewArray(old, v)
	}
}
