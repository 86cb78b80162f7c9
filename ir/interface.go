package ir

// Interface converts the tree to plain Go values for handing to
// generic encoders. Objects become map[string]any, so key order is not
// preserved; callers that need ordering should walk the Node directly.
// Time renders as float64 seconds.
func (y *Node) Interface() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case IntType:
		return y.Int
	case FloatType, TimeType:
		return y.Float
	case StringType, CommentType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.Interface()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = y.Values[i].Interface()
		}
		return res
	default:
		return nil
	}
}
