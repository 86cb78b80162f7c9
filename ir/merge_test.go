package ir

import "testing"

func TestDeepMerge(t *testing.T) {
	dst := FromKeyVals(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "sub", Val: FromKeyVals(
			KeyVal{Key: "x", Val: FromInt(1)},
			KeyVal{Key: "y", Val: FromInt(2)},
		)},
	)
	src := FromKeyVals(
		KeyVal{Key: "sub", Val: FromKeyVals(
			KeyVal{Key: "y", Val: FromInt(20)},
			KeyVal{Key: "z", Val: FromInt(30)},
		)},
		KeyVal{Key: "b", Val: FromInt(2)},
	)
	got := DeepMerge(dst, src)
	want := FromKeyVals(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "sub", Val: FromKeyVals(
			KeyVal{Key: "x", Val: FromInt(1)},
			KeyVal{Key: "y", Val: FromInt(20)},
			KeyVal{Key: "z", Val: FromInt(30)},
		)},
		KeyVal{Key: "b", Val: FromInt(2)},
	)
	if !Equal(got, want) {
		t.Errorf("DeepMerge: got %v, want %v", got.Interface(), want.Interface())
	}
	if got != dst {
		t.Error("DeepMerge did not return dst")
	}
}

func TestDeepMergeScalarWins(t *testing.T) {
	dst := FromKeyVals(KeyVal{Key: "a", Val: FromKeyVals(KeyVal{Key: "x", Val: FromInt(1)})})
	src := FromKeyVals(KeyVal{Key: "a", Val: FromString("flat")})
	got := DeepMerge(dst, src)
	if v := got.Get("a"); v.Type != StringType || v.String != "flat" {
		t.Errorf("scalar overwrite: %v", v)
	}
}

func TestCoalesce(t *testing.T) {
	obj := Coalesce(
		FromKeyVals(KeyVal{Key: "x", Val: FromInt(1)}),
		FromKeyVals(KeyVal{Key: "y", Val: FromInt(2)}),
	)
	if obj.Type != ObjectType || len(obj.Fields) != 2 {
		t.Errorf("object coalesce: %v", obj.Interface())
	}

	arr := Coalesce(FromString("a"), FromString("b"))
	if arr.Type != ArrayType || len(arr.Values) != 2 {
		t.Fatalf("scalar coalesce: %v", arr.Interface())
	}
	arr = Coalesce(arr, FromString("c"))
	if arr.Type != ArrayType || len(arr.Values) != 3 {
		t.Errorf("array absorb: %v", arr.Interface())
	}
	if arr.Values[2].String != "c" {
		t.Errorf("absorb order: %v", arr.Interface())
	}
}
