package ir

import (
	"testing"
)

func TestObjectOrder(t *testing.T) {
	obj := NewObject()
	obj.SetField("b", FromInt(1))
	obj.SetField("a", FromInt(2))
	obj.SetField("c", FromInt(3))
	obj.SetField("a", FromInt(4))

	keys := make([]string, len(obj.Fields))
	for i, f := range obj.Fields {
		keys[i] = f.String
	}
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: got %q, want %q", i, keys[i], want[i])
		}
	}
	if got := obj.Get("a"); got == nil || got.Int != 4 {
		t.Errorf("replaced value not in place: %v", got)
	}
}

func TestKeyPath(t *testing.T) {
	root := FromKeyVals(KeyVal{
		Key: "servers",
		Val: NewArray(
			FromKeyVals(KeyVal{Key: "host", Val: FromString("a")}),
			FromKeyVals(KeyVal{Key: "host", Val: FromString("b")}),
		),
	})
	n := root.Get("servers").Values[1].Get("host")
	if got := n.KeyPath(); got != "$.servers[1].host" {
		t.Errorf("got %q", got)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals(
		KeyVal{Key: "x", Val: NewArray(FromInt(1), FromFloat(2.5))},
		KeyVal{Key: "y", Val: FromTime(30)},
	)
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs")
	}
	c.Get("x").Append(FromInt(3))
	if Equal(orig, c) {
		t.Fatal("clone shares array storage")
	}
}

func TestCoalesceInsertionOrder(t *testing.T) {
	a := FromString("10.0.0.1")
	b := FromString("10.0.0.2")
	c := FromString("10.0.0.3")

	v := Coalesce(a, b)
	if v.Type != ArrayType || len(v.Values) != 2 {
		t.Fatalf("scalar coalesce: %v", v)
	}
	v = Coalesce(v, c)
	if len(v.Values) != 3 {
		t.Fatalf("array absorb: %d elements", len(v.Values))
	}
	if v.Values[0].String != "10.0.0.1" || v.Values[2].String != "10.0.0.3" {
		t.Error("insertion order lost")
	}
}

func TestDeepMergeKeyOrder(t *testing.T) {
	dst := FromKeyVals(KeyVal{
		Key: "http",
		Val: FromKeyVals(KeyVal{Key: "port", Val: FromInt(80)}),
	})
	src := FromKeyVals(KeyVal{
		Key: "http",
		Val: FromKeyVals(
			KeyVal{Key: "port", Val: FromInt(8080)},
			KeyVal{Key: "host", Val: FromString("localhost")},
		),
	})
	DeepMerge(dst, src)
	httpv := dst.Get("http")
	if got := httpv.Get("port"); got.Int != 8080 {
		t.Errorf("port: got %d", got.Int)
	}
	if got := httpv.Get("host"); got == nil || got.String != "localhost" {
		t.Errorf("host: got %v", got)
	}
	if len(httpv.Fields) != 2 || httpv.Fields[0].String != "port" {
		t.Error("merge disturbed key order")
	}
}
