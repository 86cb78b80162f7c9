package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ucl-format/go-ucl/ir"
	"github.com/ucl-format/go-ucl/vars"
)

func mustParse(t *testing.T, src string, opts ...ParseOption) *ir.Node {
	t.Helper()
	n, err := Parse([]byte(src), opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n
}

func checkTree(t *testing.T, src string, want *ir.Node, opts ...ParseOption) {
	t.Helper()
	got := mustParse(t, src, opts...)
	if !ir.Equal(got, want) {
		t.Errorf("%q:\n%s", src, cmp.Diff(want.Interface(), got.Interface()))
	}
}

func obj(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs...)
}

func TestParseExplicit(t *testing.T) {
	checkTree(t, "a = 1\nb: \"x\"\nc = [1, 2, 3]\nd { e = true }",
		obj(
			ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
			ir.KeyVal{Key: "b", Val: ir.FromString("x")},
			ir.KeyVal{Key: "c", Val: ir.NewArray(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3))},
			ir.KeyVal{Key: "d", Val: obj(ir.KeyVal{Key: "e", Val: ir.FromBool(true)})},
		))
}

func TestParseImplicit(t *testing.T) {
	checkTree(t, "port 8080", obj(ir.KeyVal{Key: "port", Val: ir.FromInt(8080)}))
	checkTree(t, "user Tom Sawyer", obj(ir.KeyVal{Key: "user", Val: ir.FromString("Tom Sawyer")}))
	checkTree(t, "verbose;\ndebug\n", obj(
		ir.KeyVal{Key: "verbose", Val: ir.FromBool(true)},
		ir.KeyVal{Key: "debug", Val: ir.FromBool(true)},
	))
}

func TestParseBareWordBooleans(t *testing.T) {
	checkTree(t, "a yes\nb no\nc = on\nd = off", obj(
		ir.KeyVal{Key: "a", Val: ir.FromBool(true)},
		ir.KeyVal{Key: "b", Val: ir.FromBool(false)},
		ir.KeyVal{Key: "c", Val: ir.FromBool(true)},
		ir.KeyVal{Key: "d", Val: ir.FromBool(false)},
	))
}

func TestParseDuplicateKeysCoalesce(t *testing.T) {
	checkTree(t, "server 10.0.0.1\nserver 10.0.0.2\nserver 10.0.0.3",
		obj(ir.KeyVal{Key: "server", Val: ir.NewArray(
			ir.FromString("10.0.0.1"),
			ir.FromString("10.0.0.2"),
			ir.FromString("10.0.0.3"),
		)}))
}

func TestParseDuplicateObjectsMerge(t *testing.T) {
	checkTree(t, "s { a = 1 }\ns { b = 2 }",
		obj(ir.KeyVal{Key: "s", Val: obj(
			ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
			ir.KeyVal{Key: "b", Val: ir.FromInt(2)},
		)}))
}

func TestParseNestedKeyPath(t *testing.T) {
	checkTree(t, "section alpha beta { x = 1 }\nsection alpha gamma { y = 2 }",
		obj(ir.KeyVal{Key: "section", Val: obj(
			ir.KeyVal{Key: "alpha", Val: obj(
				ir.KeyVal{Key: "beta", Val: obj(ir.KeyVal{Key: "x", Val: ir.FromInt(1)})},
				ir.KeyVal{Key: "gamma", Val: obj(ir.KeyVal{Key: "y", Val: ir.FromInt(2)})},
			)},
		)}))
}

func TestParseJSONCompat(t *testing.T) {
	checkTree(t, `{"a": [1, 2.5, null, true], "b": {"c": "d"}}`,
		obj(
			ir.KeyVal{Key: "a", Val: ir.NewArray(
				ir.FromInt(1), ir.FromFloat(2.5), ir.Null(), ir.FromBool(true))},
			ir.KeyVal{Key: "b", Val: obj(ir.KeyVal{Key: "c", Val: ir.FromString("d")})},
		))
}

func TestParseScalarDocument(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"42", ir.FromInt(42)},
		{`"hello"`, ir.FromString("hello")},
		{"true\n", ir.FromBool(true)},
		{"null", ir.Null()},
		{"[1, 2]", ir.NewArray(ir.FromInt(1), ir.FromInt(2))},
		{"", ir.NewObject()},
	}
	for _, tt := range tests {
		checkTree(t, tt.in, tt.want)
	}
}

func TestParseMagnitudes(t *testing.T) {
	checkTree(t, "timeout 10s\ncache = 64mb\nrate 5mbps", obj(
		ir.KeyVal{Key: "timeout", Val: ir.FromTime(10)},
		ir.KeyVal{Key: "cache", Val: ir.FromInt(64 << 20)},
		ir.KeyVal{Key: "rate", Val: ir.FromInt(5e6)},
	))
}

func TestParseVarExpansion(t *testing.T) {
	h := vars.Map{"HOME": "/home/u"}
	checkTree(t, `path = "$HOME/bin"`,
		obj(ir.KeyVal{Key: "path", Val: ir.FromString("/home/u/bin")}),
		ParseVars(h))
	// Raw strings keep their bytes.
	checkTree(t, `path = '$HOME/bin'`,
		obj(ir.KeyVal{Key: "path", Val: ir.FromString("$HOME/bin")}),
		ParseVars(h))
	// Unresolved references pass through verbatim.
	checkTree(t, `path = "$NOPE/bin"`,
		obj(ir.KeyVal{Key: "path", Val: ir.FromString("$NOPE/bin")}),
		ParseVars(h))
}

func TestParseVarCycle(t *testing.T) {
	h := vars.Map{"A": "${B}", "B": "${A}"}
	var warns []error
	got := mustParse(t, `x = "${A:-fallback}"`,
		ParseVars(h), ParseWarn(func(err error) { warns = append(warns, err) }))
	want := obj(ir.KeyVal{Key: "x", Val: ir.FromString("fallback")})
	if !ir.Equal(got, want) {
		t.Errorf("got %v", got.Interface())
	}
	if len(warns) == 0 || !errors.Is(warns[0], vars.ErrCircular) {
		t.Errorf("warnings: %v", warns)
	}
}

func TestParseHeredoc(t *testing.T) {
	src := "script = <<EOT\nline one\nline two\nEOT\n"
	checkTree(t, src, obj(ir.KeyVal{Key: "script", Val: ir.FromString("line one\nline two")}))
}

func TestParseNestedCommentAndUnicode(t *testing.T) {
	src := "/* outer /* inner */ still outer */ emoji = \"\\u{1F600}\"\n"
	checkTree(t, src, obj(ir.KeyVal{Key: "emoji", Val: ir.FromString("\U0001F600")}))
}

func TestParseConcat(t *testing.T) {
	checkTree(t, `greeting = "foo" + "bar" + 'baz'`,
		obj(ir.KeyVal{Key: "greeting", Val: ir.FromString("foobarbaz")}))
}

func TestParseMixedStyles(t *testing.T) {
	src := `
# upstream pool
upstream backend {
	server 10.0.0.1;
	server 10.0.0.2;
}
log_file /var/log/app.log
limits = { mem: 512mb, "max conns": 1024 }
`
	checkTree(t, src, obj(
		ir.KeyVal{Key: "upstream", Val: obj(
			ir.KeyVal{Key: "backend", Val: obj(
				ir.KeyVal{Key: "server", Val: ir.NewArray(
					ir.FromString("10.0.0.1"), ir.FromString("10.0.0.2"))},
			)},
		)},
		ir.KeyVal{Key: "log_file", Val: ir.FromString("/var/log/app.log")},
		ir.KeyVal{Key: "limits", Val: obj(
			ir.KeyVal{Key: "mem", Val: ir.FromInt(512 << 20)},
			ir.KeyVal{Key: "max conns", Val: ir.FromInt(1024)},
		)},
	))
}

func TestParseSuffixHook(t *testing.T) {
	px := func(mant float64, suffix string) (*ir.Node, bool) {
		if suffix != "px" {
			return nil, false
		}
		return ir.FromFloat(mant), true
	}
	checkTree(t, "width 7px", obj(ir.KeyVal{Key: "width", Val: ir.FromFloat(7)}),
		WithNumberSuffix(px))

	if _, err := Parse([]byte("width 7px")); !errors.Is(err, ErrNumberSuffix) {
		t.Errorf("want ErrNumberSuffix, got %v", err)
	}
}

func TestParseStringHook(t *testing.T) {
	up := func(s string) (string, error) { return strings.ToUpper(s), nil }
	checkTree(t, `a = "x"`, obj(ir.KeyVal{Key: "a", Val: ir.FromString("X")}),
		WithStringHook(up))

	fail := func(s string) (string, error) { return "", errors.New("nope") }
	if _, err := Parse([]byte(`a = "x"`), WithStringHook(fail)); !errors.Is(err, ErrString) {
		t.Errorf("want ErrString, got %v", err)
	}
}

func TestParseValidation(t *testing.T) {
	noPorts := func(keyPath string, v *ir.Node) error {
		if keyPath == "$.port" {
			return errors.New("ports are fixed")
		}
		return nil
	}
	if _, err := Parse([]byte("port 8080"), WithValidation(noPorts)); !errors.Is(err, ErrValidation) {
		t.Errorf("want ErrValidation, got %v", err)
	}
	if _, err := Parse([]byte("host x"), WithValidation(noPorts)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseDepthLimit(t *testing.T) {
	if _, err := Parse([]byte("a = [[[[[1]]]]]"), ParseMaxDepth(4)); !errors.Is(err, ErrDepth) {
		t.Errorf("want ErrDepth, got %v", err)
	}
	if _, err := Parse([]byte("a = [[[1]]]"), ParseMaxDepth(4)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseBadKeys(t *testing.T) {
	// Reserved words may key a value only with an explicit marker.
	checkTree(t, "true = 1", obj(ir.KeyVal{Key: "true", Val: ir.FromInt(1)}))
	if _, err := Parse([]byte("true x")); !errors.Is(err, ErrBadKey) {
		t.Errorf("want ErrBadKey, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"a = { b = 1",
		"a = [1, 2",
		"[1] extra",
		"a = ",
		"a = 1 + 2",
	}
	for _, src := range tests {
		if _, err := Parse([]byte(src)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: want ErrParse, got %v", src, err)
		}
	}
}

func TestParseReader(t *testing.T) {
	src := "a = 1\nb { c = <<EOT\npayload\nEOT\n}\n"
	got, err := ParseReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := obj(
		ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "b", Val: obj(ir.KeyVal{Key: "c", Val: ir.FromString("payload")})},
	)
	if !ir.Equal(got, want) {
		t.Errorf("got %v", got.Interface())
	}
}

func TestParseComments(t *testing.T) {
	src := "# listen address\nhost = \"0.0.0.0\"\n"
	got := mustParse(t, src, ParseComments(true))
	v := got.Get("host")
	if v == nil || v.Comment == nil {
		t.Fatalf("comment not attached: %v", got.Interface())
	}
	if len(v.Comment.Lines) != 1 || v.Comment.Lines[0] != "listen address" {
		t.Errorf("comment lines: %v", v.Comment.Lines)
	}
}

func TestParseValueFunc(t *testing.T) {
	v, err := ParseValue([]byte("[1, yes, 'raw']"))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.NewArray(ir.FromInt(1), ir.FromBool(true), ir.FromString("raw"))
	if !ir.Equal(v, want) {
		t.Errorf("got %v", v.Interface())
	}
	if _, err := ParseValue([]byte("1 2")); err == nil {
		t.Error("trailing data not rejected")
	}
}

func TestParseObjectFunc(t *testing.T) {
	if _, err := ParseObject([]byte("[1]")); err == nil {
		t.Error("array accepted as object")
	}
	if _, err := ParseObject([]byte("a = 1")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
