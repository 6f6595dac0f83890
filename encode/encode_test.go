package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

var roundTripDocs = []string{
	`null`,
	`true`,
	`"hello"`,
	`0`,
	`-0`,
	`2147483647`,
	`-2147483649`,
	`99999999999`,
	`1.5`,
	`0.1`,
	`1e+100`,
	`1.2e+205`,
	`3.4028235e+38`,
	`{}`,
	`[]`,
	`[[],{},[{}]]`,
	`{"b":[1,2.5,"x",null,true,false],"a":{"c":-7}}`,
	`"\"\\\b\f\n\r\t\u0000\u001f/é😀"`,
	`{"":""}`,
}

func TestRoundTrip(t *testing.T) {
	for _, style := range []format.Style{format.Compact, format.Indented} {
		for _, doc := range roundTripDocs {
			y, err := parse.ParseString(doc)
			if err != nil {
				t.Fatalf("%s: %v", doc, err)
			}
			s, err := EncodeString(y, EncodeStyle(style))
			if err != nil {
				t.Fatalf("%s: %v", doc, err)
			}
			back, err := parse.ParseString(s)
			if err != nil {
				t.Fatalf("%s: reparse %q: %v", doc, s, err)
			}
			if eq, _ := ir.Equal(y, back); !eq {
				t.Errorf("%s (%s): %s does not round trip", doc, style, s)
			}
			if _, err := back.Hash(); err != nil {
				t.Fatal(err)
			}
			ha, _ := y.Hash()
			hb, _ := back.Hash()
			if ha != hb {
				t.Errorf("%s: hash changed across round trip", doc)
			}
		}
	}
}

func TestCompactIdempotent(t *testing.T) {
	for _, doc := range roundTripDocs {
		y, err := parse.ParseString(doc)
		if err != nil {
			t.Fatal(err)
		}
		s1 := MustString(y)
		y2, err := parse.ParseString(s1)
		if err != nil {
			t.Fatal(err)
		}
		if s2 := MustString(y2); s1 != s2 {
			t.Errorf("not idempotent:\n%s\n%s", s1, s2)
		}
	}
}

func TestCompactExact(t *testing.T) {
	in := "{ \"a\" : [ 1 , 2.5 , { } ] ,\n \"b\" : [ ] }"
	y, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := MustString(y), `{"a":[1,2.5,{}],"b":[]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestIndented(t *testing.T) {
	y, err := parse.ParseString(`{"a":[1,{"b":null}],"c":{},"d":[]}`)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": [
    1,
    {
      "b": null
    }
  ],
  "c": {},
  "d": []
}`
	got, err := EncodeString(y, EncodeStyle(format.Indented))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, _ = EncodeString(ir.NewArray(ir.FromInt(1)), EncodeStyle(format.Indented), Indent(4), TrailingNewline(true))
	if want := "[\n    1\n]\n"; got != want {
		t.Errorf("indent 4: %q", got)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		y    *ir.Node
		want string
	}{
		{ir.FromInt32(-5), "-5"},
		{ir.FromInt64(1 << 40), "1099511627776"},
		{ir.FromFloat32(0.1), "0.1"},
		{ir.FromFloat64(0.1), "0.1"},
		{ir.FromFloat64(1e21), "1e+21"},
		{ir.FromFloat64(math.Copysign(0, -1)), "-0"},
		{ir.FromFloat32(16777216), "1.6777216e+07"},
	}
	for _, tc := range tests {
		if got := MustString(tc.y); got != tc.want {
			t.Errorf("%s: got %s want %s", tc.y.Kind(), got, tc.want)
		}
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := EncodeString(ir.NewArray(ir.FromFloat64(f)))
		if !errors.Is(err, ErrUnsupportedValue) {
			t.Errorf("%v: got %v", f, err)
		}
	}
}

func TestEscaping(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{{Key: "k\"\n", Val: ir.FromString("\x01\u007f\u2028é")}})
	got := MustString(y)
	want := "{\"k\\\"\\n\":\"\\u0001\u007f\u2028é\"}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	back, err := parse.ParseString(got)
	if err != nil {
		t.Fatal(err)
	}
	if eq, _ := ir.Equal(y, back); !eq {
		t.Error("escaped string does not round trip")
	}
}

func TestEncodeCycle(t *testing.T) {
	o := ir.NewObject()
	o.Set("a", ir.NewArray(ir.FromInt(1), o))
	_, err := EncodeString(o)
	var ce *ir.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v", err)
	}
	if ce.Path != "$.a[1]" {
		t.Errorf("path %s", ce.Path)
	}
}

func TestEncodeShared(t *testing.T) {
	shared := ir.NewArray(ir.FromString("s"))
	y := ir.NewArray(shared, ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: shared}}))
	if got, want := MustString(y), `[["s"],{"x":["s"]}]`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeDeep(t *testing.T) {
	const depth = 100000
	in := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	y, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(y, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != in {
		t.Errorf("deep output differs (len %d)", buf.Len())
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "#" + s },
		},
	}
	y := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}, {Key: "b", Val: ir.Null()}})
	got, err := EncodeString(y, EncodeColors(c))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{<"a">:#1,<"b">:null}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if NewColors().Get(ir.StringType, ValueColor) == nil {
		t.Error("no string color")
	}
}

func TestYAML(t *testing.T) {
	y, err := parse.ParseString(`{"z":1,"a":[true,null,"s",2.5],"m":{}}`)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeYAML(y, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	zi, ai, mi := strings.Index(out, "z:"), strings.Index(out, "a:"), strings.Index(out, "m:")
	if zi < 0 || ai < zi || mi < ai {
		t.Errorf("key order lost:\n%s", out)
	}
	for _, s := range []string{"- true", "- null", "- s", "- 2.5", "z: 1"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in\n%s", s, out)
		}
	}
	if FormatFromOpts(EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Error("format option lost")
	}
	cyc := ir.NewArray()
	cyc.Append(cyc)
	if err := EncodeYAML(cyc, &buf); !errors.Is(err, ir.ErrCycle) {
		t.Errorf("cycle: %v", err)
	}
}
