package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCheckFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json": `{"a": [1, 2]}`,
		"b.json": `{"a": [1, 2}`,
		"c.json": `"x"`,
	})
	paths := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		"-",
		filepath.Join(dir, "c.json"),
		filepath.Join(dir, "missing.json"),
	}
	res, err := checkFiles(strings.NewReader("[1,]"), paths, 2)
	if err != nil {
		t.Fatal(err)
	}
	var bad []bool
	for i, r := range res {
		if r.Path != paths[i] {
			t.Errorf("result %d: path %q, want %q", i, r.Path, paths[i])
		}
		bad = append(bad, r.Err != nil)
	}
	if diff := cmp.Diff([]bool{false, true, true, false, true}, bad); diff != "" {
		t.Errorf("invalid files (-want +got):\n%s", diff)
	}
	if !errors.Is(res[1].Err, parse.ErrParse) {
		t.Errorf("expected a parse error, got %v", res[1].Err)
	}

	buf := bytes.NewBuffer(nil)
	if n := reportChecks(buf, res, true); n != 3 {
		t.Errorf("expected 3 invalid files, got %d", n)
	}
	if strings.Contains(buf.String(), ": ok") {
		t.Errorf("quiet report contains valid files:\n%s", buf)
	}
	buf.Reset()
	reportChecks(buf, res, false)
	if got := strings.Count(buf.String(), ": ok\n"); got != 2 {
		t.Errorf("expected 2 ok lines, got %d:\n%s", got, buf)
	}
}

func TestCheckFilesStdinOnce(t *testing.T) {
	res, err := checkFiles(strings.NewReader("1"), []string{"-", "x.json", "-"}, 2)
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want a usage error", err)
	}
	if res != nil {
		t.Errorf("files checked despite duplicate stdin: %v", res)
	}
}

func TestCheckFilesStrict(t *testing.T) {
	dir := writeFiles(t, map[string]string{"dup.json": `{"a": 1, "a": 2}`})
	path := filepath.Join(dir, "dup.json")
	res, err := checkFiles(nil, []string{path}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Err != nil {
		t.Errorf("duplicate keys rejected without -strict: %v", res[0].Err)
	}
	cfg := &MainConfig{Strict: true}
	res, err = checkFiles(nil, []string{path}, 1, cfg.parseOpts()...)
	if err != nil {
		t.Fatal(err)
	}
	if res[0].Err == nil {
		t.Errorf("duplicate keys accepted with -strict")
	}
}

func TestSelectPath(t *testing.T) {
	y, err := parse.ParseString(`{"a": [{"n": 1}, {"n": 2}, {"m": 3}], "b": {"n": 4}}`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		list bool
		want string
	}{
		{path: "$.a[1].n", want: `2`},
		{path: "$.a[0]", want: `{"n":1}`},
		{path: "$.c", want: ``},
		{path: "$.a[*].n", list: true, want: `[1,2]`},
		{path: "$..n", list: true, want: `[1,2,4]`},
		{path: "$.c", list: true, want: `[]`},
	}
	for _, tc := range tests {
		res, err := selectPath(y, tc.path, tc.list)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		got := ""
		if res != nil {
			buf := bytes.NewBuffer(nil)
			if err := writeObj(&MainConfig{}, buf, res, format.Compact); err != nil {
				t.Fatal(err)
			}
			got = strings.TrimSuffix(buf.String(), "\n")
		}
		if got != tc.want {
			t.Errorf("%s list=%t: got %s want %s", tc.path, tc.list, got, tc.want)
		}
	}
	if _, err := selectPath(y, "$.a[7]", false); err == nil {
		t.Errorf("expected an index error")
	}
}

func TestDiffInputs(t *testing.T) {
	a, _ := parse.ParseString(`{"a": 1, "b": [1, 2]}`)
	b, _ := parse.ParseString(`{"a": 2, "b": [1, 2]}`)
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	buf := bytes.NewBuffer(nil)
	differs, err := diffInputs(cfg, buf, a, a)
	if err != nil {
		t.Fatal(err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("no difference expected, got %q", buf)
	}

	differs, err = diffInputs(cfg, buf, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatalf("expected a difference")
	}
	ops, err := parse.ParseString(buf.String())
	if err != nil {
		t.Fatalf("diff output is not JSON: %v\n%s", err, buf)
	}
	want, _ := parse.ParseString(`[{"op": "replace", "path": "/a", "value": 2}]`)
	if eq, _ := ir.Equal(ops, want); !eq {
		t.Errorf("got %s", buf)
	}

	buf.Reset()
	cfg.String = true
	if _, err := diffInputs(cfg, buf, a, b); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, `-  "a": 1,`) || !strings.Contains(got, `+  "a": 2,`) {
		t.Errorf("unexpected text diff:\n%s", got)
	}
}

func TestEncOpts(t *testing.T) {
	y, _ := parse.ParseString(`{"a":[1]}`)
	tests := []struct {
		cfg   MainConfig
		style format.Style
		want  string
	}{
		{style: format.Compact, want: "{\"a\":[1]}\n"},
		{style: format.Indented, want: "{\n  \"a\": [\n    1\n  ]\n}\n"},
		{cfg: MainConfig{Indent: 4}, style: format.Indented, want: "{\n    \"a\": [\n        1\n    ]\n}\n"},
		{cfg: MainConfig{Style: stylePtr(format.Compact)}, style: format.Indented, want: "{\"a\":[1]}\n"},
	}
	for i, tc := range tests {
		buf := bytes.NewBuffer(nil)
		if err := writeObj(&tc.cfg, buf, y, tc.style); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%d: got %q want %q", i, got, tc.want)
		}
	}
	buf := bytes.NewBuffer(nil)
	if err := writeObj(&MainConfig{Y: true}, buf, y, format.Indented); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "a:") || !strings.Contains(got, "- 1") {
		t.Errorf("yaml: got %q", got)
	}
}

func stylePtr(s format.Style) *format.Style {
	return &s
}

func TestReadObjStdin(t *testing.T) {
	y, err := readObj(strings.NewReader(` [true] `), "-")
	if err != nil {
		t.Fatal(err)
	}
	if y.Type() != ir.ArrayType || y.Len() != 1 {
		t.Errorf("got %s", y.Kind())
	}
	if got := inputs(nil); len(got) != 1 || got[0] != "-" {
		t.Errorf("inputs(nil) = %v", got)
	}
}
