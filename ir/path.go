package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSeg is one step of a Path: a field, an index, every index ([*]) or
// every descendant (..).
type PathSeg struct {
	Field    *string
	Index    *int
	IndexAll bool
	Subtree  bool
}

// Path is a parsed JSONPath subset such as $.a[0], $.'a.b'[*] or $..name.
// Fields containing any of '.*$[]\ or spaces are single quoted with
// backslash escapes.
type Path []PathSeg

func (p Path) String() string {
	b := []byte{'$'}
	for i, seg := range p {
		switch {
		case seg.Subtree:
			b = append(b, '.', '.')
		case seg.IndexAll:
			b = append(b, "[*]"...)
		case seg.Field != nil:
			// $..a, not $...a
			if i == 0 || !p[i-1].Subtree {
				b = append(b, '.')
			}
			b = appendFieldName(b, *seg.Field)
		case seg.Index != nil:
			b = appendIndex(b, *seg.Index)
		}
	}
	return string(b)
}

func appendField(b []byte, f string) []byte {
	return appendFieldName(append(b, '.'), f)
}

func appendFieldName(b []byte, f string) []byte {
	if f != "" && strings.IndexAny(f, "'.*$[]\\ ") == -1 {
		return append(b, f...)
	}
	b = append(b, '\'')
	for i := 0; i < len(f); i++ {
		if f[i] == '\'' || f[i] == '\\' {
			b = append(b, '\\')
		}
		b = append(b, f[i])
	}
	return append(b, '\'')
}

func appendIndex(b []byte, i int) []byte {
	b = append(b, '[')
	b = strconv.AppendInt(b, int64(i), 10)
	return append(b, ']')
}

func ParsePath(p string) (Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	var res Path
	frag := p[1:]
	for len(frag) > 0 {
		var seg PathSeg
		switch frag[0] {
		case '.':
			if len(frag) > 1 && frag[1] == '.' {
				seg.Subtree = true
				frag = frag[2:]
				// $..[0] and $..x: the selector after .. needs no dot.
				if len(frag) > 0 && frag[0] != '[' && frag[0] != '.' {
					frag = "." + frag
				}
				break
			}
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", p, err)
			}
			seg.Field = &field
			frag = rest
		case '[':
			i := strings.IndexByte(frag, ']')
			if i == -1 {
				return nil, fmt.Errorf("path %q: expected '[' <index> ']'", p)
			}
			index, all, err := parseIndex(frag[1:i])
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", p, err)
			}
			seg.IndexAll = all
			if !all {
				seg.Index = &index
			}
			frag = frag[i+1:]
		default:
			return nil, fmt.Errorf("path %q: expected '.' or '[' at %q", p, frag)
		}
		res = append(res, seg)
	}
	return res, nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		switch c := frag[i]; c {
		case '\\':
			i++
			if i == len(frag) {
				return "", "", fmt.Errorf("end of string after '\\'")
			}
			res = append(res, frag[i])
		case '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath returns the node at a path with no wildcards. A missing field
// yields nil and no error; indexing outside an array is an *IndexError.
// The result is shared with y, not copied.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := orNull(y)
	for _, seg := range p {
		switch {
		case seg.IndexAll:
			return nil, fmt.Errorf("path %q: [*] in get", path)
		case seg.Subtree:
			return nil, fmt.Errorf("path %q: .. in get", path)
		case seg.Index != nil:
			if res.Type() != ArrayType {
				return nil, mismatch("Array", res)
			}
			v, ok := res.At(*seg.Index)
			if !ok {
				return nil, &IndexError{Index: *seg.Index, Len: res.Len()}
			}
			res = v
		case seg.Field != nil:
			if res.Type() != ObjectType {
				return nil, mismatch("Object", res)
			}
			v, ok := res.Get(*seg.Field)
			if !ok {
				return nil, nil
			}
			res = v
		}
	}
	return res, nil
}

// ListPath appends to dst every node selected by path. Selections which
// do not apply to a node's type select nothing.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return orNull(y).listPath(dst, p)
}

func (y *Node) listPath(dst []*Node, p Path) ([]*Node, error) {
	if len(p) == 0 {
		return append(dst, y), nil
	}
	seg, rest := p[0], p[1:]
	var err error
	switch {
	case seg.Subtree:
		err = Walk(y, func(n *Node, _ Edge, isPost bool) (bool, error) {
			if isPost || n.IsLeaf() {
				return false, nil
			}
			dst, err = n.listPath(dst, rest)
			return err == nil, err
		})
		if err != nil {
			return nil, err
		}
	case seg.Field != nil:
		if v, ok := y.Get(*seg.Field); ok {
			return v.listPath(dst, rest)
		}
	case seg.Index != nil:
		if v, ok := y.At(*seg.Index); ok {
			return v.listPath(dst, rest)
		}
	case seg.IndexAll:
		for _, v := range y.Elements() {
			if dst, err = v.listPath(dst, rest); err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}
