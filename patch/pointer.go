package patch

import (
	"fmt"
	"strconv"
	"strings"
)

var pointerDecoder = strings.NewReplacer("~1", "/", "~0", "~")

// parsePointer splits an RFC 6901 pointer into unescaped reference
// tokens. The empty pointer is the document root.
func parsePointer(p string) ([]string, error) {
	if p == "" {
		return nil, nil
	}
	if p[0] != '/' {
		return nil, fmt.Errorf("%w: pointer %q does not start with '/'", ErrBadOp, p)
	}
	toks := strings.Split(p[1:], "/")
	for i, tok := range toks {
		toks[i] = pointerDecoder.Replace(tok)
	}
	return toks, nil
}

// arrayIndex parses tok as an array index below n. Leading zeros and
// signs are rejected.
func arrayIndex(tok string, n int) (int, error) {
	if tok == "" || (tok[0] == '0' && len(tok) > 1) || strings.TrimLeft(tok, "0123456789") != "" {
		return 0, fmt.Errorf("%w: bad array index %q", ErrPatch, tok)
	}
	i, err := strconv.Atoi(tok)
	if err != nil || i >= n {
		return 0, fmt.Errorf("%w: array index %s out of range [0,%d)", ErrPatch, tok, n)
	}
	return i, nil
}
