package libdiff

import (
	"strconv"
	"strings"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointer is an RFC 6901 JSON pointer under construction.
type pointer string

func (p pointer) key(k string) pointer {
	return p + "/" + pointer(pointerEscaper.Replace(k))
}

func (p pointer) index(i int) pointer {
	return p + "/" + pointer(strconv.Itoa(i))
}

// Pointer renders reference tokens as a JSON pointer.
func Pointer(tokens ...string) string {
	var p pointer
	for _, tok := range tokens {
		p = p.key(tok)
	}
	return string(p)
}
