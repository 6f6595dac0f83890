package format

import (
	"errors"
	"fmt"
)

var (
	ErrBadFormat = errors.New("bad format")
	ErrBadStyle  = errors.New("bad style")
)

// Style selects the layout of encoded JSON text.
type Style int

const (
	// Compact has no whitespace between tokens.
	Compact Style = iota
	// Indented places each element of a non-empty container on its own line.
	Indented
)

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"c":        Compact,
		"compact":  Compact,
		"i":        Indented,
		"indented": Indented,
		"pretty":   Indented,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case Compact:
		return []byte("compact"), nil
	case Indented:
		return []byte("indented"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// Format is the output notation.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}
