package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// NumKind is the representation chosen for a number literal.
type NumKind int

const (
	NumInt32 NumKind = iota
	NumInt64
	NumFloat32
	NumFloat64
)

func (k NumKind) String() string {
	switch k {
	case NumInt32:
		return "Int32"
	case NumInt64:
		return "Int64"
	case NumFloat32:
		return "Float32"
	case NumFloat64:
		return "Float64"
	default:
		return "<unknown number kind>"
	}
}

// Number is a classified number literal. Integer kinds are held in Int,
// float kinds in Float (a Float32 is stored widened, exactly).
type Number struct {
	Kind  NumKind
	Int   int64
	Float float64
}

// ClassifyNumber picks the representation of a literal which has already
// been checked against the JSON number grammar. Integer shaped literals
// (no fraction, no exponent) try int32 then int64; then float32 when the
// value is exactly representable in it; then float64.
func ClassifyNumber(lit []byte, integral bool) (Number, error) {
	s := string(lit)
	if integral {
		if i, err := strconv.ParseInt(s, 10, 32); err == nil {
			return Number{Kind: NumInt32, Int: i}, nil
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Number{Kind: NumInt64, Int: i}, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, fmt.Errorf("%w: %w", ErrNumber, err)
	}
	if math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: %s out of range", ErrNumber, s)
	}
	if f32 := float32(f); !math.IsInf(float64(f32), 0) && float64(f32) == f {
		return Number{Kind: NumFloat32, Float: f}, nil
	}
	return Number{Kind: NumFloat64, Float: f}, nil
}

// scanNumber returns the length of the number at the start of d and
// whether it is integer shaped. On failure the returned length is the
// offset of the offending byte and expected describes what was needed.
func scanNumber(d []byte) (n int, integral bool, expected string, err error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, false, "digit", ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i + 1, false, "'.', 'e' or end of number", ErrNumberLeadingZero
	}
	i += digits
	integral = true
	if i < len(d) && d[i] == '.' {
		integral = false
		i++
		f := asciiDigits(d[i:])
		if f == 0 {
			// . must be followed by 1 or more digits rfc 8259
			return i, false, "digit after '.'", ErrNumber
		}
		i += f
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		integral = false
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		e := asciiDigits(d[i:])
		if e == 0 {
			return i, false, "digit in exponent", ErrNumber
		}
		i += e
	}
	return i, integral, "", nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
