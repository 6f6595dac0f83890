package ir

import (
	"math"
	"strconv"
)

// Number is an immutable numeric value which remembers its
// representation. The zero Number is Int32 0.
type Number struct {
	kind NumberKind
	i    int64
	f    float64
}

func Int32Number(v int32) Number     { return Number{kind: Int32, i: int64(v)} }
func Int64Number(v int64) Number     { return Number{kind: Int64, i: v} }
func Float32Number(v float32) Number { return Number{kind: Float32, f: float64(v)} }
func Float64Number(v float64) Number { return Number{kind: Float64, f: v} }

// IntNumber uses Int32 when v fits and Int64 otherwise.
func IntNumber(v int64) Number {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return Number{kind: Int32, i: v}
	}
	return Number{kind: Int64, i: v}
}

func (n Number) Kind() NumberKind {
	return n.kind
}

// AsInt32 returns the value only when it is stored as an Int32.
func (n Number) AsInt32() (int32, bool) {
	if n.kind != Int32 {
		return 0, false
	}
	return int32(n.i), true
}

// AsInt64 returns the value only when it is stored as an Int64.
func (n Number) AsInt64() (int64, bool) {
	if n.kind != Int64 {
		return 0, false
	}
	return n.i, true
}

// AsFloat32 returns the value only when it is stored as a Float32.
func (n Number) AsFloat32() (float32, bool) {
	if n.kind != Float32 {
		return 0, false
	}
	return float32(n.f), true
}

// AsFloat64 returns the value only when it is stored as a Float64.
func (n Number) AsFloat64() (float64, bool) {
	if n.kind != Float64 {
		return 0, false
	}
	return n.f, true
}

// Integer returns the value of either integer kind.
func (n Number) Integer() (int64, bool) {
	if !n.kind.IsInteger() {
		return 0, false
	}
	return n.i, true
}

// Float64 converts any kind to float64, losing precision for integers
// beyond 2^53.
func (n Number) Float64() float64 {
	if n.kind.IsInteger() {
		return float64(n.i)
	}
	return n.f
}

// IsFinite is false for NaN and infinities, which have no JSON form.
func (n Number) IsFinite() bool {
	if n.kind.IsInteger() {
		return true
	}
	return !math.IsNaN(n.f) && !math.IsInf(n.f, 0)
}

// String returns the shortest text which reads back as the same value in
// the same representation width.
func (n Number) String() string {
	switch n.kind {
	case Int32, Int64:
		return strconv.FormatInt(n.i, 10)
	case Float32:
		return strconv.FormatFloat(n.f, 'g', -1, 32)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

// AppendText appends the text of String to d.
func (n Number) AppendText(d []byte) []byte {
	switch n.kind {
	case Int32, Int64:
		return strconv.AppendInt(d, n.i, 10)
	case Float32:
		return strconv.AppendFloat(d, n.f, 'g', -1, 32)
	default:
		return strconv.AppendFloat(d, n.f, 'g', -1, 64)
	}
}

// numbersEqual compares values across representations. Two integers, or
// an integer and a float, compare exactly. Two floats compare at float32
// precision when either is a Float32, else at float64.
func numbersEqual(a, b Number) bool {
	ai, bi := a.kind.IsInteger(), b.kind.IsInteger()
	switch {
	case ai && bi:
		return a.i == b.i
	case ai:
		return intEqualsFloat(a.i, b.f)
	case bi:
		return intEqualsFloat(b.i, a.f)
	case a.kind == Float32 || b.kind == Float32:
		return float32(a.f) == float32(b.f)
	default:
		return a.f == b.f
	}
}

// intEqualsFloat is true when f is integral, within int64 range and
// equal to i.
func intEqualsFloat(i int64, f float64) bool {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return false
	}
	return int64(f) == i
}

// numberHashBits is consistent with numbersEqual: equal numbers agree at
// float32 precision.
func numberHashBits(n Number) uint32 {
	f := float32(n.Float64())
	switch {
	case f == 0:
		return 0
	case f != f:
		return 0x7fc00000
	}
	return math.Float32bits(f)
}
