package ir

import (
	"errors"
	"math"
	"testing"
)

func obj(kvs ...any) *Node {
	y := NewObject()
	for i := 0; i < len(kvs); i += 2 {
		y.Set(kvs[i].(string), kvs[i+1].(*Node))
	}
	return y
}

type eqTest struct {
	name  string
	a, b  *Node
	equal bool
}

func eqTests() []eqTest {
	shared := NewArray(FromInt(1))
	return []eqTest{
		{"null", Null(), nil, true},
		{"key order", obj("a", FromInt(1), "b", FromInt(2)), obj("b", FromInt(2), "a", FromInt(1)), true},
		{"array order", NewArray(FromInt(1), FromInt(2)), NewArray(FromInt(2), FromInt(1)), false},
		{"missing key", obj("a", Null()), obj("b", Null()), false},
		{"extra key", obj("a", Null()), obj("a", Null(), "b", Null()), false},
		{"int kinds", FromInt32(7), FromInt64(7), true},
		{"int float", FromInt32(3), FromFloat64(3), true},
		{"float32 vs float64 of 0.1", FromFloat32(0.1), FromFloat64(0.1), true},
		{"float64 precision", FromFloat64(0.1), FromFloat64(0.1000000001), false},
		{"negative zero", FromFloat64(math.Copysign(0, -1)), FromInt(0), true},
		{"int vs float32 above 2^24", FromInt32(16777217), FromFloat32(16777216), false},
		{"int64 vs float32 above 2^53", FromInt64(9007199254740993), FromFloat32(9007199254740992), false},
		{"int64 vs float64 above 2^53", FromInt64(9007199254740993), FromFloat64(9007199254740992), false},
		{"int vs integral float32", FromInt32(16777216), FromFloat32(16777216), true},
		{"int vs fractional float", FromInt32(1), FromFloat64(1.5), false},
		{"int vs float beyond int64", FromInt64(math.MaxInt64), FromFloat64(1 << 63), false},
		{"int vs nan", FromInt32(0), FromFloat64(math.NaN()), false},
		{"string vs number", FromString("1"), FromInt(1), false},
		{"bool", FromBool(true), FromBool(false), false},
		{"empty containers", NewObject(), NewArray(), false},
		{"shared", NewArray(shared, shared), NewArray(NewArray(FromInt(1)), shared), true},
		{"nested diff", obj("a", NewArray(obj("x", FromString("y")))), obj("a", NewArray(obj("x", FromString("z")))), false},
	}
}

func TestEqual(t *testing.T) {
	for _, tc := range eqTests() {
		t.Run(tc.name, func(t *testing.T) {
			eq, err := Equal(tc.a, tc.b)
			if err != nil {
				t.Fatal(err)
			}
			if eq != tc.equal {
				t.Errorf("Equal = %v", eq)
			}
			eq, _ = Equal(tc.b, tc.a)
			if eq != tc.equal {
				t.Errorf("Equal reversed = %v", eq)
			}
		})
	}
}

func TestEqualIdentity(t *testing.T) {
	a := NewArray()
	a.Append(a)
	// identical cyclic values are equal without descending
	eq, err := Equal(a, a)
	if err != nil || !eq {
		t.Errorf("Equal(a, a) = %v, %v", eq, err)
	}
}

func TestEqualCycle(t *testing.T) {
	a := NewArray()
	a.Append(a)
	b := NewArray()
	b.Append(b)
	_, err := Equal(a, b)
	if !errors.Is(err, ErrCycle) {
		t.Errorf("got %v", err)
	}

	// a cycle only on the right hand side
	c := NewArray(NewArray(NewArray()))
	_, err = Equal(c, b)
	if !errors.Is(err, ErrCycle) {
		t.Errorf("right side cycle: got %v", err)
	}
}

func TestEqualDeep(t *testing.T) {
	a, b := deepArray(100000), deepArray(100000)
	eq, err := Equal(a, b)
	if err != nil || !eq {
		t.Fatalf("Equal = %v, %v", eq, err)
	}
	c := deepArray(99999)
	if eq, _ := Equal(a, c); eq {
		t.Error("different depths equal")
	}
}
