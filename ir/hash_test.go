package ir

import (
	"errors"
	"testing"
)

func TestHashConsistentWithEqual(t *testing.T) {
	for _, tc := range eqTests() {
		if !tc.equal {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			ha, err := tc.a.Hash()
			if err != nil {
				t.Fatal(err)
			}
			hb, err := tc.b.Hash()
			if err != nil {
				t.Fatal(err)
			}
			if ha != hb {
				t.Errorf("%x != %x", ha, hb)
			}
		})
	}
}

func TestHashDistinguishes(t *testing.T) {
	nodes := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(0),
		FromInt(1),
		FromString(""),
		FromString("0"),
		NewArray(),
		NewObject(),
		NewArray(NewArray()),
		NewArray(FromInt(1), FromInt(2)),
		NewArray(FromInt(2), FromInt(1)),
		obj("a", FromInt(1)),
		obj("a", FromInt(2)),
		obj("b", FromInt(1)),
	}
	seen := map[uint64]int{}
	for i, y := range nodes {
		h, err := y.Hash()
		if err != nil {
			t.Fatal(err)
		}
		if j, ok := seen[h]; ok {
			t.Errorf("nodes %d and %d collide", i, j)
		}
		seen[h] = i
	}
}

func TestHashStable(t *testing.T) {
	y := obj("a", NewArray(FromInt(1), FromString("x")))
	h1, _ := y.Hash()
	h2, _ := y.Hash()
	if h1 != h2 {
		t.Error("hash changed between calls")
	}
}

func TestHashCycle(t *testing.T) {
	o := NewObject()
	o.Set("self", o)
	_, err := o.Hash()
	if !errors.Is(err, ErrCycle) {
		t.Errorf("got %v", err)
	}
}

func TestHashDeep(t *testing.T) {
	a, b := deepArray(100000), deepArray(100000)
	ha, err := a.Hash()
	if err != nil {
		t.Fatal(err)
	}
	hb, _ := b.Hash()
	if ha != hb {
		t.Error("equal deep arrays hash differently")
	}
}
