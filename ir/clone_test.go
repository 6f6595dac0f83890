package ir

import (
	"errors"
	"slices"
	"testing"
)

func TestClone(t *testing.T) {
	y := obj("b", NewArray(FromInt(1), obj("x", FromFloat32(1.5))), "a", FromString("s"))
	c, err := y.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if eq, _ := Equal(y, c); !eq {
		t.Fatal("clone not equal")
	}
	if !slices.Equal(c.Keys(), []string{"b", "a"}) {
		t.Errorf("clone keys %v", c.Keys())
	}
	cb, _ := c.Get("b")
	cb.Append(Null())
	if yb, _ := y.Get("b"); yb.Len() != 2 {
		t.Error("mutating the clone changed the original")
	}
	c.Set("c", Null())
	if _, ok := c.Get("c"); !ok {
		t.Error("clone index not usable")
	}
}

func TestCloneSharing(t *testing.T) {
	shared := NewArray(FromInt(1))
	y := NewArray(shared, shared)
	c, err := y.Clone()
	if err != nil {
		t.Fatal(err)
	}
	c0, _ := c.At(0)
	c1, _ := c.At(1)
	if c0 == c1 {
		t.Fatal("shared child copied once")
	}
	if c0 == shared {
		t.Fatal("child not copied")
	}
	c0.Append(FromInt(2))
	if c1.Len() != 1 {
		t.Error("copies of a shared child are not independent")
	}
}

func TestCloneCycle(t *testing.T) {
	a := NewArray(FromInt(1))
	b := NewArray(a)
	a.Append(b)
	_, err := b.Clone()
	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v", err)
	}
	if ce.Path != "$[0][1]" {
		t.Errorf("path %s", ce.Path)
	}
}

func TestCloneDeep(t *testing.T) {
	y := deepArray(100000)
	c, err := y.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if eq, err := Equal(y, c); err != nil || !eq {
		t.Errorf("Equal = %v, %v", eq, err)
	}
}
