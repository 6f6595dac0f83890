package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// NumberKind is the representation held by a NumberType node.
type NumberKind int

const (
	Int32 NumberKind = iota
	Int64
	Float32
	Float64
)

func (k NumberKind) String() string {
	switch k {
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return "<unknown number kind>"
	}
}

func (k NumberKind) IsInteger() bool {
	return k == Int32 || k == Int64
}
