package ir

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a structural hash of y which is consistent with [Equal]:
// equal nodes hash equally. Object entries are combined independently of
// order. The hash is stable across processes.
//
// Hash returns a *CycleError if y contains a cycle.
func (y *Node) Hash() (uint64, error) {
	type acc struct {
		d   *xxhash.Digest
		sum uint64
		n   uint64
	}
	var (
		stack []acc
		res   uint64
	)
	emit := func(e Edge, h uint64) {
		if len(stack) == 0 {
			res = h
			return
		}
		top := &stack[len(stack)-1]
		top.n++
		if e.Parent.typ == ArrayType {
			writeUint64(top.d, h)
			return
		}
		top.sum += entryHash(e.Key, h)
	}
	err := Walk(y, func(x *Node, e Edge, isPost bool) (bool, error) {
		if !isPost {
			if x.IsLeaf() {
				emit(e, leafHash(x))
				return false, nil
			}
			d := xxhash.New()
			d.Write([]byte{byte(x.typ)})
			stack = append(stack, acc{d: d})
			return true, nil
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if x.typ == ObjectType {
			writeUint64(top.d, top.sum)
		}
		writeUint64(top.d, top.n)
		emit(e, top.d.Sum64())
		return false, nil
	})
	if err != nil {
		return 0, err
	}
	return res, nil
}

func leafHash(y *Node) uint64 {
	var b [9]byte
	b[0] = byte(y.Type())
	switch y.Type() {
	case BoolType:
		if y.b {
			b[1] = 1
		}
		return xxhash.Sum64(b[:2])
	case NumberType:
		binary.LittleEndian.PutUint32(b[1:], numberHashBits(y.num))
		return xxhash.Sum64(b[:5])
	case StringType:
		d := xxhash.New()
		d.Write(b[:1])
		d.WriteString(y.s)
		return d.Sum64()
	default:
		return xxhash.Sum64(b[:1])
	}
}

func entryHash(key string, h uint64) uint64 {
	d := xxhash.New()
	d.WriteString(key)
	writeUint64(d, h)
	return d.Sum64()
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	d.Write(b[:])
}
