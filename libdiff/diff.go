package libdiff

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
)

type pair struct {
	from, to *ir.Node
	at       pointer
}

// Diff returns the operations transforming from into to. Values equal
// under [ir.Equal] produce no operations. Cyclic input fails with an
// *ir.CycleError.
func Diff(from, to *ir.Node) (Patch, error) {
	if err := ir.CheckAcyclic(from); err != nil {
		return nil, err
	}
	if err := ir.CheckAcyclic(to); err != nil {
		return nil, err
	}
	var res Patch
	work := []pair{{from: from, to: to}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if p.from == p.to {
			continue
		}
		ft, tt := p.from.Type(), p.to.Type()
		switch {
		case ft != tt || p.from.IsLeaf():
			eq, err := ir.Equal(p.from, p.to)
			if err != nil {
				return nil, err
			}
			if !eq {
				res = append(res, Op{Op: OpReplace, Path: string(p.at), Value: p.to})
			}
			continue
		case ft == ir.ObjectType:
			res, work = diffObject(res, work, p)
		default:
			res, work = diffArray(res, work, p)
		}
	}
	if debug.Diff() {
		debug.Logf("diff %d ops\n%s\n", len(res), debug.Node{Node: res.Node()})
	}
	return res, nil
}

// diffObject emits removals and additions for p and schedules the common
// keys. Children are pushed in reverse so they pop in document order.
func diffObject(res Patch, work []pair, p pair) (Patch, []pair) {
	for k := range p.from.Entries() {
		if _, ok := p.to.Get(k); !ok {
			res = append(res, Op{Op: OpRemove, Path: string(p.at.key(k))})
		}
	}
	var common []pair
	for k, tv := range p.to.Entries() {
		fv, ok := p.from.Get(k)
		if !ok {
			res = append(res, Op{Op: OpAdd, Path: string(p.at.key(k)), Value: tv})
			continue
		}
		common = append(common, pair{from: fv, to: tv, at: p.at.key(k)})
	}
	for i := len(common) - 1; i >= 0; i-- {
		work = append(work, common[i])
	}
	return res, work
}
