package libdiff

import (
	"strconv"
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jsondoc/ir"
)

// diffArray aligns the elements of p by summary:
//
//  1. every element is summarized: leaves by type and value, containers
//     by type alone
//  2. each distinct summary becomes one rune and the rune sequences are
//     diffed
//  3. deletions followed by insertions become replacements, the rest
//     become removals and additions at the running index
//  4. aligned elements are scheduled for a further diff at their final
//     index
func diffArray(res Patch, work []pair, p pair) (Patch, []pair) {
	from, to := p.from.Values(), p.to.Values()
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var aligned []pair
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range n {
				aligned = append(aligned, pair{from: from[fi], to: to[ti], at: p.at.index(ti)})
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			nIns := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				nIns = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			nRepl := min(n, nIns)
			for range nRepl {
				res = append(res, Op{Op: OpReplace, Path: string(p.at.index(ti)), Value: to[ti]})
				fi++
				ti++
			}
			for range n - nRepl {
				res = append(res, Op{Op: OpRemove, Path: string(p.at.index(ti))})
				fi++
			}
			for range nIns - nRepl {
				res = append(res, Op{Op: OpAdd, Path: string(p.at.index(ti)), Value: to[ti]})
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Op{Op: OpAdd, Path: string(p.at.index(ti)), Value: to[ti]})
				ti++
			}
		}
	}
	for i := len(aligned) - 1; i >= 0; i-- {
		work = append(work, aligned[i])
	}
	return res, work
}

func mapValues(m map[string]rune, vs []*ir.Node) []rune {
	rs := make([]rune, len(vs))
	for i, v := range vs {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = summaryRune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryRune maps the i'th distinct summary to a rune which survives
// conversion to string, skipping the surrogate range.
func summaryRune(i int) rune {
	r := rune(i) + 1
	if r >= 0xd800 {
		r += 0x800
	}
	return r
}

func summaryStr(y *ir.Node) string {
	switch y.Type() {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return y.Type().String()
	case ir.BoolType:
		b, _ := y.AsBool()
		return y.Type().String() + "-" + strconv.FormatBool(b)
	case ir.StringType:
		s, _ := y.AsString()
		return y.Type().String() + "-" + s
	default:
		// equal numbers of different kinds share a hash
		h, _ := y.Hash()
		return y.Type().String() + "-" + strconv.FormatUint(h, 16)
	}
}
