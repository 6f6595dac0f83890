package ir

// Clone returns a deep copy of y. Leaves are immutable and are shared
// with the copy. A container reachable along several paths is copied once
// per path, so the copy holds independent containers where y held one.
//
// Clone returns a *CycleError if y contains a cycle.
func (y *Node) Clone() (*Node, error) {
	var (
		stack []*Node
		res   *Node
	)
	err := Walk(y, func(x *Node, e Edge, isPost bool) (bool, error) {
		if isPost {
			stack = stack[:len(stack)-1]
			return false, nil
		}
		c := x
		if !x.IsLeaf() {
			c = &Node{typ: x.typ, values: make([]*Node, 0, len(x.values))}
			if x.typ == ObjectType {
				c.keys = make([]string, 0, len(x.keys))
				c.index = make(map[string]int, len(x.keys))
			}
		}
		if len(stack) == 0 {
			res = c
		} else {
			p := stack[len(stack)-1]
			if p.typ == ObjectType {
				p.index[e.Key] = len(p.keys)
				p.keys = append(p.keys, e.Key)
			}
			p.values = append(p.values, c)
		}
		if x.IsLeaf() {
			return false, nil
		}
		stack = append(stack, c)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
