package ir

// Edge locates a node relative to its parent during [Walk]. The root has
// a nil Parent and Depth 0.
type Edge struct {
	Parent *Node
	Key    string
	Index  int
	Depth  int

	w *walker
}

// Path renders the location of the edge's node from the root, such as
// $.items[3].name. It is only valid inside the WalkFunc which received e.
func (e Edge) Path() string {
	var b []byte
	b = append(b, '$')
	if e.Parent == nil {
		return string(b)
	}
	if e.w != nil {
		for _, fr := range e.w.stack[1:] {
			if fr.edge.Depth >= e.Depth {
				break
			}
			b = appendFrag(b, fr.edge)
		}
	}
	return string(appendFrag(b, e))
}

func appendFrag(b []byte, e Edge) []byte {
	if e.Parent.Type() == ObjectType {
		return appendField(b, e.Key)
	}
	return appendIndex(b, e.Index)
}

// WalkFunc is called before (isPost false) and, for containers it chose
// to enter, after (isPost true) the children of every node. Returning
// false from the pre call skips the node's children and its post call.
// The boolean returned from a post call is ignored.
type WalkFunc func(y *Node, e Edge, isPost bool) (bool, error)

type frame struct {
	node *Node
	edge Edge
	next int
}

type walker struct {
	stack  []frame
	onPath map[*Node]struct{}
}

// Walk visits root and its descendants depth first in document order.
// Children are kept on an explicit stack, so depth is bounded by memory
// and not by the goroutine stack.
//
// Before entering a container child Walk checks whether that container
// is one of the child's ancestors and returns a *CycleError if so. A
// container reachable along several paths is visited once per path.
func Walk(root *Node, f WalkFunc) error {
	root = orNull(root)
	w := &walker{}
	dive, err := f(root, Edge{w: w}, false)
	if err != nil {
		return err
	}
	if !dive || root.IsLeaf() {
		return nil
	}
	w.onPath = map[*Node]struct{}{root: {}}
	w.stack = append(w.stack, frame{node: root, edge: Edge{w: w}})
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next >= top.node.Len() {
			fr := *top
			w.stack = w.stack[:len(w.stack)-1]
			delete(w.onPath, fr.node)
			if _, err := f(fr.node, fr.edge, true); err != nil {
				return err
			}
			continue
		}
		i := top.next
		top.next++
		key, child := top.node.child(i)
		e := Edge{
			Parent: top.node,
			Key:    key,
			Index:  i,
			Depth:  len(w.stack),
			w:      w,
		}
		leaf := child.IsLeaf()
		if !leaf {
			if _, ok := w.onPath[child]; ok {
				return &CycleError{Path: e.Path()}
			}
		}
		dive, err := f(child, e, false)
		if err != nil {
			return err
		}
		if !dive || leaf {
			continue
		}
		w.onPath[child] = struct{}{}
		w.stack = append(w.stack, frame{node: child, edge: e})
	}
	return nil
}

// CheckAcyclic returns a *CycleError if any container in y's tree
// contains one of its own ancestors.
func CheckAcyclic(y *Node) error {
	return Walk(y, func(*Node, Edge, bool) (bool, error) {
		return true, nil
	})
}
