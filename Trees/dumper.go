package Trees

import (
	"fmt"

	"github.com/xlab/treeprint"
)

type depthItem[T any] struct {
	n *Node[T]
	d int
}

// Height is the number of nodes on the longest root-to-leaf path, 0 if empty.
// Sorted insertion gives Height()==Len().
func (u *BSTree[T]) Height() (h int) {
	if u.root == nil {
		return 0
	}
	for st := []depthItem[T]{{u.root, 1}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		if top.n.l != nil {
			st = append(st, depthItem[T]{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, depthItem[T]{top.n.r, top.d + 1})
		}
	}
	return
}

// AverageDepth of the leaves, 0 if empty.
func (u *BSTree[T]) AverageDepth() float64 {
	if u.root == nil {
		return 0
	}
	var leaves, sum int
	for st := []depthItem[T]{{u.root, 1}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.n.IsLeaf() {
			leaves++
			sum += top.d
			continue
		}
		if top.n.l != nil {
			st = append(st, depthItem[T]{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, depthItem[T]{top.n.r, top.d + 1})
		}
	}
	return float64(sum) / float64(leaves)
}

// Corrupt returns whether the tree breaks one of its structural properties:
// ascending in-order values, parent links matching child links, and the size
// matching the number of reachable nodes.
func (u *BSTree[T]) Corrupt() bool {
	if (u.root == nil) != (u.size == 0) || u.root != nil && u.root.p != nil {
		return true
	}
	var prev *Node[T]
	count, bad := 0, false
	u.InOrder(func(n *Node[T]) bool {
		if prev != nil && u.cmp(prev.v, n.v) >= 0 {
			bad = true
		}
		if n.l != nil && n.l.p != n || n.r != nil && n.r.p != n {
			bad = true
		}
		prev = n
		count++
		return !bad && count <= u.size
	}, nil)
	return bad || count != u.size
}

type dumpItem[T any] struct {
	n   *Node[T]
	out treeprint.Tree
}

// Dump renders the shape of the tree. Children are tagged L or R; a missing
// sibling of a lone child is shown as "-".
func (u *BSTree[T]) Dump() string {
	if u.root == nil {
		return treeprint.NewWithRoot("{ }").String()
	}
	out := treeprint.NewWithRoot(fmt.Sprint(u.root.v))
	for st := []dumpItem[T]{{u.root, out}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.n.IsLeaf() {
			continue
		}
		for i, c := range [2]*Node[T]{top.n.l, top.n.r} {
			tag := "LR"[i : i+1]
			if c == nil {
				top.out.AddNode(tag + ": -")
			} else if c.IsLeaf() {
				top.out.AddNode(tag + ": " + fmt.Sprint(c.v))
			} else {
				st = append(st, dumpItem[T]{c, top.out.AddBranch(tag + ": " + fmt.Sprint(c.v))})
			}
		}
	}
	return out.String()
}
