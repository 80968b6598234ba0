package Trees

// A Node in the BSTree. l and r own the subtrees, p only points back up.
// The zero value is meaningless; nodes are only made by BSTree.Add.
type Node[T any] struct {
	v       T
	p, l, r *Node[T]
}

// Value stored in the node.
func (n *Node[T]) Value() T {
	return n.v
}

// Parent of n, nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.p
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

func (n *Node[T]) IsLeaf() bool {
	return n.l == nil && n.r == nil
}

// Min is the leftmost node of the subtree rooted at n.
// Time: O(depth); Space: O(1)
func (n *Node[T]) Min() *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// Max is the rightmost node of the subtree rooted at n.
// Time: O(depth); Space: O(1)
func (n *Node[T]) Max() *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// Root follows parent links to the top of the graph n belongs to.
func (n *Node[T]) Root() *Node[T] {
	for n.p != nil {
		n = n.p
	}
	return n
}

// Next is the in-order successor of n, nil if n holds the largest value.
func (n *Node[T]) Next() *Node[T] {
	if n.r != nil {
		return n.r.Min()
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// Prev is the in-order predecessor of n, nil if n holds the smallest value.
func (n *Node[T]) Prev() *Node[T] {
	if n.l != nil {
		return n.l.Max()
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

// detach clears every link of a node that has been spliced out, so a stale
// handle can't reach back into the tree.
func (n *Node[T]) detach() {
	n.p, n.l, n.r = nil, nil, nil
}
