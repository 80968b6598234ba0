package Trees

import (
	"cmp"
	"iter"
)

// BSTree is an unbalanced binary search tree ordered by a total-order comparator.
// Values comparing equal are stored once; adding one again overwrites the stored value.
// Nodes are relinked, never copied, on removal, so a handle from Add or Find stays
// valid until that node itself is removed. BSTree isn't safe for concurrent use.
type BSTree[T any] struct {
	root *Node[T]
	size int
	cmp  func(a, b T) int
}

// New makes a tree of a naturally ordered type holding vs.
func New[T cmp.Ordered](vs ...T) *BSTree[T] {
	return NewFunc(cmp.Compare[T], vs...)
}

// NewFunc makes a tree ordered by c holding vs, added in order so later duplicates win.
// c must be a total order: negative when a<b, 0 when a==b, positive when a>b.
func NewFunc[T any](c func(a, b T) int, vs ...T) *BSTree[T] {
	if c == nil {
		panic(InvalidComparatorError{})
	}
	u := &BSTree[T]{cmp: c}
	for _, v := range vs {
		u.Add(v)
	}
	return u
}

// Collect is New for a sequence. seq is consumed once.
func Collect[T cmp.Ordered](seq iter.Seq[T]) *BSTree[T] {
	return CollectFunc(cmp.Compare[T], seq)
}

// CollectFunc is NewFunc for a sequence. seq is consumed once.
func CollectFunc[T any](c func(a, b T) int, seq iter.Seq[T]) *BSTree[T] {
	u := NewFunc(c)
	for v := range seq {
		u.Add(v)
	}
	return u
}

func (u *BSTree[T]) Len() int {
	return u.size
}

func (u *BSTree[T]) Empty() bool {
	return u.size == 0
}

// Root node, nil if empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Begin is the node holding the smallest value, nil if empty.
func (u *BSTree[T]) Begin() *Node[T] {
	if u.root == nil {
		return nil
	}
	return u.root.Min()
}

// End is the node holding the largest value, nil if empty.
func (u *BSTree[T]) End() *Node[T] {
	if u.root == nil {
		return nil
	}
	return u.root.Max()
}

// Left is the smallest value.
func (u *BSTree[T]) Left() (T, error) {
	if u.root == nil {
		return *new(T), emptyErr("left")
	}
	return u.root.Min().v, nil
}

// Top is the value at the root.
func (u *BSTree[T]) Top() (T, error) {
	if u.root == nil {
		return *new(T), emptyErr("top")
	}
	return u.root.v, nil
}

// Right is the largest value.
func (u *BSTree[T]) Right() (T, error) {
	if u.root == nil {
		return *new(T), emptyErr("right")
	}
	return u.root.Max().v, nil
}

// Add v and return the node holding it. If an equal value is present its node
// is overwritten with v and the size doesn't change.
// Time: O(depth); Space: O(1)
func (u *BSTree[T]) Add(v T) *Node[T] {
	var p *Node[T]
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if c := u.cmp(v, cur.v); c < 0 {
			curPtr = &cur.l
		} else if c > 0 {
			curPtr = &cur.r
		} else {
			cur.v = v
			return cur
		}
		p = cur
	}
	*curPtr = &Node[T]{v: v, p: p}
	u.size++
	return *curPtr
}

// Find the node holding a value equal to v, nil if there's none.
// Time: O(depth); Space: O(1)
func (u *BSTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has a value equal to v.
func (u *BSTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Contains reports whether n is a node of this tree. It checks identity by
// walking the parent links of n, not by searching for n's value.
// Time: O(depth of n); Space: O(1)
func (u *BSTree[T]) Contains(n *Node[T]) bool {
	return n != nil && u.root != nil && n.Root() == u.root
}

// Predecessor of v. If strict is true, result<v if found; otherwise, result<=v.
func (u *BSTree[T]) Predecessor(v T, strict bool) (p *Node[T]) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 || strict && c == 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return
}

// Successor of v. If strict is true, result>v if found; otherwise, result>=v.
func (u *BSTree[T]) Successor(v T, strict bool) (p *Node[T]) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c > 0 || strict && c == 0 {
			cur = cur.r
		} else {
			p = cur
			cur = cur.l
		}
	}
	return
}

// slot is the link owning n: a child field of n's parent, or the root.
func (u *BSTree[T]) slot(n *Node[T]) **Node[T] {
	switch {
	case n.p == nil:
		return &u.root
	case n.p.l == n:
		return &n.p.l
	default:
		return &n.p.r
	}
}

// unlink splices n out of the tree. n must belong to u.
func (u *BSTree[T]) unlink(n *Node[T]) {
	switch at := u.slot(n); {
	case n.l == nil && n.r == nil:
		*at = nil
	case n.r == nil:
		n.l.p, *at = n.p, n.l
	case n.l == nil:
		n.r.p, *at = n.p, n.r
	default:
		// s is the in-order successor. It has no left child.
		s := n.r
		if s.l != nil {
			s = s.l.Min()
			s.p.l = s.r
			if s.r != nil {
				s.r.p = s.p
			}
			s.r, n.r.p = n.r, s
		} // else s is n.r and keeps its right subtree.
		s.l, n.l.p = n.l, s
		s.p, *at = n.p, s
	}
	n.detach()
	if u.size--; u.size <= 0 {
		u.root, u.size = nil, 0
	}
}

// RemoveNode detaches n from the tree. n is left without links; its value can
// still be read. Returns ErrForeignNode and changes nothing if n isn't in this tree.
// Time: O(depth); Space: O(1)
func (u *BSTree[T]) RemoveNode(n *Node[T]) error {
	if !u.Contains(n) {
		return foreignErr("remove", n)
	}
	u.unlink(n)
	return nil
}

// Remove the value equal to v. Returns false if there's none.
func (u *BSTree[T]) Remove(v T) bool {
	if n := u.Find(v); n != nil {
		u.unlink(n)
		return true
	}
	return false
}

func (u *BSTree[T]) pop(op string, pick func(*Node[T]) *Node[T]) (T, error) {
	if u.root == nil {
		return *new(T), emptyErr(op)
	}
	n := pick(u.root)
	u.unlink(n)
	return n.v, nil
}

// RemoveLeft removes and returns the smallest value.
func (u *BSTree[T]) RemoveLeft() (T, error) {
	return u.pop("remove left", (*Node[T]).Min)
}

// RemoveRoot removes and returns the value at the root.
func (u *BSTree[T]) RemoveRoot() (T, error) {
	return u.pop("remove root", func(n *Node[T]) *Node[T] { return n })
}

// RemoveRight removes and returns the largest value.
func (u *BSTree[T]) RemoveRight() (T, error) {
	return u.pop("remove right", (*Node[T]).Max)
}

// Replace removes the value equal to old and adds v, returning v's node.
// Returns nil and changes nothing if old isn't present.
func (u *BSTree[T]) Replace(old, v T) *Node[T] {
	n := u.Find(old)
	if n == nil {
		return nil
	}
	u.unlink(n)
	return u.Add(v)
}

// ReplaceNode removes n and adds v, returning v's node.
func (u *BSTree[T]) ReplaceNode(n *Node[T], v T) (*Node[T], error) {
	if !u.Contains(n) {
		return nil, foreignErr("replace", n)
	}
	u.unlink(n)
	return u.Add(v), nil
}

// Clear drops every node and returns how many there were.
func (u *BSTree[T]) Clear() int {
	a := u.size
	u.root, u.size = nil, 0
	return a
}

// Swap the contents of u and o. The comparators move with the nodes they
// order. No node is touched.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Swap(o *BSTree[T]) {
	u.root, o.root = o.root, u.root
	u.size, o.size = o.size, u.size
	u.cmp, o.cmp = o.cmp, u.cmp
}

// Assign replaces the contents of u with the values of o, added in ascending order.
func (u *BSTree[T]) Assign(o *BSTree[T]) {
	if u == o {
		return
	}
	vs := o.ToSlice()
	u.Clear()
	for _, v := range vs {
		u.Add(v)
	}
}

// Copy makes a new tree by adding u's values in ascending order. The result
// holds the same values but its shape generally differs from u's.
func (u *BSTree[T]) Copy() *BSTree[T] {
	return NewFunc(u.cmp, u.ToSlice()...)
}

// Subset makes a new tree holding n and every value below it, added in
// pre-order so the new tree has the shape of n's subtree. u is unchanged.
func (u *BSTree[T]) Subset(n *Node[T]) *BSTree[T] {
	a := NewFunc(u.cmp)
	preOrder(n, func(c *Node[T]) {
		a.Add(c.v)
	})
	return a
}

// Merge adds every value of o to u, overwriting equal ones, then empties o.
func (u *BSTree[T]) Merge(o *BSTree[T]) {
	if u == o {
		return
	}
	for _, v := range o.ToSlice() {
		u.Add(v)
	}
	o.Clear()
}

// Equal reports whether u and o hold the same number of values and the values
// compare equal pairwise in order under both comparators, with both comparators
// ordering both sequences the same way. Equal is symmetric. Empty trees are
// never equal, not even to each other.
func (u *BSTree[T]) Equal(o *BSTree[T]) bool {
	if u.size == 0 || o.size == 0 || u.size != o.size {
		return false
	}
	a, b := u.ToSlice(), o.ToSlice()
	for i := range a {
		if u.cmp(a[i], b[i]) != 0 || o.cmp(a[i], b[i]) != 0 {
			return false
		}
		if i > 0 && (u.cmp(b[i-1], b[i]) >= 0 || o.cmp(a[i-1], a[i]) >= 0) {
			return false
		}
	}
	return true
}
