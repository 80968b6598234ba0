package Trees

import (
	"fmt"
	"iter"
	"strings"
)

// InOrder calls f on every node in ascending order until f returns false.
// st is an optional stack buffer for the walk; it's returned emptied so
// callers can reuse it. The tree mustn't be modified while f runs.
// Time: O(n); Space: O(depth)
func (u *BSTree[T]) InOrder(f func(*Node[T]) bool, st []*Node[T]) []*Node[T] {
	st = st[:0]
	for cur := u.root; cur != nil || len(st) > 0; cur = cur.r {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		cur = st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			break
		}
	}
	return st[:0]
}

// InOrderR is InOrder in descending order.
func (u *BSTree[T]) InOrderR(f func(*Node[T]) bool, st []*Node[T]) []*Node[T] {
	st = st[:0]
	for cur := u.root; cur != nil || len(st) > 0; cur = cur.l {
		for ; cur != nil; cur = cur.r {
			st = append(st, cur)
		}
		cur = st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur) {
			break
		}
	}
	return st[:0]
}

// preOrder visits n, then its left subtree, then its right subtree.
func preOrder[T any](n *Node[T], f func(*Node[T])) {
	if n == nil {
		return
	}
	for st := []*Node[T]{n}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		f(cur)
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
	}
}

// All values in ascending order.
func (u *BSTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.InOrder(func(n *Node[T]) bool {
			return yield(n.v)
		}, nil)
	}
}

// Backward yields all values in descending order.
func (u *BSTree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.InOrderR(func(n *Node[T]) bool {
			return yield(n.v)
		}, nil)
	}
}

// AppendTo appends all values to dst in ascending order.
func (u *BSTree[T]) AppendTo(dst []T) []T {
	u.InOrder(func(n *Node[T]) bool {
		dst = append(dst, n.v)
		return true
	}, nil)
	return dst
}

// ToSlice returns a new slice of length Len with all values in ascending order.
func (u *BSTree[T]) ToSlice() []T {
	return u.AppendTo(make([]T, 0, u.size))
}

// String formats the values in ascending order as "{ v1, v2, v3 }", or "{ }" if empty.
func (u *BSTree[T]) String() string {
	if u.size == 0 {
		return "{ }"
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	first := true
	u.InOrder(func(n *Node[T]) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, n.v)
		return true
	}, nil)
	sb.WriteString(" }")
	return sb.String()
}
