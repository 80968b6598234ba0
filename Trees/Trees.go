package Trees

import "iter"

// Tree is the contract of an ordered container of unique values.
// Receivers returning a pointer use nil for "not found"; receivers returning
// an error fail with ErrEmpty on an empty tree. Traversals are iterative, so
// a degenerate tree of depth n doesn't grow the goroutine stack.
type Tree[T any] interface {
	//Add v to the Tree, overwriting an equal value. Returns the node holding v.
	Add(v T) *Node[T]
	//Remove v from the Tree. Returning true if successful, false otherwise.
	Remove(v T) bool
	//Find the node holding v.
	Find(v T) *Node[T]
	//Has element v.
	Has(v T) bool
	//Left is the minimum element of the tree.
	Left() (T, error)
	//Right is the maximum element of the tree.
	Right() (T, error)
	//Predecessor returns the greatest element less than v, or less or equal when strict is false.
	Predecessor(v T, strict bool) *Node[T]
	//Successor returns the smallest element greater than v, or greater or equal when strict is false.
	Successor(v T, strict bool) *Node[T]
	//Len is the number of elements.
	Len() int
	//All elements in ascending order. The tree must not be modified during the iteration.
	All() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures.
	Corrupt() bool
}

var _ Tree[int] = (*BSTree[int])(nil)
