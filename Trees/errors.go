package Trees

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("bstree: empty tree")
	// ErrForeignNode is returned when a node handle isn't part of the tree it's given to.
	ErrForeignNode = errors.New("bstree: node does not belong to this tree")
)

// InvalidComparatorError is the panic value of constructors given a nil comparator.
type InvalidComparatorError struct{}

func (InvalidComparatorError) Error() string {
	return "bstree: nil comparator"
}

func emptyErr(op string) error {
	return errors.Wrap(ErrEmpty, op)
}

func foreignErr[T any](op string, n *Node[T]) error {
	if n == nil {
		return errors.Wrapf(ErrForeignNode, "%s: nil node", op)
	}
	return errors.Wrapf(ErrForeignNode, "%s: node %v", op, n.v)
}
