package Trees

import (
	"errors"
	"fmt"

	"github.com/g-m-twostay/ordset/Sets"
)

// Tree is a Sets.Set implemented as a binary search tree. Receivers that have
// a bool as a second return value report whether the first one is defined;
// when it is false the first value is 0 and must not be used.
// Read methods are iterative; mutating methods are recursive and noted as such.
type Tree interface {
	Sets.Set
	//Minimum element of the tree.
	Minimum() (int32, bool)
	//Maximum element of the tree.
	Maximum() (int32, bool)
	//Successor returns the smallest element greater than v.
	Successor(v int32) (int32, bool)
	//InOrder calls f on every element in ascending order until f returns false.
	//The tree must not be modified by f.
	InOrder(f func(int32) bool)
	//Levels calls f on every element in breadth-first order, together with its
	//depth (the root has depth 0), until f returns false.
	Levels(f func(depth uint, v int32) bool)
	//MinDepth is the depth of the shallowest leaf.
	MinDepth() uint
	//MaxDepth is the depth of the deepest leaf, the height of the tree.
	MaxDepth() uint
	//Corrupt reports whether some node violates the properties of the
	//implementation. This is to be distinguished from whether the tree is balanced.
	Corrupt() bool
	//Clear removes all elements.
	Clear()
	String() string
}

var (
	// ErrOrder is wrapped by Check when an element is out of search order.
	ErrOrder = errors.New("trees: search order violated")
	// ErrSizeDrift is wrapped by Check when a cached subtree size differs from
	// the number of nodes in that subtree.
	ErrSizeDrift = errors.New("trees: subtree size drift")
)

// InvalidSliceError is the panic value of the safe builders when the input is
// not strictly ascending at index I.
type InvalidSliceError struct {
	I          int
	Prev, Curr int32
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice not strictly ascending at %d: %d then %d", e.I, e.Prev, e.Curr)
}
