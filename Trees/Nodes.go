package Trees

import "golang.org/x/exp/constraints"

// A node in the OSTree. sz is the number of nodes in the subtree rooted here,
// itself included. A nil *node is the empty subtree and has size 0.
type node[S constraints.Unsigned] struct {
	v    int32
	l, r *node[S]
	sz   S
}

// size of the subtree n, 0 for nil.
// Time: O(1)
func size[S constraints.Unsigned](n *node[S]) S {
	if n == nil {
		return 0
	}
	return n.sz
}

// pull recomputes n.sz from its children. It must be called whenever a child
// link of n changes to a subtree of a different size.
func pull[S constraints.Unsigned](n *node[S]) {
	n.sz = size(n.l) + size(n.r) + 1
}

// A node in the BSTree. Same as node but without the size counter.
type bstNode struct {
	v    int32
	l, r *bstNode
}

// nodeLike is the read-only view shared by both node kinds, used by the
// traversal and printing helpers.
type nodeLike[N any] interface {
	*N
	value() int32
	left() *N
	right() *N
}

func (n *node[S]) value() int32    { return n.v }
func (n *node[S]) left() *node[S]  { return n.l }
func (n *node[S]) right() *node[S] { return n.r }

func (n *bstNode) value() int32    { return n.v }
func (n *bstNode) left() *bstNode  { return n.l }
func (n *bstNode) right() *bstNode { return n.r }
