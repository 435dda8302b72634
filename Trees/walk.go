package Trees

import (
	"github.com/g-m-twostay/ordset/Queues"
)

// inOrder traversal with an explicit stack of the left spine.
func inOrder[N any, P nodeLike[N]](root P, f func(int32) bool) {
	st := Queues.MakeLinkedDeque[P]()
	for cur := root; cur != nil; cur = P(cur.left()) {
		st.PushBack(cur)
	}
	for !st.Empty() {
		cur, _ := st.PopBack()
		if !f(cur.value()) {
			return
		}
		for cur = P(cur.right()); cur != nil; cur = P(cur.left()) {
			st.PushBack(cur)
		}
	}
}

type leveled[P any] struct {
	n P
	d uint
}

// levels is a breadth first traversal, left child before right child.
func levels[N any, P nodeLike[N]](root P, f func(uint, int32) bool) {
	if root == nil {
		return
	}
	q := Queues.MakeArrayQueue[leveled[P]](16)
	for q.Push(leveled[P]{root, 0}); !q.Empty(); {
		top, _ := q.Pop()
		if !f(top.d, top.n.value()) {
			return
		}
		if l := P(top.n.left()); l != nil {
			q.Push(leveled[P]{l, top.d + 1})
		}
		if r := P(top.n.right()); r != nil {
			q.Push(leveled[P]{r, top.d + 1})
		}
	}
}

// minDepth of the leaves under c, which is at depth cd. 0 for an empty tree.
func minDepth[N any, P nodeLike[N]](c P, cd uint) uint {
	if c == nil {
		return 0
	}
	l, r := P(c.left()), P(c.right())
	switch {
	case l == nil && r == nil:
		return cd
	case l == nil:
		return minDepth[N](r, cd+1)
	case r == nil:
		return minDepth[N](l, cd+1)
	}
	return min(minDepth[N](l, cd+1), minDepth[N](r, cd+1))
}

// maxDepth of the leaves under c, which is at depth cd. 0 for an empty tree.
func maxDepth[N any, P nodeLike[N]](c P, cd uint) uint {
	if c == nil {
		return 0
	}
	l, r := P(c.left()), P(c.right())
	if l == nil && r == nil {
		return cd
	}
	return max(maxDepth[N](l, cd+1), maxDepth[N](r, cd+1))
}
