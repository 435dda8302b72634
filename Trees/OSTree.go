package Trees

import (
	"golang.org/x/exp/constraints"
)

// OSTree is an order-statistics tree: a binary search tree with no repeated
// values where every node also stores the size of its own subtree. The sizes
// make Rank and Select O(D) instead of O(n). The tree isn't balanced, so the
// height D is O(log n) on random input and O(n) in the worst case, for
// example when values are inserted in sorted order.
// S is the type of the subtree sizes, so the additional memory cost is
// size(S)*n. S must be wide enough to hold the size of the tree: Insert doesn't
// check for overflow. Since Rank and Size return uint, S shouldn't be wider
// than uint either.
// The zero value is an empty tree ready to use.
type OSTree[S constraints.Unsigned] struct {
	root *node[S] //nil when empty.
}

// NewOSTree returns an empty OSTree.
func NewOSTree[S constraints.Unsigned]() *OSTree[S] {
	return new(OSTree[S])
}

// BuildOSTree builds an OSTree using the given sorted slice recursively. This
// is faster than repeatedly calling Insert and the result is perfectly
// balanced. The slice must be in strictly ascending order.
// If safe==true, this function checks the order and panics with
// InvalidSliceError if it's broken. Otherwise it is up to the caller to ensure
// the order, or the tree will be corrupt.
// Time: O(n).
func BuildOSTree[S constraints.Unsigned](sorted []int32, safe bool) *OSTree[S] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1] >= sorted[i] {
				panic(InvalidSliceError{i, sorted[i-1], sorted[i]})
			}
		}
	}
	var build func([]int32) *node[S]
	build = func(s []int32) *node[S] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node[S]{s[mid], build(s[:mid]), build(s[mid+1:]), S(len(s))}
	}
	return &OSTree[S]{build(sorted)}
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *OSTree[S]) Size() uint {
	return uint(size(u.root))
}

// Clear the tree.
func (u *OSTree[S]) Clear() {
	u.root = nil
}

// insert v into the subtree cur and return the new root of that subtree.
// Sizes on the path are incremented only when v wasn't already present.
func (u *OSTree[S]) insert(cur *node[S], v int32) (*node[S], bool) {
	if cur == nil {
		return &node[S]{v: v, sz: 1}, true
	}
	inserted := false
	if v < cur.v {
		cur.l, inserted = u.insert(cur.l, v)
	} else if v > cur.v {
		cur.r, inserted = u.insert(cur.r, v)
	} else {
		return cur, false
	}
	if inserted {
		cur.sz++
	}
	return cur, inserted
}

// Insert [Sets.Set.Insert]. Recursive.
// Time: O(D)
func (u *OSTree[S]) Insert(v int32) (inserted bool) {
	u.root, inserted = u.insert(u.root, v)
	return
}

// removeMax detaches the rightmost node of the non-empty subtree cur. It
// returns what is left of the subtree and the detached node, whose children
// are unchanged. Every node on the path loses one from its size.
func (u *OSTree[S]) removeMax(cur *node[S]) (rest, last *node[S]) {
	if cur.r == nil {
		return cur.l, cur
	}
	cur.r, last = u.removeMax(cur.r)
	cur.sz--
	return cur, last
}

// remove v from the subtree cur and return the new root of that subtree.
// Sizes on the path are decremented only when v was found.
func (u *OSTree[S]) remove(cur *node[S], v int32) (*node[S], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.v {
		cur.l, deleted = u.remove(cur.l, v)
	} else if v > cur.v {
		cur.r, deleted = u.remove(cur.r, v)
	} else {
		switch {
		case cur.l == nil && cur.r == nil:
			return nil, true
		case cur.r == nil:
			return cur.l, true
		case cur.l == nil:
			return cur.r, true
		default:
			// the predecessor of v takes over both children of cur.
			rest, pred := u.removeMax(cur.l)
			pred.l, pred.r = rest, cur.r
			pull(pred)
			return pred, true
		}
	}
	if deleted {
		cur.sz--
	}
	return cur, deleted
}

// Delete [Sets.Set.Delete]. Recursive.
// Time: O(D)
func (u *OSTree[S]) Delete(v int32) (deleted bool) {
	u.root, deleted = u.remove(u.root, v)
	return
}

// Member [Sets.Set.Member]
// Time: O(D); Space: O(1)
func (u *OSTree[S]) Member(v int32) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OSTree[S]) Minimum() (int32, bool) {
	cur := u.root
	if cur == nil {
		return 0, false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OSTree[S]) Maximum() (int32, bool) {
	cur := u.root
	if cur == nil {
		return 0, false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Sets.Set.Predecessor]
// Every node passed on the way right is smaller than v and larger than all the
// candidates before it.
// Time: O(D); Space: O(1)
func (u *OSTree[S]) Predecessor(v int32) (int32, bool) {
	var p *node[S]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return 0, false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *OSTree[S]) Successor(v int32) (int32, bool) {
	var p *node[S]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return 0, false
	}
	return p.v, true
}

// Rank [Sets.Set.Rank]
// Each step right adds the left subtree and the node itself to the count.
// Time: O(D); Space: O(1)
func (u *OSTree[S]) Rank(v int32) uint {
	var ra S
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return uint(ra + size(cur.l) + 1)
		} else {
			ra += size(cur.l) + 1
			cur = cur.r
		}
	}
	return uint(ra)
}

// Select [Sets.Set.Select]
// Time: O(D); Space: O(1)
func (u *OSTree[S]) Select(j uint) (int32, bool) {
	if j >= u.Size() {
		return 0, false
	}
	k := S(j)
	cur := u.root
	for {
		if ls := size(cur.l); k < ls {
			cur = cur.l
		} else if k == ls {
			return cur.v, true
		} else {
			k -= ls + 1
			cur = cur.r
		}
	}
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(D)
func (u *OSTree[S]) InOrder(f func(int32) bool) {
	inOrder[node[S]](u.root, f)
}

// Levels [Tree.Levels]
// Time: O(n); Space: O(n)
func (u *OSTree[S]) Levels(f func(uint, int32) bool) {
	levels[node[S]](u.root, f)
}

// MinDepth [Tree.MinDepth]. Recursive.
func (u *OSTree[S]) MinDepth() uint {
	return minDepth[node[S]](u.root, 0)
}

// MaxDepth [Tree.MaxDepth]. Recursive.
func (u *OSTree[S]) MaxDepth() uint {
	return maxDepth[node[S]](u.root, 0)
}
