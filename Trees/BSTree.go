package Trees

// BSTree is a plain binary search tree with no repeated values and no
// balancing. Unlike OSTree its nodes carry no subtree sizes, so Rank and Select
// walk the elements in order and take O(n). Only the total count is kept, on
// the tree itself.
// The zero value is an empty tree ready to use.
type BSTree struct {
	root *bstNode
	sz   uint
}

// NewBSTree returns an empty BSTree.
func NewBSTree() *BSTree {
	return new(BSTree)
}

// Size returns the size of the tree.
// Time: O(1)
func (u *BSTree) Size() uint {
	return u.sz
}

// Clear the tree.
func (u *BSTree) Clear() {
	u.root, u.sz = nil, 0
}

func (u *BSTree) insert(cur *bstNode, v int32) (*bstNode, bool) {
	if cur == nil {
		return &bstNode{v: v}, true
	}
	inserted := false
	if v < cur.v {
		cur.l, inserted = u.insert(cur.l, v)
	} else if v > cur.v {
		cur.r, inserted = u.insert(cur.r, v)
	}
	return cur, inserted
}

// Insert [Sets.Set.Insert]. Recursive.
// Time: O(D)
func (u *BSTree) Insert(v int32) (inserted bool) {
	if u.root, inserted = u.insert(u.root, v); inserted {
		u.sz++
	}
	return
}

func (u *BSTree) removeMax(cur *bstNode) (rest, last *bstNode) {
	if cur.r == nil {
		return cur.l, cur
	}
	cur.r, last = u.removeMax(cur.r)
	return cur, last
}

// remove follows OSTree.remove without the size bookkeeping.
func (u *BSTree) remove(cur *bstNode, v int32) (*bstNode, bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if v < cur.v {
		cur.l, deleted = u.remove(cur.l, v)
	} else if v > cur.v {
		cur.r, deleted = u.remove(cur.r, v)
	} else {
		if cur.l == nil {
			return cur.r, true
		} else if cur.r == nil {
			return cur.l, true
		}
		rest, pred := u.removeMax(cur.l)
		pred.l, pred.r = rest, cur.r
		return pred, true
	}
	return cur, deleted
}

// Delete [Sets.Set.Delete]. Recursive.
// Time: O(D)
func (u *BSTree) Delete(v int32) (deleted bool) {
	if u.root, deleted = u.remove(u.root, v); deleted {
		u.sz--
	}
	return
}

// Member [Sets.Set.Member]
// Time: O(D); Space: O(1)
func (u *BSTree) Member(v int32) bool {
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
func (u *BSTree) Minimum() (int32, bool) {
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
func (u *BSTree) Maximum() (int32, bool) {
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
// Time: O(D); Space: O(1)
func (u *BSTree) Predecessor(v int32) (int32, bool) {
	var p *bstNode
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
func (u *BSTree) Successor(v int32) (int32, bool) {
	var p *bstNode
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
// Time: O(n)
func (u *BSTree) Rank(v int32) (ra uint) {
	u.InOrder(func(x int32) bool {
		if x > v {
			return false
		}
		ra++
		return true
	})
	return
}

// Select [Sets.Set.Select]
// Time: O(n)
func (u *BSTree) Select(j uint) (r int32, found bool) {
	if j >= u.sz {
		return
	}
	u.InOrder(func(x int32) bool {
		if j == 0 {
			r, found = x, true
			return false
		}
		j--
		return true
	})
	return
}

// InOrder [Tree.InOrder]
func (u *BSTree) InOrder(f func(int32) bool) {
	inOrder[bstNode](u.root, f)
}

// Levels [Tree.Levels]
func (u *BSTree) Levels(f func(uint, int32) bool) {
	levels[bstNode](u.root, f)
}

// MinDepth [Tree.MinDepth]. Recursive.
func (u *BSTree) MinDepth() uint {
	return minDepth[bstNode](u.root, 0)
}

// MaxDepth [Tree.MaxDepth]. Recursive.
func (u *BSTree) MaxDepth() uint {
	return maxDepth[bstNode](u.root, 0)
}
