// Package RBTreeSet is a Sets.Set backed by the red-black tree of
// github.com/emirpasic/gods. Like LLRBSet it is balanced, but Rank and Select
// iterate because the nodes keep no subtree sizes.
package RBTreeSet

import (
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/g-m-twostay/ordset/Sets"
)

func init() {
	Sets.Register("rbtree", func() Sets.Set { return New() })
}

type RBTreeSet struct {
	t *rbt.Tree
}

func New() *RBTreeSet {
	return &RBTreeSet{rbt.NewWith(utils.Int32Comparator)}
}

func (u *RBTreeSet) Size() uint {
	return uint(u.t.Size())
}

// Member [Sets.Set.Member]
// Time: O(log n)
func (u *RBTreeSet) Member(x int32) bool {
	_, found := u.t.Get(x)
	return found
}

// Predecessor [Sets.Set.Predecessor]. The floor of x-1, which is the largest
// element below x for integers.
// Time: O(log n)
func (u *RBTreeSet) Predecessor(x int32) (int32, bool) {
	if x == math.MinInt32 {
		return 0, false
	}
	if n, found := u.t.Floor(x - 1); found {
		return n.Key.(int32), true
	}
	return 0, false
}

// Rank [Sets.Set.Rank]
// Time: O(Rank(x))
func (u *RBTreeSet) Rank(x int32) (ra uint) {
	u.InOrder(func(v int32) bool {
		if v > x {
			return false
		}
		ra++
		return true
	})
	return
}

// Select [Sets.Set.Select]
// Time: O(j)
func (u *RBTreeSet) Select(j uint) (r int32, found bool) {
	if j >= u.Size() {
		return
	}
	u.InOrder(func(v int32) bool {
		if j == 0 {
			r, found = v, true
			return false
		}
		j--
		return true
	})
	return
}

// Insert [Sets.Set.Insert]
// Time: O(log n)
func (u *RBTreeSet) Insert(x int32) bool {
	if u.Member(x) {
		return false
	}
	u.t.Put(x, struct{}{})
	return true
}

// Delete [Sets.Set.Delete]
// Time: O(log n)
func (u *RBTreeSet) Delete(x int32) bool {
	if !u.Member(x) {
		return false
	}
	u.t.Remove(x)
	return true
}

// InOrder calls f on every element in ascending order until f returns false.
func (u *RBTreeSet) InOrder(f func(int32) bool) {
	for it := u.t.Iterator(); it.Next(); {
		if !f(it.Key().(int32)) {
			return
		}
	}
}
