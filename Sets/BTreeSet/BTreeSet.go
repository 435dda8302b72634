// Package BTreeSet is a Sets.Set backed by github.com/google/btree. The B-tree
// keeps no subtree counts, so Rank and Select iterate.
package BTreeSet

import (
	"github.com/google/btree"

	"github.com/g-m-twostay/ordset/Sets"
)

// DefaultDegree is the B-tree degree used by the registered "btree" backend.
const DefaultDegree = 32

func init() {
	Sets.Register("btree", func() Sets.Set { return New(DefaultDegree) })
}

type BTreeSet struct {
	t *btree.BTreeG[int32]
}

// New returns an empty set whose B-tree nodes hold up to 2*degree-1 elements.
func New(degree int) *BTreeSet {
	return &BTreeSet{btree.NewOrderedG[int32](degree)}
}

func (u *BTreeSet) Size() uint {
	return uint(u.t.Len())
}

// Member [Sets.Set.Member]
// Time: O(log n)
func (u *BTreeSet) Member(x int32) bool {
	return u.t.Has(x)
}

// Predecessor [Sets.Set.Predecessor]
// Time: O(log n)
func (u *BTreeSet) Predecessor(x int32) (p int32, found bool) {
	u.t.DescendLessOrEqual(x, func(v int32) bool {
		if v == x {
			return true
		}
		p, found = v, true
		return false
	})
	return
}

// Rank [Sets.Set.Rank]
// Time: O(Rank(x))
func (u *BTreeSet) Rank(x int32) (ra uint) {
	u.t.Ascend(func(v int32) bool {
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
func (u *BTreeSet) Select(j uint) (r int32, found bool) {
	if j >= u.Size() {
		return
	}
	u.t.Ascend(func(v int32) bool {
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
func (u *BTreeSet) Insert(x int32) bool {
	_, replaced := u.t.ReplaceOrInsert(x)
	return !replaced
}

// Delete [Sets.Set.Delete]
// Time: O(log n)
func (u *BTreeSet) Delete(x int32) bool {
	_, deleted := u.t.Delete(x)
	return deleted
}

// InOrder calls f on every element in ascending order until f returns false.
func (u *BTreeSet) InOrder(f func(int32) bool) {
	u.t.Ascend(f)
}
