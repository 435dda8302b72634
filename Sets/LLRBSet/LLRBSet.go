// Package LLRBSet is a Sets.Set backed by the left-leaning red-black tree of
// github.com/petar/GoLLRB. The tree is balanced but keeps no subtree sizes, so
// Rank and Select iterate.
package LLRBSet

import (
	"math"

	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/ordset/Sets"
)

func init() {
	Sets.Register("llrb", func() Sets.Set { return New() })
}

type item int32

func (a item) Less(than llrb.Item) bool {
	return a < than.(item)
}

type LLRBSet struct {
	t *llrb.LLRB
}

func New() *LLRBSet {
	return &LLRBSet{llrb.New()}
}

func (u *LLRBSet) Size() uint {
	return uint(u.t.Len())
}

// Member [Sets.Set.Member]
// Time: O(log n)
func (u *LLRBSet) Member(x int32) bool {
	return u.t.Has(item(x))
}

// Predecessor [Sets.Set.Predecessor]
// Time: O(log n)
func (u *LLRBSet) Predecessor(x int32) (p int32, found bool) {
	u.t.DescendLessOrEqual(item(x), func(i llrb.Item) bool {
		if v := int32(i.(item)); v < x {
			p, found = v, true
			return false
		}
		return true
	})
	return
}

// Rank [Sets.Set.Rank]
// Time: O(Rank(x))
func (u *LLRBSet) Rank(x int32) (ra uint) {
	u.t.AscendLessThan(item(x), func(llrb.Item) bool {
		ra++
		return true
	})
	if u.t.Has(item(x)) {
		ra++
	}
	return
}

// Select [Sets.Set.Select]
// Time: O(j)
func (u *LLRBSet) Select(j uint) (r int32, found bool) {
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
func (u *LLRBSet) Insert(x int32) bool {
	return u.t.ReplaceOrInsert(item(x)) == nil
}

// Delete [Sets.Set.Delete]
// Time: O(log n)
func (u *LLRBSet) Delete(x int32) bool {
	return u.t.Delete(item(x)) != nil
}

// InOrder calls f on every element in ascending order until f returns false.
func (u *LLRBSet) InOrder(f func(int32) bool) {
	u.t.AscendGreaterOrEqual(item(math.MinInt32), func(i llrb.Item) bool {
		return f(int32(i.(item)))
	})
}
