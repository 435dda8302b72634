// Package ArraySet is a Sets.Set kept as a sorted slice. Queries are binary
// searches and Select is an index, but Insert and Delete shift the tail of the
// slice and take O(n).
package ArraySet

import (
	"slices"

	"github.com/g-m-twostay/ordset/Sets"
)

func init() {
	Sets.Register("array", func() Sets.Set { return New() })
}

// ArraySet holds its elements in strictly ascending order. The zero value is
// an empty set ready to use.
type ArraySet struct {
	vs []int32
}

func New() *ArraySet {
	return new(ArraySet)
}

// From the given elements in any order, duplicates allowed. xs isn't retained.
func From(xs ...int32) *ArraySet {
	vs := slices.Clone(xs)
	slices.Sort(vs)
	return &ArraySet{slices.Compact(vs)}
}

func (u *ArraySet) Size() uint {
	return uint(len(u.vs))
}

// Member [Sets.Set.Member]
// Time: O(log n)
func (u *ArraySet) Member(x int32) bool {
	_, found := slices.BinarySearch(u.vs, x)
	return found
}

// Predecessor [Sets.Set.Predecessor]. The element just before the position x
// would be inserted at.
// Time: O(log n)
func (u *ArraySet) Predecessor(x int32) (int32, bool) {
	if i, _ := slices.BinarySearch(u.vs, x); i > 0 {
		return u.vs[i-1], true
	}
	return 0, false
}

// Rank [Sets.Set.Rank]
// Time: O(log n)
func (u *ArraySet) Rank(x int32) uint {
	i, found := slices.BinarySearch(u.vs, x)
	if found {
		i++
	}
	return uint(i)
}

// Select [Sets.Set.Select]
// Time: O(1)
func (u *ArraySet) Select(j uint) (int32, bool) {
	if j >= uint(len(u.vs)) {
		return 0, false
	}
	return u.vs[j], true
}

// Insert [Sets.Set.Insert]
// Time: O(n)
func (u *ArraySet) Insert(x int32) bool {
	i, found := slices.BinarySearch(u.vs, x)
	if found {
		return false
	}
	u.vs = slices.Insert(u.vs, i, x)
	return true
}

// Delete [Sets.Set.Delete]
// Time: O(n)
func (u *ArraySet) Delete(x int32) bool {
	i, found := slices.BinarySearch(u.vs, x)
	if !found {
		return false
	}
	u.vs = slices.Delete(u.vs, i, i+1)
	return true
}

// InOrder calls f on every element in ascending order until f returns false.
func (u *ArraySet) InOrder(f func(int32) bool) {
	for _, v := range u.vs {
		if !f(v) {
			return
		}
	}
}

// Values returns a copy of the elements in ascending order.
func (u *ArraySet) Values() []int32 {
	return slices.Clone(u.vs)
}
