// Package Sets defines the ordered set contract shared by every backend in this
// module, a registry to construct backends by name, and a few helpers that
// work on any Set.
package Sets

// Set is an ordered set of int32. It never holds duplicate values.
// Receivers with a bool as the second return value report whether the first
// one is defined; when it is false the first value is 0.
// Implementations are not safe for concurrent use unless wrapped by Locked.
type Set interface {
	//Member reports whether x is in the set.
	Member(x int32) bool
	//Predecessor returns the largest element strictly less than x.
	Predecessor(x int32) (int32, bool)
	//Rank is the number of elements less than or equal to x.
	Rank(x int32) uint
	//Select returns the element at 0-based position j in ascending order,
	//the (j+1)-th smallest. It is undefined when j >= Size().
	Select(j uint) (int32, bool)
	//Insert x. Inserting an existing element is a no-op that returns false.
	Insert(x int32) bool
	//Delete x. Deleting a missing element is a no-op that returns false.
	Delete(x int32) bool
	//Size is the number of elements.
	Size() uint
}

// Adds inserts all of xs into s and returns how many of them were new.
func Adds(s Set, xs ...int32) (n uint) {
	for _, x := range xs {
		if s.Insert(x) {
			n++
		}
	}
	return
}

// Values returns the elements of s in ascending order. Sets that can walk
// themselves in order are walked; the rest are read through Select.
func Values(s Set) []int32 {
	vs := make([]int32, 0, s.Size())
	if w, ok := s.(interface{ InOrder(func(int32) bool) }); ok {
		w.InOrder(func(v int32) bool {
			vs = append(vs, v)
			return true
		})
		return vs
	}
	for j := uint(0); j < s.Size(); j++ {
		v, _ := s.Select(j)
		vs = append(vs, v)
	}
	return vs
}
