package Sets

import "sync"

// lockedSet guards a Set with one lock around the whole structure.
type lockedSet struct {
	mu sync.RWMutex
	s  Set
}

// Locked returns a Set that is safe for concurrent use. Every call holds one
// lock over all of s for its duration: queries share it, Insert and Delete
// hold it exclusively. s must not be used directly afterwards.
func Locked(s Set) Set {
	return &lockedSet{s: s}
}

func (u *lockedSet) Member(x int32) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Member(x)
}

func (u *lockedSet) Predecessor(x int32) (int32, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Predecessor(x)
}

func (u *lockedSet) Rank(x int32) uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Rank(x)
}

func (u *lockedSet) Select(j uint) (int32, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Select(j)
}

func (u *lockedSet) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Size()
}

func (u *lockedSet) Insert(x int32) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.Insert(x)
}

func (u *lockedSet) Delete(x int32) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.Delete(x)
}
