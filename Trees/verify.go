package Trees

import (
	"fmt"
	"math"
)

// Check walks the whole tree and returns the first violation found: an element
// outside the range its ancestors allow (ErrOrder), or a node whose size isn't
// 1 plus the sizes of its children (ErrSizeDrift). Either one is a bug in the
// tree, never a condition to recover from.
// Time: O(n)
func (u *OSTree[S]) Check() error {
	_, err := u.check(u.root, math.MinInt32-1, math.MaxInt32+1)
	return err
}

// check the subtree c whose elements must lie in (lo, hi) and return its
// actual size.
func (u *OSTree[S]) check(c *node[S], lo, hi int64) (S, error) {
	if c == nil {
		return 0, nil
	}
	if v := int64(c.v); v <= lo || v >= hi {
		return 0, fmt.Errorf("%w: %d not in (%d, %d)", ErrOrder, c.v, lo, hi)
	}
	ls, err := u.check(c.l, lo, int64(c.v))
	if err != nil {
		return 0, err
	}
	rs, err := u.check(c.r, int64(c.v), hi)
	if err != nil {
		return 0, err
	}
	if c.sz != ls+rs+1 {
		return 0, fmt.Errorf("%w: node %d has size %d, subtree holds %d", ErrSizeDrift, c.v, c.sz, ls+rs+1)
	}
	return c.sz, nil
}

// Corrupt [Tree.Corrupt]
func (u *OSTree[S]) Corrupt() bool {
	return u.Check() != nil
}

// Check is OSTree.Check for BSTree. The only size kept is the element count of
// the whole tree, which is compared to the number of nodes.
func (u *BSTree) Check() error {
	n, err := u.check(u.root, math.MinInt32-1, math.MaxInt32+1)
	if err == nil && n != u.sz {
		err = fmt.Errorf("%w: tree has size %d, holds %d", ErrSizeDrift, u.sz, n)
	}
	return err
}

func (u *BSTree) check(c *bstNode, lo, hi int64) (uint, error) {
	if c == nil {
		return 0, nil
	}
	if v := int64(c.v); v <= lo || v >= hi {
		return 0, fmt.Errorf("%w: %d not in (%d, %d)", ErrOrder, c.v, lo, hi)
	}
	ls, err := u.check(c.l, lo, int64(c.v))
	if err != nil {
		return 0, err
	}
	rs, err := u.check(c.r, int64(c.v), hi)
	if err != nil {
		return 0, err
	}
	return ls + rs + 1, nil
}

// Corrupt [Tree.Corrupt]
func (u *BSTree) Corrupt() bool {
	return u.Check() != nil
}
