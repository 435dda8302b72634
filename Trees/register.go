package Trees

import "github.com/g-m-twostay/ordset/Sets"

var (
	_ Tree = (*OSTree[uint])(nil)
	_ Tree = (*BSTree)(nil)
)

func init() {
	Sets.Register("ostree", func() Sets.Set { return NewOSTree[uint]() })
	Sets.Register("bst", func() Sets.Set { return NewBSTree() })
}
