package Trees

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// render the tree below root, children left first. A node with exactly one
// child shows the missing one as nil so the sides stay distinguishable.
func render[N any, P nodeLike[N]](root P, label func(P) string) string {
	if root == nil {
		return treeprint.NewWithRoot("<empty>").String()
	}
	tree := treeprint.NewWithRoot(label(root))
	var walk func(P, treeprint.Tree)
	walk = func(c P, branch treeprint.Tree) {
		l, r := P(c.left()), P(c.right())
		if l == nil && r == nil {
			return
		}
		for _, child := range [2]P{l, r} {
			if child == nil {
				branch.AddNode("nil")
			} else {
				walk(child, branch.AddBranch(label(child)))
			}
		}
	}
	walk(root, tree)
	return tree.String()
}

// String renders the tree for debugging; every node shows as "value (size)".
// The output is deterministic for a given shape.
func (u *OSTree[S]) String() string {
	return render[node[S]](u.root, func(n *node[S]) string {
		return fmt.Sprintf("%d (%d)", n.v, n.sz)
	})
}

// Print writes String to w.
func (u *OSTree[S]) Print(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}

// String renders the tree for debugging. The output is deterministic for a
// given shape.
func (u *BSTree) String() string {
	return render[bstNode](u.root, func(n *bstNode) string {
		return fmt.Sprint(n.v)
	})
}

// Print writes String to w.
func (u *BSTree) Print(w io.Writer) error {
	_, err := io.WriteString(w, u.String())
	return err
}
