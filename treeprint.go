package bintree

import (
	"github.com/xlab/treeprint"
)

// TreePrint returns a drawing of t in the style of the Unix tree command,
// root at the top. Children are tagged [L] and [R]; an absent left child of a
// node having a right child is not drawn.
func TreePrint[K any](t Tree[K], p Printer[K]) string {
	if t.root == nil {
		return ""
	}
	if p == nil {
		p = ValuePrinter[K]{}
	}
	type pending struct {
		n      *node[K]
		branch treeprint.Tree
	}
	root := treeprint.NewWithRoot(p.Str(t.root.key))
	queue := []pending{{n: t.root, branch: root}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range [2]struct {
			tag   string
			child *node[K]
		}{{"L", cur.n.left}, {"R", cur.n.right}} {
			if c.child == nil {
				continue
			}
			label := p.Str(c.child.key)
			if c.child.left == nil && c.child.right == nil {
				cur.branch.AddMetaNode(c.tag, label)
				continue
			}
			queue = append(queue, pending{n: c.child, branch: cur.branch.AddMetaBranch(c.tag, label)})
		}
	}
	return root.String()
}
