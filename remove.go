package bintree

import "github.com/npillmayer/bintree/seq"

// Remove returns a new tree without the first node holding a key equivalent
// to key. If no such node exists, t is returned.
//
// A node with less than two children is replaced by its only child (or Nil).
// A node with two children takes over the key of its in-order successor, the
// minimum of its right subtree, and the successor is removed from the right
// subtree.
func (t Tree[K]) Remove(key K) Tree[K] {
	if t.root == nil {
		return t
	}
	t.mustCompare("Remove")
	path := make([]step[K], 0, 16)
	n := t.root
	for n != nil {
		less := t.cmp.Less(key, n.key)
		if !less && !t.cmp.Less(n.key, key) {
			break
		}
		path = append(path, step[K]{n: n, left: less})
		if less {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		return t
	}
	var replacement *node[K]
	switch {
	case n.left == nil:
		replacement = n.right
	case n.right == nil:
		replacement = n.left
	default:
		replacement = spliceSuccessor(n)
	}
	return t.sub(pathCopy(path, replacement))
}

// spliceSuccessor creates the replacement for a node n with two children:
// n's left subtree, the key of n's in-order successor, and n's right subtree
// with the successor removed.
//
// All keys on the path from n.right to the successor are strictly greater
// than the successor, thus the successor is the node a removal of its key from
// n.right would hit.
func spliceSuccessor[K any](n *node[K]) *node[K] {
	path := make([]step[K], 0, 8)
	succ := n.right
	for succ.left != nil {
		path = append(path, step[K]{n: succ, left: true})
		succ = succ.left
	}
	T().Debugf("bintree: remove two-child node, successor is %d levels below right child", len(path))
	right := pathCopy(path, succ.right)
	return &node[K]{key: succ.key, left: n.left, right: right}
}

// RemoveAll removes keys one after the other, from left to right. Keys not
// present at the time of their removal are skipped.
func (t Tree[K]) RemoveAll(keys ...K) Tree[K] {
	return seq.Reduce(keys, t, Tree[K].Remove)
}

// MinNode returns the subtree rooted at the leftmost node of t, or Nil for
// an empty tree.
func (t Tree[K]) MinNode() Tree[K] {
	if t.root == nil {
		return t
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return t.sub(n)
}

// MaxNode returns the subtree rooted at the rightmost node of t, or Nil for
// an empty tree.
func (t Tree[K]) MaxNode() Tree[K] {
	if t.root == nil {
		return t
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return t.sub(n)
}
