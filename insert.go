package bintree

import "github.com/npillmayer/bintree/seq"

// step records one edge of a path from the root down to a node.
type step[K any] struct {
	n    *node[K]
	left bool // path continues into n.left
}

// pathCopy rebuilds the nodes of path bottom-up, with child as the new
// subtree at the end of the path. Siblings off the path are shared.
func pathCopy[K any](path []step[K], child *node[K]) *node[K] {
	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		if s.left {
			child = &node[K]{key: s.n.key, left: child, right: s.n.right}
		} else {
			child = &node[K]{key: s.n.key, left: s.n.left, right: child}
		}
	}
	return child
}

// Insert returns a new tree with key added as a new leaf.
//
// Keys equivalent to an existing key are not rejected and do not replace the
// existing node; they are routed into its right subtree.
func (t Tree[K]) Insert(key K) Tree[K] {
	t.mustCompare("Insert")
	path := make([]step[K], 0, 16)
	for n := t.root; n != nil; {
		left := t.cmp.Less(key, n.key)
		path = append(path, step[K]{n: n, left: left})
		if left {
			n = n.left
		} else {
			n = n.right
		}
	}
	return t.sub(pathCopy(path, &node[K]{key: key}))
}

// InsertAll inserts keys one after the other, from left to right.
//
//	t.InsertAll(a, b, c) == t.Insert(a).Insert(b).Insert(c)
func (t Tree[K]) InsertAll(keys ...K) Tree[K] {
	return seq.Reduce(keys, t, Tree[K].Insert)
}
