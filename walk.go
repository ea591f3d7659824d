package bintree

import (
	"iter"

	"github.com/npillmayer/bintree/seq"
)

// Walk returns the keys of t in in-order sequence: keys of the left subtree,
// the root key, keys of the right subtree.
//
// For a tree built by insertions under a single comparator, this is the keys
// sorted by the comparator, with equivalent keys in the order of insertion.
func (t Tree[K]) Walk() []K {
	keys := make([]K, 0, 16)
	t.ForEach(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// All returns an iterator over the keys of t in in-order sequence.
func (t Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(yield)
	}
}

// ForEach calls fn for the keys of t in in-order sequence.
//
// Iteration stops early if fn returns false.
func (t Tree[K]) ForEach(fn func(key K) bool) {
	if t.root == nil || fn == nil {
		return
	}
	var stack []*node[K]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key) {
			return
		}
		n = n.right
	}
}

// LevelWalk returns the keys of t in breadth-first order: the root key, then
// the keys at depth 1 from left to right, then depth 2, and so on.
func (t Tree[K]) LevelWalk() []K {
	var levels [][]K
	for level := t.frontier(); len(level) > 0; level = nextLevel(level) {
		levels = append(levels, keysOf(level))
	}
	return seq.Concat(levels...)
}

// Levels returns an iterator over the levels of t, yielding the depth and the
// keys at that depth, from left to right.
func (t Tree[K]) Levels() iter.Seq2[int, []K] {
	return func(yield func(int, []K) bool) {
		depth := 0
		for level := t.frontier(); len(level) > 0; level = nextLevel(level) {
			if !yield(depth, keysOf(level)) {
				return
			}
			depth++
		}
	}
}

// CollectLevel returns the keys at depth d of t, from left to right.
// The root is at depth 0. For d < 0 or d ≥ t.Height(), the result is empty.
func (t Tree[K]) CollectLevel(d int) []K {
	if d < 0 {
		return []K{}
	}
	level := t.frontier()
	for ; d > 0 && len(level) > 0; d-- {
		level = nextLevel(level)
	}
	return keysOf(level)
}

// frontier returns the nodes at depth 0 of t.
func (t Tree[K]) frontier() []*node[K] {
	if t.root == nil {
		return nil
	}
	return []*node[K]{t.root}
}

// nextLevel returns the children of the nodes of level, from left to right.
func nextLevel[K any](level []*node[K]) []*node[K] {
	var next []*node[K]
	for _, n := range level {
		if n.left != nil {
			next = append(next, n.left)
		}
		if n.right != nil {
			next = append(next, n.right)
		}
	}
	return next
}

func keysOf[K any](level []*node[K]) []K {
	return seq.Map(level, func(n *node[K]) K { return n.key })
}
