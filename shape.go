package bintree

// Height returns the number of nodes on the longest path from the root of t
// down to a leaf. The empty tree has height 0, a single node height 1.
//
// Height is not cached and visits every node of t.
func (t Tree[K]) Height() int {
	h := 0
	for level := t.frontier(); len(level) > 0; level = nextLevel(level) {
		h++
	}
	return h
}

// ChildCount returns the number of non-Nil children of the root of t.
func (t Tree[K]) ChildCount() int {
	if t.root == nil {
		return 0
	}
	cnt := 0
	if t.root.left != nil {
		cnt++
	}
	if t.root.right != nil {
		cnt++
	}
	return cnt
}

// Len returns the number of keys in t.
func (t Tree[K]) Len() int {
	n := 0
	t.ForEach(func(K) bool {
		n++
		return true
	})
	return n
}

// Equal reports whether a and b are structurally equal: both are Nil, or both
// hold == keys in their roots and have pairwise equal subtrees.
// Comparators do not take part in the comparison.
func Equal[K comparable](a, b Tree[K]) bool {
	return EqualFunc(a, b, func(x, y K) bool { return x == y })
}

// EqualFunc is like Equal, but compares keys with eq.
func EqualFunc[K any](a, b Tree[K], eq func(x, y K) bool) bool {
	type pair struct{ a, b *node[K] }
	stack := []pair{{a.root, b.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case p.a == p.b: // identical or both nil
			continue
		case p.a == nil || p.b == nil:
			return false
		case !eq(p.a.key, p.b.key):
			return false
		}
		stack = append(stack, pair{p.a.left, p.b.left}, pair{p.a.right, p.b.right})
	}
	return true
}

// ParentOf returns the parent node of subtree within t.
//
// ParentOf follows the path from the root of t which a search for the root key
// of subtree would take, and returns the last node before the root node of
// subtree is reached. Nodes are matched by identity, not by key: subtree has to
// be (a subtree of) t itself, as returned by Search, MinNode, Left, etc.
// A structurally equal copy of a subtree is not found.
//
// If subtree is t itself, Nil, or not located on the search path, Nil is
// returned.
func (t Tree[K]) ParentOf(subtree Tree[K]) Tree[K] {
	target := subtree.root
	if t.root == nil || target == nil || t.root == target {
		return t.Nil()
	}
	t.mustCompare("ParentOf")
	var prev *node[K]
	for n := t.root; n != nil; {
		if n == target {
			return t.sub(prev)
		}
		prev = n
		if t.cmp.Less(target.key, n.key) {
			n = n.left
		} else {
			n = n.right
		}
	}
	return t.Nil()
}
