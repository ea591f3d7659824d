package bintree

// SearchResult is the result of searching a key in a tree.
type SearchResult[K any] struct {
	// Match is the subtree rooted at the node holding the key, or Nil if the
	// key is absent.
	Match Tree[K]
	// Subtree is the tree the search has been started on. It is Nil only if the
	// search has been started on Nil.
	Subtree Tree[K]
}

// Found reports whether the search located a node.
func (r SearchResult[K]) Found() bool {
	return !r.Match.IsNil()
}

// Search looks for a node holding a key equivalent to key, using t's
// comparator. The search descends left for keys less than a node's key and
// right otherwise.
//
// Missing keys are not an error; they are reported by a Nil match.
func (t Tree[K]) Search(key K) SearchResult[K] {
	if t.root == nil {
		return SearchResult[K]{Match: t, Subtree: t}
	}
	t.mustCompare("Search")
	return SearchWith(t, key, t.cmp)
}

// SearchWith is Search, but uses cmp instead of t's comparator. The trees
// returned keep t's comparator.
func SearchWith[K any](t Tree[K], key K, cmp Comparator[K]) SearchResult[K] {
	result := SearchResult[K]{Match: t.Nil(), Subtree: t}
	if t.root == nil {
		return result
	}
	assert(cmp != nil, "SearchWith called with nil comparator")
	n := t.root
	for n != nil {
		less := cmp.Less(key, n.key)
		if !less && !cmp.Less(n.key, key) {
			result.Match = t.sub(n)
			break
		}
		if less {
			n = n.left
		} else {
			n = n.right
		}
	}
	return result
}

// Contains reports whether t holds a key equivalent to key.
func (t Tree[K]) Contains(key K) bool {
	return t.Search(key).Found()
}
