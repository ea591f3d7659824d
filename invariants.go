package bintree

import "fmt"

// Check validates the search tree order of t.
//
// Every key of a left subtree has to be less than the key of its parent, every
// key of a right subtree must not be less than it. A tree which has only been
// created by operations of this package under a well-formed comparator always
// passes. Check is meant for tests and for checking comparators.
func (t Tree[K]) Check() error {
	if t.root == nil {
		return nil
	}
	if t.cmp == nil {
		return fmt.Errorf("%w: non-empty tree without comparator", ErrInvalidConfig)
	}
	type bounded struct {
		n      *node[K]
		lo, hi *node[K] // lo.key ≤ n.key < hi.key, if present
		depth  int
	}
	stack := []bounded{{n: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.hi != nil && !t.cmp.Less(b.n.key, b.hi.key) {
			T().Errorf("bintree: key %v at depth %d not less than ancestor %v", b.n.key, b.depth, b.hi.key)
			return fmt.Errorf("%w: key %v in left subtree of %v", ErrOrderViolation, b.n.key, b.hi.key)
		}
		if b.lo != nil && t.cmp.Less(b.n.key, b.lo.key) {
			T().Errorf("bintree: key %v at depth %d less than ancestor %v", b.n.key, b.depth, b.lo.key)
			return fmt.Errorf("%w: key %v in right subtree of %v", ErrOrderViolation, b.n.key, b.lo.key)
		}
		if b.n.left != nil {
			stack = append(stack, bounded{n: b.n.left, lo: b.lo, hi: b.n, depth: b.depth + 1})
		}
		if b.n.right != nil {
			stack = append(stack, bounded{n: b.n.right, lo: b.n, hi: b.hi, depth: b.depth + 1})
		}
	}
	return nil
}
