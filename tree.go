package bintree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"golang.org/x/exp/constraints"
)

// Tree is a persistent binary search tree holding keys of type K.
//
// A tree is either Nil (the empty tree) or a node, holding exactly one key and
// two child trees, each of which is again Nil or a node. Trees are values and
// are immutable: operations resulting in a modified tree return a new tree and
// share all unmodified subtrees with their receiver.
//
// A tree created by
//
//	Tree[K]{}
//
// is a valid Nil tree, but lacks a comparator. Trees supposed to receive keys
// should be created with New, NewOrdered or NewWithLess.
//
//	Operation       |  Complexity
//	----------------+-------------
//	Search          |  O(height)
//	Insert          |  O(height)
//	Remove          |  O(height)
//	ParentOf        |  O(height)
//	ChildCount      |  O(1)
//	Height, Len     |  O(n)
//	Walk, LevelWalk |  O(n)
type Tree[K any] struct {
	root *node[K]
	cmp  Comparator[K]
}

// node is never altered after construction.
type node[K any] struct {
	key   K
	left  *node[K]
	right *node[K]
}

// Config configures a tree.
type Config[K any] struct {
	// Comparator orders the keys of the tree.
	Comparator Comparator[K]
}

func (cfg Config[K]) validate() error {
	if cfg.Comparator == nil {
		return ErrInvalidConfig
	}
	return nil
}

// New creates an empty tree with a validated configuration.
func New[K any](cfg Config[K]) (Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return Tree[K]{}, err
	}
	return Tree[K]{cmp: cfg.Comparator}, nil
}

// NewOrdered creates an empty tree for keys supporting the < operator.
func NewOrdered[K constraints.Ordered]() Tree[K] {
	return Tree[K]{cmp: Ordered[K]{}}
}

// NewWithLess creates an empty tree ordered by less.
func NewWithLess[K any](less func(a, b K) bool) Tree[K] {
	assert(less != nil, "NewWithLess called with nil function")
	return Tree[K]{cmp: LessFunc[K](less)}
}

// sub wraps n as a tree sharing t's comparator.
func (t Tree[K]) sub(n *node[K]) Tree[K] {
	return Tree[K]{root: n, cmp: t.cmp}
}

// Nil returns the empty tree, ordered by t's comparator.
func (t Tree[K]) Nil() Tree[K] {
	return t.sub(nil)
}

// IsNil reports whether t is the empty tree.
func (t Tree[K]) IsNil() bool {
	return t.root == nil
}

// Comparator returns the comparator ordering t.
func (t Tree[K]) Comparator() Comparator[K] {
	return t.cmp
}

// Key returns the key held by the root node of t. For the empty tree, the
// second return value is false.
func (t Tree[K]) Key() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.key, true
}

// Left returns the left subtree of t, or Nil if t is Nil.
func (t Tree[K]) Left() Tree[K] {
	if t.root == nil {
		return t
	}
	return t.sub(t.root.left)
}

// Right returns the right subtree of t, or Nil if t is Nil.
func (t Tree[K]) Right() Tree[K] {
	if t.root == nil {
		return t
	}
	return t.sub(t.root.right)
}

// Same reports whether t and other are the identical tree, i.e. share the
// same root node. Two Nil trees are the same.
func (t Tree[K]) Same(other Tree[K]) bool {
	return t.root == other.root
}

// WithComparator rebuilds t as a tree ordered by cmp. Keys are re-inserted
// in the in-order sequence of t.
func (t Tree[K]) WithComparator(cmp Comparator[K]) Tree[K] {
	assert(cmp != nil, "WithComparator called with nil comparator")
	rebuilt := Tree[K]{cmp: cmp}
	if t.root == nil {
		return rebuilt
	}
	keys := t.Walk()
	T().Debugf("bintree: rebuilding tree of %d keys under new comparator", len(keys))
	return rebuilt.InsertAll(keys...)
}

// mustCompare guards operations needing a comparator.
func (t Tree[K]) mustCompare(op string) {
	assert(t.cmp != nil, "bintree: "+op+" on a tree without comparator")
}
