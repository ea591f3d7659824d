package bintree

import "github.com/npillmayer/bintree/seq"

// Batch stages insertions and removals and applies them to a base tree in
// one go.
//
// Operations are applied in the order they have been staged, exactly as a
// sequence of Insert and Remove calls would. The base tree is not modified.
//
// The empty instance is a valid batch for trees of type Tree[K]{}, but clients
// should use NewBatch to supply a base tree carrying a comparator.
type Batch[K any] struct {
	base  Tree[K]
	ops   []batchOp[K]
	done  bool
	dirty bool
	tree  Tree[K]
}

type batchOp[K any] struct {
	key    K
	remove bool
}

// NewBatch creates a batch of operations on base.
func NewBatch[K any](base Tree[K]) *Batch[K] {
	return &Batch[K]{base: base, tree: base}
}

// Insert stages insertion of keys.
func (b *Batch[K]) Insert(keys ...K) error {
	return b.stage(false, keys)
}

// Remove stages removal of keys.
func (b *Batch[K]) Remove(keys ...K) error {
	return b.stage(true, keys)
}

func (b *Batch[K]) stage(remove bool, keys []K) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBatchCompleted
	}
	for _, k := range keys {
		b.ops = append(b.ops, batchOp[K]{key: k, remove: remove})
	}
	if len(keys) > 0 {
		b.dirty = true
	}
	return nil
}

// Len returns the number of staged operations.
func (b *Batch[K]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.ops)
}

// Tree returns the base tree with all staged operations applied.
//
// It is illegal to stage further operations after Tree has been called, but
// Tree may be called multiple times.
func (b *Batch[K]) Tree() Tree[K] {
	if b == nil {
		return Tree[K]{}
	}
	if b.dirty {
		T().Debugf("bintree batch: applying %d operations", len(b.ops))
		b.tree = seq.Reduce(b.ops, b.base, func(t Tree[K], op batchOp[K]) Tree[K] {
			if op.remove {
				return t.Remove(op.key)
			}
			return t.Insert(op.key)
		})
		b.dirty = false
	}
	b.done = true
	return b.tree
}

// Reset drops all staged operations and prepares the batch for a fresh
// run on the same base tree.
func (b *Batch[K]) Reset() {
	if b == nil {
		return
	}
	b.ops = nil
	b.done = false
	b.dirty = false
	b.tree = b.base
}
