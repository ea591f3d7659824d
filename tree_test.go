package bintree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// sampleTree is
//
//	      5
//	    /   \
//	   3     7
//	  / \     \
//	 2   4     8
func sampleTree() Tree[int] {
	return NewOrdered[int]().InsertAll(5, 7, 3, 4, 2, 8)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New[int](Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing comparator, got %v", err)
	}
}

func TestNewStoresComparator(t *testing.T) {
	tree, err := New(Config[string]{Comparator: Ordered[string]{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Comparator() == nil {
		t.Fatalf("expected comparator to be set")
	}
	if !tree.IsNil() || tree.Height() != 0 || tree.Len() != 0 {
		t.Fatalf("expected new tree to be empty")
	}
}

func TestZeroTreeIsNil(t *testing.T) {
	var tree Tree[int]
	if !tree.IsNil() {
		t.Errorf("expected zero tree to be Nil")
	}
	if _, ok := tree.Key(); ok {
		t.Errorf("expected Nil to have no key")
	}
	if !tree.Left().IsNil() || !tree.Right().IsNil() {
		t.Errorf("expected children of Nil to be Nil")
	}
	if len(tree.Walk()) != 0 || tree.ChildCount() != 0 {
		t.Errorf("expected Nil to have no keys and no children")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected Nil to pass order check, got %v", err)
	}
}

func TestInsertWithoutComparatorPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Insert on tree without comparator to panic")
		}
	}()
	var tree Tree[int]
	tree.Insert(1)
}

func TestShapeOfSampleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := sampleTree()
	t.Logf("\n%s", Render(tree, ValuePrinter[int]{}))
	if k, ok := tree.Key(); !ok || k != 5 {
		t.Errorf("expected root key 5, have %d", k)
	}
	if tree.Height() != 3 {
		t.Errorf("expected height 3, have %d", tree.Height())
	}
	if tree.Len() != 6 {
		t.Errorf("expected 6 keys, have %d", tree.Len())
	}
	if tree.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", tree.ChildCount())
	}
	seven := tree.Right()
	if k, _ := seven.Key(); k != 7 || seven.ChildCount() != 1 {
		t.Errorf("expected right child 7 with a single child")
	}
	if !seven.Left().IsNil() {
		t.Errorf("expected 7 to have no left child")
	}
	if seven.Right().ChildCount() != 0 {
		t.Errorf("expected 8 to be a leaf")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("order check failed: %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := sampleTree()
	b := NewWithLess(func(x, y int) bool { return x < y }).InsertAll(5, 3, 7, 2, 4, 8)
	if !Equal(a, b) {
		t.Errorf("expected trees of same shape and keys to be equal, regardless of comparator")
	}
	c := NewOrdered[int]().InsertAll(5, 3, 7, 2, 4)
	if Equal(a, c) || Equal(c, a) {
		t.Errorf("expected trees with different keys to differ")
	}
	d := NewOrdered[int]().InsertAll(3, 2, 4, 5, 7, 8)
	if Equal(a, d) {
		t.Errorf("expected trees with same keys but different shape to differ")
	}
	var nilTree Tree[int]
	if !Equal(nilTree, NewOrdered[int]()) {
		t.Errorf("expected Nil == Nil")
	}
	if Equal(nilTree, a) || Equal(a, nilTree) {
		t.Errorf("expected Nil != Node")
	}
}

func TestEqualFunc(t *testing.T) {
	type item struct {
		key  int
		tags []string
	}
	less := func(x, y item) bool { return x.key < y.key }
	a := NewWithLess(less).InsertAll(item{key: 1}, item{key: 2, tags: []string{"x"}})
	b := NewWithLess(less).InsertAll(item{key: 1}, item{key: 2})
	if !EqualFunc(a, b, func(x, y item) bool { return x.key == y.key }) {
		t.Errorf("expected trees to be equal by key")
	}
	if EqualFunc(a, b, func(x, y item) bool { return x.key == y.key && len(x.tags) == len(y.tags) }) {
		t.Errorf("expected trees to differ by tags")
	}
}

func TestCheckDetectsOrderViolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	bad := NewOrdered[int]()
	bad.root = &node[int]{key: 5,
		left: &node[int]{key: 3, right: &node[int]{key: 6}},
	}
	if err := bad.Check(); !errors.Is(err, ErrOrderViolation) {
		t.Errorf("expected ErrOrderViolation, got %v", err)
	}
	bad.root = &node[int]{key: 5, right: &node[int]{key: 4}}
	if err := bad.Check(); !errors.Is(err, ErrOrderViolation) {
		t.Errorf("expected ErrOrderViolation, got %v", err)
	}
}

func TestWithComparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := sampleTree()
	rev := tree.WithComparator(Reverse[int](Ordered[int]{}))
	if err := rev.Check(); err != nil {
		t.Fatalf("rebuilt tree violates order: %v", err)
	}
	want := []int{8, 7, 5, 4, 3, 2}
	if got := rev.Walk(); !equalKeys(got, want) {
		t.Errorf("expected reversed walk %v, have %v", want, got)
	}
	if got := tree.Walk(); !equalKeys(got, []int{2, 3, 4, 5, 7, 8}) {
		t.Errorf("rebuild altered the original tree: %v", got)
	}
}

func TestBySizeComparator(t *testing.T) {
	tr, err := New(Config[any]{Comparator: BySize[any]{}})
	if err != nil {
		t.Fatal(err)
	}
	tr = tr.InsertAll(int64(2), int8(1), "x", int16(3), int8(7))
	got := tr.Walk()
	want := []any{int8(1), int8(7), int16(3), int64(2), "x"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, have %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected walk[%d] = %v (%T), have %v (%T)", i, want[i], want[i], got[i], got[i])
		}
	}
	if !Equivalent[any](BySize[any]{}, int8(1), uint8(200)) {
		t.Errorf("expected keys of equal size to be equivalent")
	}
	if !tr.Contains(uint8(0)) {
		t.Errorf("expected search by size to find a 1-byte key")
	}
}

func equalKeys[K comparable](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
