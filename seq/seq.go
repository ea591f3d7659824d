package seq

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrInvalidBounds is flagged whenever a sub-range of a sequence is requested
// with from > to or with indices outside of the sequence.
var ErrInvalidBounds = errors.New("seq: invalid bounds")

// Concat returns a new sequence holding the elements of all input sequences,
// in order.
func Concat[T any](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	return lo.Flatten(seqs)
}

// Push returns a new sequence with values appended to the elements of s.
func Push[T any](s []T, values ...T) []T {
	out := make([]T, 0, len(s)+len(values))
	out = append(out, s...)
	return append(out, values...)
}

// Slice returns a copy of s[from:to].
func Slice[T any](s []T, from, to int) ([]T, error) {
	return Transform[T](s, from, to, nil)
}

// Transform returns a new sequence holding mod(s[i]) for from ≤ i < to.
// If mod is nil, the elements are copied unchanged.
//
// Bounds are not clamped: from > to, from < 0 or to > len(s) is rejected with
// ErrInvalidBounds.
func Transform[T any](s []T, from, to int, mod func(T) T) ([]T, error) {
	if err := checkBounds(len(s), from, to); err != nil {
		return nil, err
	}
	if mod == nil {
		mod = func(x T) T { return x }
	}
	return lo.Map(s[from:to], func(x T, _ int) T {
		return mod(x)
	}), nil
}

// Map returns a new sequence with f applied to every element of s.
func Map[T, R any](s []T, f func(T) R) []R {
	return lo.Map(s, func(x T, _ int) R {
		return f(x)
	})
}

// Reduce folds s from left to right, starting with acc.
//
//	Reduce([a, b, c], acc, f) == f(f(f(acc, a), b), c)
func Reduce[T, A any](s []T, acc A, f func(A, T) A) A {
	return lo.Reduce(s, func(agg A, x T, _ int) A {
		return f(agg, x)
	}, acc)
}

func checkBounds(n, from, to int) error {
	if from > to {
		tracer().Debugf("seq: rejecting range [%d,%d)", from, to)
		return fmt.Errorf("%w: from=%d > to=%d", ErrInvalidBounds, from, to)
	}
	if from < 0 || to > n {
		return fmt.Errorf("%w: range [%d,%d) outside of sequence of length %d",
			ErrInvalidBounds, from, to, n)
	}
	return nil
}
