/*
Package bintree implements persistent binary search trees over arbitrary key types.

Trees

A Tree is an immutable value. Every "mutating" operation, like Insert or Remove,
returns a new tree and leaves its receiver untouched. Nodes which are not on the
path from the root to the point of change are shared between the old and the new
tree, never copied. Holding on to an old tree version therefore costs only the
nodes which have been re-created for the newer versions.

	t := bintree.NewOrdered[int]().InsertAll(5, 7, 3, 4, 2, 8)
	u := t.Remove(5)   // t still contains 5
	fmt.Println(u.Walk())   // [2 3 4 7 8]

Trees are parameterized by a Comparator, which has to implement a strict weak
ordering on the keys. The comparator is a property of a tree instance; all the
nodes reachable from a root are ordered by the same comparator. To re-order a
tree by a different comparator, the tree has to be rebuilt (see WithComparator).

Trees are not balanced. Operations run in O(height), which is O(n) in the worst
case of keys inserted in sorted order. None of the operations recurse on the
call stack, so degenerate trees will not exhaust it.

Keys considered equal by the comparator may occur more than once; they are
always inserted into the right subtree of an existing equal key.

Concurrency

Tree values may be shared between goroutines without any synchronization, as
no operation ever alters a node after it has been created.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BintreeError is an error type for the bintree module
type BintreeError string

func (e BintreeError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged if a tree is to be created from an incomplete
// configuration.
const ErrInvalidConfig = BintreeError("invalid tree configuration")

// ErrOrderViolation is flagged by Check whenever a key is found in a subtree
// where the comparator does not permit it.
const ErrOrderViolation = BintreeError("keys violate search tree order")

// ErrBatchCompleted signals that a batch has already produced its tree and
// it's illegal to stage further operations.
const ErrBatchCompleted = BintreeError("forbidden to stage operations; batch has been applied")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = BintreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
