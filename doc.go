/*
Package radix offers a compressed radix trie (PATRICIA-style) set of byte-string
keys.

Radix Sets

A radix set stores keys along the edges of a tree. Chains of nodes having just
a single child are folded into one edge, labelled with the run of bytes they
share. The number of nodes is therefore bounded by the number of branching
points rather than by the total length of the keys. Insert, lookup and removal
cost O(len(key)), independent of the number of keys in the set.

	insert "cat", "car", "dog":

	        (root)
	        /    \
	     "ca"    "dog"*
	     /  \
	   "t"*  "r"*          (* marks a member key)

Every step down the tree compares the remaining part of the key with an edge
label. This comparison (the length of the longest common prefix of two byte
sequences) is performed by package lcp, which compares machine words instead
of single bytes wherever it can. Keys sharing long prefixes, e.g. decimal
numbers with common leading digits, profit most.

Removal restores the compression invariant: a node which is neither a member
nor a branching point is merged with its only child, and dead branches are
pruned.

Sets are not safe for concurrent mutation. Concurrent readers are fine as long
as no writer is active; clients with concurrent writers must wrap a set in a
lock of their own.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package radix

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'radix'.
func T() tracing.Trace {
	return tracing.Select("radix")
}

// RadixError is an error type for the radix module
type RadixError string

func (e RadixError) Error() string {
	return string(e)
}

// ErrInvariantViolation is flagged by Check whenever the structure of a set
// is broken.
const ErrInvariantViolation = RadixError("radix set invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
